package telegram

// OptionsKeyboard lays out one option per row, in the same order the
// engine validates against. One-time: the keyboard collapses after the
// user picks an answer.
func OptionsKeyboard(options []string) *ReplyKeyboardMarkup {
	keyboard := make([][]KeyboardButton, 0, len(options))
	for _, opt := range options {
		keyboard = append(keyboard, []KeyboardButton{{Text: opt}})
	}
	return &ReplyKeyboardMarkup{
		Keyboard:        keyboard,
		OneTimeKeyboard: true,
		ResizeKeyboard:  true,
	}
}

func RemoveKeyboard() *ReplyKeyboardRemove {
	return &ReplyKeyboardRemove{RemoveKeyboard: true}
}
