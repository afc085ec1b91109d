package telegram

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"survey-bot/internal/models"
	"survey-bot/internal/survey"
	"survey-bot/internal/ws"
)

// sender is the slice of Client the handler needs to reply; tests
// substitute a capturing stub.
type sender interface {
	SendMessage(chatID int64, text, parseMode string, replyMarkup interface{}) (int64, error)
}

// UpdateHandler maps inbound Telegram updates to the survey engine's
// three operations and renders each result variant back to the user.
type UpdateHandler struct {
	client sender
	engine *survey.Engine
	hub    *ws.Hub
}

func NewUpdateHandler(client sender, engine *survey.Engine, hub *ws.Hub) *UpdateHandler {
	return &UpdateHandler{client: client, engine: engine, hub: hub}
}

func (h *UpdateHandler) Handle(upd Update) {
	if upd.Message != nil {
		h.handleMessage(upd.Message)
	}
}

func (h *UpdateHandler) handleMessage(msg *Message) {
	if msg.From == nil {
		return
	}
	userID := msg.From.ID
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)
	now := time.Now()

	switch {
	case isCommand(msg, "start"), isCommand(msg, "help"):
		h.cmdStart(userID, chatID, now)
	case isCommand(msg, "review"):
		h.cmdReview(userID, chatID, now)
	case isCommand(msg, "cancel"):
		h.send(chatID, "Survey cancelled. You can start again anytime with /start", "", RemoveKeyboard())
	default:
		h.onAnswer(userID, chatID, text, now)
	}
}

func (h *UpdateHandler) cmdStart(userID, chatID int64, now time.Time) {
	res := h.engine.BeginSurvey(userID, now)

	switch res.Kind {
	case survey.KindCooldown:
		h.send(chatID, fmt.Sprintf(
			"⏳ You've already completed this week's questions!\n"+
				"Please come back in %d %s for new questions.\n\n"+
				"In the meantime, you can review your previous answers with /review",
			res.DaysLeft, pluralDays(res.DaysLeft)), "", nil)

	case survey.KindQuestion:
		h.send(chatID,
			"🎯 <b>Welcome to our Digital Marketing Survey!</b>\n\n"+
				"We have 5 quick questions to better understand your preferences.\n"+
				"Each question has multiple-choice options - just tap to answer!\n\n"+
				"Let's get started with the first question:", "HTML", nil)
		h.sendPrompt(chatID, res.Prompt)
	}
}

func (h *UpdateHandler) onAnswer(userID, chatID int64, text string, now time.Time) {
	res := h.engine.SubmitAnswer(userID, text, now)

	switch res.Kind {
	case survey.KindNotStarted:
		h.send(chatID, "Please start with /start", "", nil)

	case survey.KindInvalidOption:
		h.send(chatID, "Please select one of the provided options.", "",
			OptionsKeyboard(res.Prompt.Options))

	case survey.KindQuestion:
		h.sendPrompt(chatID, res.Prompt)

	case survey.KindSurveyComplete:
		h.send(chatID,
			"✅ <b>Thank you for completing all questions!</b>\n\n"+
				"Your answers have been recorded successfully.\n\n"+
				"🔔 <b>Please come back next week for new questions!</b>\n\n"+
				"You can review your answers anytime with /review",
			"HTML", RemoveKeyboard())

		if data, err := json.Marshal(res.Answers); err == nil {
			log.Printf("user %d completed survey %s: %s", userID, res.SessionID, data)
		}
		if h.hub != nil {
			h.hub.Broadcast(ws.Event{
				Type: "survey_completed",
				Data: completionEvent{
					SessionID: res.SessionID,
					UserID:    userID,
					Answers:   res.Answers,
				},
			})
		}
	}
}

func (h *UpdateHandler) cmdReview(userID, chatID int64, now time.Time) {
	res := h.engine.Review(userID, now)

	if res.Kind == survey.KindNothingToReview {
		h.send(chatID, "You haven't completed any questions yet. Start with /start", "", nil)
		return
	}

	lines := []string{"📋 <b>Your Answers:</b>\n"}
	for i, a := range res.Answers {
		lines = append(lines, fmt.Sprintf("%d. <b>%s</b>\n   👉 %s\n",
			i+1, escapeHTML(a.Question), escapeHTML(a.Answer)))
	}
	if res.Completed {
		lines = append(lines, fmt.Sprintf("⏳ <b>Next survey available in:</b> %d %s",
			res.DaysLeft, pluralDays(res.DaysLeft)))
	} else {
		lines = append(lines, "Survey in progress - answer the current question to continue.")
	}

	h.send(chatID, strings.Join(lines, "\n"), "HTML", nil)
}

func (h *UpdateHandler) sendPrompt(chatID int64, p *survey.Prompt) {
	text := fmt.Sprintf("<b>Question %d/%d</b>\n\n%s", p.Ordinal, p.Total, escapeHTML(p.Text))
	h.send(chatID, text, "HTML", OptionsKeyboard(p.Options))
}

func (h *UpdateHandler) send(chatID int64, text, parseMode string, replyMarkup interface{}) {
	if _, err := h.client.SendMessage(chatID, text, parseMode, replyMarkup); err != nil {
		log.Printf("send msg to %d: %v", chatID, err)
	}
}

type completionEvent struct {
	SessionID string                `json:"session_id"`
	UserID    int64                 `json:"user_id"`
	Answers   []models.AnsweredItem `json:"answers"`
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// escapeHTML neutralizes the three characters Telegram's HTML parse
// mode reserves. Keyboards carry option text verbatim, so answers echo
// back exactly as validated; only message bodies need escaping.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

func pluralDays(n int) string {
	if n != 1 {
		return "days"
	}
	return "day"
}

func isCommand(msg *Message, cmd string) bool {
	for _, e := range msg.Entities {
		if e.Type == "bot_command" && e.Offset == 0 {
			// Entity bounds come off the wire; never slice past the text.
			end := e.Length
			if end > len(msg.Text) {
				end = len(msg.Text)
			}
			if end <= 0 {
				return false
			}
			cmdText := strings.Split(msg.Text[:end], "@")[0]
			return cmdText == "/"+cmd
		}
	}
	return false
}
