package models

// Question is one survey item: the prompt text plus the exact set of
// answers the bot accepts for it.
type Question struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// Questions is the weekly survey, asked in order. Option order matters:
// it is both the keyboard layout and the canonical set answers are
// validated against.
var Questions = []Question{
	{
		Text:    "What's your age group?",
		Options: []string{"Under 18", "18-25", "26-35", "36-50", "51+"},
	},
	{
		Text:    "How often do you shop online?",
		Options: []string{"Daily", "Weekly", "Monthly", "Rarely", "Never"},
	},
	{
		Text:    "What's your favorite social media platform?",
		Options: []string{"Instagram", "TikTok", "Facebook", "Twitter", "YouTube"},
	},
	{
		Text:    "What type of products are you most interested in?",
		Options: []string{"Electronics", "Fashion", "Home & Kitchen", "Beauty", "Sports"},
	},
	{
		Text:    "How much do you typically spend online per month?",
		Options: []string{"Under $50", "$50-$100", "$100-$200", "$200-$500", "$500+"},
	},
}
