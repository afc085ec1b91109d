package models

import "time"

// AnsweredItem records one accepted answer. Immutable once appended.
type AnsweredItem struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Timestamp time.Time `json:"timestamp"`
}

// UserSession tracks one user's progress through the current survey
// cycle. Starting a new cycle replaces the previous session wholesale;
// its answers are not archived.
type UserSession struct {
	ID              string
	UserID          int64
	CurrentQuestion int
	Answers         []AnsweredItem
	StartedAt       time.Time
	Completed       bool
}
