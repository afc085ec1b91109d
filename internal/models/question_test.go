package models

import "testing"

func TestQuestionCatalog(t *testing.T) {
	if len(Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(Questions))
	}

	for i, q := range Questions {
		if q.Text == "" {
			t.Errorf("question %d has empty text", i)
		}
		if len(q.Options) != 5 {
			t.Errorf("question %d: expected 5 options, got %d", i, len(q.Options))
		}
		seen := make(map[string]bool)
		for _, opt := range q.Options {
			if opt == "" {
				t.Errorf("question %d has an empty option", i)
			}
			if seen[opt] {
				t.Errorf("question %d: duplicate option %q", i, opt)
			}
			seen[opt] = true
		}
	}

	if Questions[0].Text != "What's your age group?" {
		t.Errorf("unexpected first question: %q", Questions[0].Text)
	}
}
