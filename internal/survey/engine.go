package survey

import (
	"sync"
	"time"

	"survey-bot/internal/models"

	"github.com/google/uuid"
)

const cooldownDays = 7

// Result kinds returned by the engine. The transport maps each kind to
// user-facing text; the engine itself never produces errors.
const (
	KindQuestion        = "question"
	KindSurveyComplete  = "survey_complete"
	KindCooldown        = "cooldown"
	KindNotStarted      = "not_started"
	KindInvalidOption   = "invalid_option"
	KindReview          = "review"
	KindNothingToReview = "nothing_to_review"
)

// Prompt is a renderable question: 1-based ordinal, total question
// count, prompt text and the options in presentation order.
type Prompt struct {
	Ordinal int
	Total   int
	Text    string
	Options []string
}

// Result is the outcome of a single engine operation.
type Result struct {
	Kind      string
	Prompt    *Prompt               // question, invalid_option
	Answers   []models.AnsweredItem // survey_complete, review
	DaysLeft  int                   // cooldown, review of a completed survey
	Completed bool                  // review
	SessionID string                // fresh question, survey_complete
}

// Engine advances user sessions through the fixed question list. All
// operations are synchronous and in-memory. Operations for the same
// user are serialized: the transport dispatches each update on its own
// goroutine, so two rapid messages from one user would otherwise race
// on the session.
type Engine struct {
	store *SessionStore

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewEngine(store *SessionStore) *Engine {
	return &Engine{
		store: store,
		locks: make(map[int64]*sync.Mutex),
	}
}

func (e *Engine) lockUser(userID int64) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[userID] = l
	}
	return l
}

func promptFor(index int) *Prompt {
	q := models.Questions[index]
	return &Prompt{
		Ordinal: index + 1,
		Total:   len(models.Questions),
		Text:    q.Text,
		Options: q.Options,
	}
}

// elapsedDays truncates to whole days: 6 days 23 hours counts as 6.
func elapsedDays(from, to time.Time) int {
	return int(to.Sub(from).Hours()) / 24
}

// BeginSurvey starts a new survey cycle for userID, unless the user
// completed one less than a week ago. A new cycle replaces any prior
// session for the user.
func (e *Engine) BeginSurvey(userID int64, now time.Time) Result {
	l := e.lockUser(userID)
	l.Lock()
	defer l.Unlock()

	if sess := e.store.Get(userID); sess != nil && sess.Completed {
		if days := elapsedDays(sess.StartedAt, now); days < cooldownDays {
			return Result{Kind: KindCooldown, DaysLeft: cooldownDays - days}
		}
	}

	sess := &models.UserSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		StartedAt: now,
	}
	e.store.Put(userID, sess)

	return Result{Kind: KindQuestion, Prompt: promptFor(0), SessionID: sess.ID}
}

// SubmitAnswer validates answer against the current question's options
// (exact, case-sensitive) and on a match records it and advances the
// session. A mismatch leaves the session untouched and carries the
// current prompt back so the caller can re-ask.
func (e *Engine) SubmitAnswer(userID int64, answer string, now time.Time) Result {
	l := e.lockUser(userID)
	l.Lock()
	defer l.Unlock()

	sess := e.store.Get(userID)
	if sess == nil || sess.Completed {
		return Result{Kind: KindNotStarted}
	}

	q := models.Questions[sess.CurrentQuestion]
	valid := false
	for _, opt := range q.Options {
		if answer == opt {
			valid = true
			break
		}
	}
	if !valid {
		return Result{Kind: KindInvalidOption, Prompt: promptFor(sess.CurrentQuestion)}
	}

	sess.Answers = append(sess.Answers, models.AnsweredItem{
		Question:  q.Text,
		Answer:    answer,
		Timestamp: now,
	})
	sess.CurrentQuestion++

	if sess.CurrentQuestion == len(models.Questions) {
		sess.Completed = true
		return Result{Kind: KindSurveyComplete, Answers: sess.Answers, SessionID: sess.ID}
	}

	return Result{Kind: KindQuestion, Prompt: promptFor(sess.CurrentQuestion)}
}

// Review reports the answers recorded so far this cycle, in submission
// order, plus the remaining cooldown if the survey is complete.
func (e *Engine) Review(userID int64, now time.Time) Result {
	l := e.lockUser(userID)
	l.Lock()
	defer l.Unlock()

	sess := e.store.Get(userID)
	if sess == nil || len(sess.Answers) == 0 {
		return Result{Kind: KindNothingToReview}
	}

	res := Result{
		Kind:      KindReview,
		Answers:   sess.Answers,
		Completed: sess.Completed,
	}
	if sess.Completed {
		days := cooldownDays - elapsedDays(sess.StartedAt, now)
		if days < 0 {
			days = 0
		}
		res.DaysLeft = days
	}
	return res
}
