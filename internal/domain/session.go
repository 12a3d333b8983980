package domain

import "time"

// AnswerState is the per-session question state.
type AnswerState string

const (
	StateIdle          AnswerState = "idle"
	StateLoading       AnswerState = "loading"
	StateLoaded        AnswerState = "loaded"
	StateAnsweredRight AnswerState = "answered_correct"
	StateAnsweredWrong AnswerState = "answered_wrong"
)

// Answered reports whether the state is terminal for the current question.
func (s AnswerState) Answered() bool {
	return s == StateAnsweredRight || s == StateAnsweredWrong
}

// Session is a guest play session. There are no accounts; every session is a guest.
type Session struct {
	ID        string      `json:"session_id"`
	Guest     bool        `json:"guest"`
	Score     int64       `json:"score"`
	Answered  int64       `json:"answered"`
	Correct   int64       `json:"correct"`
	State     AnswerState `json:"state"`
	CreatedAt time.Time   `json:"created_at"`
}

// AnswerResult is the outcome of judging one selection.
type AnswerResult struct {
	Correct  bool        `json:"correct"`
	Answer   string      `json:"answer"`
	Awarded  int64       `json:"awarded"`
	Score    int64       `json:"score"`
	State    AnswerState `json:"state"`
	Selected string      `json:"selected"`
}
