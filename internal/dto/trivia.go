package dto

import "trivia-orb/internal/domain"

// GenerateTopicsRequest is the body of POST /api/generateTopics.
// @Description Optional seed topic for subtopic suggestions
type GenerateTopicsRequest struct {
	Topic string `json:"topic" example:"space exploration"`
}

// GenerateTopicsResponse wraps the generated topics.
// @Description Generated trivia subtopics
type GenerateTopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// GenerateQuestionRequest is the body of POST /api/generateQuestion.
// SessionID is optional; when set the question is recorded for answer judging.
// @Description Subtopic to generate one question for
type GenerateQuestionRequest struct {
	Subtopic  string `json:"subtopic" validate:"required,max=200" example:"Moons of Saturn"`
	SessionID string `json:"session_id,omitempty" validate:"omitempty,len=26"`
}

// QuestionResponse is a trivia question, returned unwrapped.
// @Description One multiple-choice trivia question
type QuestionResponse struct {
	Question string   `json:"question" example:"Which animal can sleep standing up?"`
	Options  []string `json:"options" example:"Elephant,Cat,Horse,Frog"`
	Answer   string   `json:"answer" example:"Horse"`
}

// NewQuestionResponse converts a validated question.
func NewQuestionResponse(q *domain.TriviaQuestion) QuestionResponse {
	return QuestionResponse{
		Question: q.Question,
		Options:  q.Options,
		Answer:   q.Answer,
	}
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
