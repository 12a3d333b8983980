package domain

import "slices"

// OptionCount is the number of choices every trivia question carries.
const OptionCount = 4

// Topic is a trivia subtopic suggestion. Title doubles as the subtopic
// sent back when the player asks for a question.
type Topic struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TopicList is a validated batch of topics.
type TopicList []Topic

// Count returns the number of topics in the batch.
func (l TopicList) Count() int {
	return len(l)
}

// Titles returns topic titles in order.
func (l TopicList) Titles() []string {
	titles := make([]string, 0, len(l))
	for _, t := range l {
		titles = append(titles, t.Title)
	}
	return titles
}

// TriviaQuestion is a single multiple-choice question.
type TriviaQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// HasAnswerInOptions reports whether Answer matches one of Options exactly.
func (q *TriviaQuestion) HasAnswerInOptions() bool {
	return slices.Contains(q.Options, q.Answer)
}

// IsCorrect judges a selection by string equality against Answer.
func (q *TriviaQuestion) IsCorrect(selected string) bool {
	return selected == q.Answer
}

// GenerationMode selects the prompt template and the JSON literal expected back.
type GenerationMode string

const (
	ModeTopicList      GenerationMode = "topic-list"
	ModeSingleQuestion GenerationMode = "single-question"
)

// PipelineStage names a step of one generation request.
type PipelineStage string

const (
	StageReceived          PipelineStage = "received"
	StagePromptBuilt       PipelineStage = "prompt_built"
	StageServiceCalled     PipelineStage = "service_called"
	StageResponseExtracted PipelineStage = "response_extracted"
	StageValidated         PipelineStage = "validated"
	StageResponded         PipelineStage = "responded"
	StageFailed            PipelineStage = "failed"
)
