package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriviaQuestion_Answer(t *testing.T) {
	q := &TriviaQuestion{
		Question: "Which animal can sleep standing up?",
		Options:  []string{"Elephant", "Cat", "Horse", "Frog"},
		Answer:   "Horse",
	}

	assert.True(t, q.HasAnswerInOptions())
	assert.True(t, q.IsCorrect("Horse"))
	assert.False(t, q.IsCorrect("horse"))
	assert.False(t, q.IsCorrect("Cat"))

	q.Answer = "Dog"
	assert.False(t, q.HasAnswerInOptions())
}

func TestTopicList(t *testing.T) {
	l := TopicList{{Title: "Mars", Description: "Red"}, {Title: "Mars", Description: "Again"}}

	assert.Equal(t, 2, l.Count())
	assert.Equal(t, []string{"Mars", "Mars"}, l.Titles())
}

func TestAnswerState_Answered(t *testing.T) {
	assert.True(t, StateAnsweredRight.Answered())
	assert.True(t, StateAnsweredWrong.Answered())
	assert.False(t, StateIdle.Answered())
	assert.False(t, StateLoading.Answered())
	assert.False(t, StateLoaded.Answered())
}
