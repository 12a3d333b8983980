package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"trivia-orb/internal/domain"
	"trivia-orb/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const fencedQuestion = "```json\n{\"question\":\"Q\",\"options\":[\"A\",\"B\",\"C\",\"D\"],\"answer\":\"B\"}\n```"

func newTestGenerationService(gen *MockTextGenerator, opts ...validation.ShapeOption) GenerationService {
	return NewGenerationService(gen, validation.MustNewShapeValidator(opts...))
}

func promptContaining(s string) any {
	return mock.MatchedBy(func(p string) bool { return strings.Contains(p, s) })
}

func TestGenerateQuestion_Success(t *testing.T) {
	gen := new(MockTextGenerator)
	gen.On("Generate", mock.Anything, promptContaining(`"Moons of Saturn"`)).Return(fencedQuestion, nil).Once()

	svc := newTestGenerationService(gen)
	q, err := svc.GenerateQuestion(context.Background(), "Moons of Saturn")

	require.NoError(t, err)
	assert.Equal(t, &domain.TriviaQuestion{Question: "Q", Options: []string{"A", "B", "C", "D"}, Answer: "B"}, q)
	gen.AssertExpectations(t)
}

func TestGenerateQuestion_ProseAroundJSON(t *testing.T) {
	gen := new(MockTextGenerator)
	raw := "Sure! Here is your question:\n{\"question\":\"Which {brace} wins?\",\"options\":[\"{\",\"}\",\"[\",\"]\"],\"answer\":\"}\"}\nEnjoy."
	gen.On("Generate", mock.Anything, mock.Anything).Return(raw, nil).Once()

	q, err := newTestGenerationService(gen).GenerateQuestion(context.Background(), "punctuation")

	require.NoError(t, err)
	assert.Equal(t, "Which {brace} wins?", q.Question)
	assert.Equal(t, "}", q.Answer)
}

func TestGenerateQuestion_Failures(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		genErr   error
		wantCode domain.ErrorCode
	}{
		{name: "empty response", genErr: domain.NewEmptyResponseError(), wantCode: domain.CodeEmptyResponse},
		{name: "service unavailable", genErr: domain.NewServiceUnavailableError(errors.New("quota")), wantCode: domain.CodeServiceUnavailable},
		{name: "no object", raw: "I cannot help with that.", wantCode: domain.CodeExtractionFailed},
		{name: "malformed", raw: "{ invalid json", wantCode: domain.CodeMalformedJSON},
		{name: "three options", raw: `{"question":"Q","options":["A","B","C"],"answer":"A"}`, wantCode: domain.CodeSchemaMismatch},
		{name: "answer not in options", raw: `{"question":"Q","options":["A","B","C","D"],"answer":"E"}`, wantCode: domain.CodeSchemaMismatch},
		{name: "topic shaped object", raw: `[{"title":"x","description":"y"}]`, wantCode: domain.CodeSchemaMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(MockTextGenerator)
			gen.On("Generate", mock.Anything, mock.Anything).Return(tt.raw, tt.genErr).Once()

			q, err := newTestGenerationService(gen).GenerateQuestion(context.Background(), "anything")

			require.Error(t, err)
			assert.Nil(t, q)
			assert.Equal(t, tt.wantCode, domain.CodeOf(err))
			gen.AssertNumberOfCalls(t, "Generate", 1)
		})
	}
}

func TestGenerateTopics_Success(t *testing.T) {
	gen := new(MockTextGenerator)
	raw := "```\n[{\"title\":\"Black Holes\",\"description\":\"Gravity wells\"},{\"title\":\"Mars\",\"description\":\"The red planet\"}]\n```"
	gen.On("Generate", mock.Anything, promptContaining(`"space"`)).Return(raw, nil).Once()

	topics, err := newTestGenerationService(gen).GenerateTopics(context.Background(), "space")

	require.NoError(t, err)
	assert.Equal(t, 2, topics.Count())
	assert.Equal(t, []string{"Black Holes", "Mars"}, topics.Titles())
	gen.AssertExpectations(t)
}

func TestGenerateTopics_BlankTopicUsesFallback(t *testing.T) {
	gen := new(MockTextGenerator)
	gen.On("Generate", mock.Anything, promptContaining(`"fun general trivia"`)).
		Return(`[{"title":"Animals","description":"Creatures"}]`, nil).Once()

	_, err := newTestGenerationService(gen).GenerateTopics(context.Background(), "   ")

	require.NoError(t, err)
	gen.AssertExpectations(t)
}

func TestGenerateTopics_StrictCount(t *testing.T) {
	gen := new(MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).
		Return(`[{"title":"Animals","description":"Creatures"}]`, nil).Once()

	_, err := newTestGenerationService(gen, validation.WithExactTopicCount(5)).GenerateTopics(context.Background(), "animals")

	require.Error(t, err)
	assert.Equal(t, domain.CodeSchemaMismatch, domain.CodeOf(err))
}

func TestGenerateTopics_MissingDescription(t *testing.T) {
	gen := new(MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).
		Return(`[{"title":"Animals"}]`, nil).Once()

	_, err := newTestGenerationService(gen).GenerateTopics(context.Background(), "animals")

	require.Error(t, err)
	assert.Equal(t, domain.CodeSchemaMismatch, domain.CodeOf(err))
}

func TestGenerationService_ModelID(t *testing.T) {
	assert.Equal(t, "mock-model", newTestGenerationService(new(MockTextGenerator)).ModelID())
}
