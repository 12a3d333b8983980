package prompt

import (
	"strings"
	"testing"

	"trivia-orb/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_InterpolatesTopicOnce(t *testing.T) {
	// Trivia, JSON and Horse also occur in the template text.
	topics := []string{"Ancient Rome", "Deep Sea Creatures", "90s Cartoons", "Quantum Physics", "Trivia", "JSON", "Horse"}
	modes := []domain.GenerationMode{domain.ModeTopicList, domain.ModeSingleQuestion}

	for _, mode := range modes {
		for _, topic := range topics {
			t.Run(string(mode)+"/"+topic, func(t *testing.T) {
				p, err := Build(mode, topic)
				require.NoError(t, err)
				assert.Equal(t, 1, strings.Count(p, `topic "`+topic+`"`))
				assert.Contains(t, p, JSONOnlyInstruction)
			})
		}
	}
}

func TestBuild_EmptyTopicUsesFallback(t *testing.T) {
	for _, topic := range []string{"", "   ", "\n\t"} {
		p, err := Build(domain.ModeTopicList, topic)
		require.NoError(t, err)
		assert.Contains(t, p, `"`+FallbackTopic+`"`)
		assert.NotContains(t, p, `topic ""`)
	}

	p := QuestionPrompt("")
	assert.Contains(t, p, `"`+FallbackTopic+`"`)
}

func TestBuild_Deterministic(t *testing.T) {
	a, err := Build(domain.ModeSingleQuestion, "Volcanoes")
	require.NoError(t, err)
	b, err := Build(domain.ModeSingleQuestion, "Volcanoes")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuild_NoEscaping(t *testing.T) {
	topic := `Songs with "quotes" & <tags>`
	p := TopicsPrompt(topic)
	assert.Contains(t, p, topic)
}

func TestBuild_ShapeExamples(t *testing.T) {
	topics := TopicsPrompt("Space")
	assert.Contains(t, topics, `"title"`)
	assert.Contains(t, topics, `"description"`)
	assert.Contains(t, topics, "give me 5 trivia subtopics")

	question := QuestionPrompt("Space")
	assert.Contains(t, question, `"question"`)
	assert.Contains(t, question, `"options"`)
	assert.Contains(t, question, `"answer"`)
}

func TestBuild_UnknownMode(t *testing.T) {
	_, err := Build(domain.GenerationMode("essay"), "Space")
	assert.Error(t, err)
}
