// Package prompt builds the instructions sent to the text-generation service.
package prompt

import (
	"fmt"
	"strings"

	"trivia-orb/internal/domain"
)

// FallbackTopic replaces an empty topic so no empty-topic prompt is ever sent.
const FallbackTopic = "fun general trivia"

// JSONOnlyInstruction closes every prompt.
const JSONOnlyInstruction = "Only give the JSON, no explanation."

// TopicCount is how many subtopics the topic-list prompt asks for.
const TopicCount = 5

const topicsTemplate = `You are a creative trivia generator AI. Based on the topic "%s", give me %d trivia subtopics.
Each should have:
- A catchy title (3-5 words)
- A quirky, intriguing one-liner description

Respond in this JSON array format:
[
  { "title": "Trivia Title", "description": "One-liner Description" }
]
%s`

const questionTemplate = `Generate one multiple choice trivia question for the topic "%s".
Response must be a JSON object in this format:
{
  "question": "Which animal can sleep standing up?",
  "options": ["Elephant", "Cat", "Horse", "Frog"],
  "answer": "Horse"
}
The "answer" must be copied exactly from "options".
%s`

// Build returns the prompt for mode. The topic is interpolated as-is.
func Build(mode domain.GenerationMode, topic string) (string, error) {
	switch mode {
	case domain.ModeTopicList:
		return TopicsPrompt(topic), nil
	case domain.ModeSingleQuestion:
		return QuestionPrompt(topic), nil
	default:
		return "", fmt.Errorf("unknown generation mode %q", mode)
	}
}

// TopicsPrompt asks for TopicCount subtopics of topic.
func TopicsPrompt(topic string) string {
	return fmt.Sprintf(topicsTemplate, normalizeTopic(topic), TopicCount, JSONOnlyInstruction)
}

// QuestionPrompt asks for one multiple-choice question about subtopic.
func QuestionPrompt(subtopic string) string {
	return fmt.Sprintf(questionTemplate, normalizeTopic(subtopic), JSONOnlyInstruction)
}

func normalizeTopic(topic string) string {
	if strings.TrimSpace(topic) == "" {
		return FallbackTopic
	}
	return topic
}
