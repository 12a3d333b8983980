package validation

import (
	"encoding/json"
	"fmt"

	"trivia-orb/internal/domain"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Shape tags the structure a parsed model response must have.
type Shape string

const (
	ShapeTopicList      Shape = "topic-list"
	ShapeTriviaQuestion Shape = "trivia-question"
)

var topicListSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
		},
		"required": []any{"title", "description"},
	},
}

var triviaQuestionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{"type": "string"},
		"options": map[string]any{
			"type":     "array",
			"minItems": domain.OptionCount,
			"maxItems": domain.OptionCount,
			"items":    map[string]any{"type": "string"},
		},
		"answer": map[string]any{"type": "string"},
	},
	"required": []any{"question", "options", "answer"},
}

// ShapeValidator checks parsed model output before it is trusted as a domain value.
type ShapeValidator struct {
	schemas         map[Shape]*jsonschema.Schema
	exactTopicCount int
}

// ShapeOption configures a ShapeValidator.
type ShapeOption func(*ShapeValidator)

// WithExactTopicCount rejects topic lists whose length is not n. Zero disables the check.
func WithExactTopicCount(n int) ShapeOption {
	return func(v *ShapeValidator) {
		v.exactTopicCount = n
	}
}

// NewShapeValidator compiles the topic-list and trivia-question schemas.
func NewShapeValidator(opts ...ShapeOption) (*ShapeValidator, error) {
	v := &ShapeValidator{schemas: make(map[Shape]*jsonschema.Schema, 2)}
	for _, opt := range opts {
		opt(v)
	}

	defs := map[Shape]map[string]any{
		ShapeTopicList:      topicListSchema,
		ShapeTriviaQuestion: triviaQuestionSchema,
	}
	for shape, def := range defs {
		compiled, err := compileSchema(string(shape), def)
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", shape, err)
		}
		v.schemas[shape] = compiled
	}
	return v, nil
}

// MustNewShapeValidator is NewShapeValidator that panics on error.
func MustNewShapeValidator(opts ...ShapeOption) *ShapeValidator {
	v, err := NewShapeValidator(opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// ValidateTopicList checks value against the topic-list shape.
// The count requested by the prompt is not enforced unless WithExactTopicCount was set.
func (v *ShapeValidator) ValidateTopicList(value any) (domain.TopicList, error) {
	var topics domain.TopicList
	if err := v.check(ShapeTopicList, value, &topics); err != nil {
		return nil, err
	}
	if v.exactTopicCount > 0 && topics.Count() != v.exactTopicCount {
		return nil, domain.NewSchemaMismatchError(
			fmt.Sprintf("expected %d topics, got %d", v.exactTopicCount, topics.Count()), nil)
	}
	return topics, nil
}

// ValidateTriviaQuestion checks value against the trivia-question shape and
// requires answer to be one of options.
func (v *ShapeValidator) ValidateTriviaQuestion(value any) (*domain.TriviaQuestion, error) {
	var q domain.TriviaQuestion
	if err := v.check(ShapeTriviaQuestion, value, &q); err != nil {
		return nil, err
	}
	if !q.HasAnswerInOptions() {
		return nil, domain.NewSchemaMismatchError(
			fmt.Sprintf("answer %q is not one of the options", q.Answer), nil)
	}
	return &q, nil
}

func (v *ShapeValidator) check(shape Shape, value any, dst any) error {
	schema, ok := v.schemas[shape]
	if !ok {
		return domain.NewInternalError(fmt.Sprintf("no schema for shape %q", shape), nil)
	}
	if err := schema.Validate(value); err != nil {
		return domain.NewSchemaMismatchError(fmt.Sprintf("response does not match %s shape", shape), err)
	}

	// The value already passed the schema, so re-encoding into the typed
	// struct only fails on programmer error.
	b, err := json.Marshal(value)
	if err != nil {
		return domain.NewInternalError("re-encode validated value", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return domain.NewSchemaMismatchError(fmt.Sprintf("decode %s", shape), err)
	}
	return nil
}

func compileSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	// The compiler wants a plain decoded JSON value, so round-trip the Go literal.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var doc any
	if err := json.Unmarshal(defBytes, &doc); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(url)
}
