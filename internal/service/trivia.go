package service

import (
	"context"
	"errors"
	"time"

	"trivia-orb/internal/domain"
	"trivia-orb/internal/extract"
	"trivia-orb/internal/logger"
	"trivia-orb/internal/prompt"
	"trivia-orb/internal/validation"

	"go.uber.org/zap"
)

// GenerationService turns a topic into validated trivia content through the
// text generator. Both operations make exactly one generator call.
type GenerationService interface {
	GenerateTopics(ctx context.Context, topic string) (domain.TopicList, error)
	GenerateQuestion(ctx context.Context, subtopic string) (*domain.TriviaQuestion, error)
	ModelID() string
}

type generationService struct {
	generator domain.TextGenerator
	shapes    *validation.ShapeValidator
}

// NewGenerationService creates a new instance of generationService
func NewGenerationService(generator domain.TextGenerator, shapes *validation.ShapeValidator) GenerationService {
	return &generationService{
		generator: generator,
		shapes:    shapes,
	}
}

// GenerateTopics implements GenerationService
func (s *generationService) GenerateTopics(ctx context.Context, topic string) (domain.TopicList, error) {
	p := s.begin(domain.ModeTopicList, topic)

	value, err := p.run(ctx, s.generator)
	if err != nil {
		return nil, err
	}

	topics, err := s.shapes.ValidateTopicList(value)
	if err != nil {
		return nil, p.fail(err)
	}
	p.advance(domain.StageValidated, zap.Int("topic_count", topics.Count()), zap.Strings("titles", topics.Titles()))
	p.advance(domain.StageResponded)
	return topics, nil
}

// GenerateQuestion implements GenerationService
func (s *generationService) GenerateQuestion(ctx context.Context, subtopic string) (*domain.TriviaQuestion, error) {
	p := s.begin(domain.ModeSingleQuestion, subtopic)

	value, err := p.run(ctx, s.generator)
	if err != nil {
		return nil, err
	}

	question, err := s.shapes.ValidateTriviaQuestion(value)
	if err != nil {
		return nil, p.fail(err)
	}
	p.advance(domain.StageValidated)
	p.advance(domain.StageResponded)
	return question, nil
}

func (s *generationService) ModelID() string {
	return s.generator.ModelID()
}

// pipeline tracks one request through its stages.
type pipeline struct {
	mode  domain.GenerationMode
	topic string
	raw   string
	stage domain.PipelineStage
	start time.Time
	log   *zap.Logger
}

func (s *generationService) begin(mode domain.GenerationMode, topic string) *pipeline {
	p := &pipeline{
		mode:  mode,
		topic: topic,
		start: time.Now(),
		log:   logger.Get().With(zap.String("mode", string(mode))),
	}
	p.advance(domain.StageReceived, zap.String("topic", topic))
	return p
}

// run builds the prompt, calls the generator and extracts the JSON literal.
func (p *pipeline) run(ctx context.Context, generator domain.TextGenerator) (any, error) {
	text, err := prompt.Build(p.mode, p.topic)
	if err != nil {
		return nil, p.fail(domain.NewInternalError("failed to build prompt", err))
	}
	p.advance(domain.StagePromptBuilt, zap.Int("prompt_len", len(text)))

	raw, err := generator.Generate(ctx, text)
	if err != nil {
		return nil, p.fail(err)
	}
	p.raw = raw
	p.advance(domain.StageServiceCalled, zap.String("model", generator.ModelID()), zap.Int("response_len", len(raw)))

	value, err := extract.Extract(raw, extract.ModeFor(p.mode))
	if err != nil {
		return nil, p.fail(err)
	}
	p.advance(domain.StageResponseExtracted)
	return value, nil
}

func (p *pipeline) advance(stage domain.PipelineStage, fields ...zap.Field) {
	p.stage = stage
	fields = append(fields, zap.String("stage", string(stage)))
	if stage == domain.StageResponded {
		fields = append(fields, zap.Duration("duration", time.Since(p.start)))
	}
	p.log.Debug("Generation pipeline advanced", fields...)
}

// fail logs the failure kind with the raw model output and returns err.
// Raw output never leaves the server.
func (p *pipeline) fail(err error) error {
	failedAt := p.stage
	p.stage = domain.StageFailed

	fields := []zap.Field{
		zap.String("code", string(domain.CodeOf(err))),
		zap.String("failed_after", string(failedAt)),
		zap.String("topic", p.topic),
		zap.Duration("duration", time.Since(p.start)),
		zap.Error(err),
	}
	raw := p.raw
	var de *domain.DomainError
	if errors.As(err, &de) && de.Raw != "" && raw == "" {
		raw = de.Raw
	}
	if raw != "" {
		fields = append(fields, zap.String("raw_output", raw))
	}
	p.log.Error("Generation pipeline failed", fields...)
	return err
}
