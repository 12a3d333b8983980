package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"trivia-orb/internal/domain"
	"trivia-orb/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

// LangchainGenerator implements domain.TextGenerator on any langchaingo model.
type LangchainGenerator struct {
	model       llms.Model
	modelName   string
	timeout     time.Duration
	temperature float64
}

// NewLangchainGenerator wraps model. Every Generate call is bounded by timeout.
func NewLangchainGenerator(model llms.Model, modelName string, timeout time.Duration, temperature float64) (*LangchainGenerator, error) {
	if model == nil {
		return nil, fmt.Errorf("langchain model cannot be nil")
	}
	if modelName == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive")
	}
	return &LangchainGenerator{
		model:       model,
		modelName:   modelName,
		timeout:     timeout,
		temperature: temperature,
	}, nil
}

// Generate sends prompt as a single human message and returns the raw text.
// Call failures and timeouts map to ServiceUnavailable, blank text to EmptyResponse.
func (g *LangchainGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	msgs := []llms.MessageContent{llms.TextParts(schema.ChatMessageTypeHuman, prompt)}
	resp, err := g.model.GenerateContent(ctx, msgs, llms.WithTemperature(g.temperature))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			l.Error("LLM request timed out", zap.String("model", g.modelName), zap.Duration("timeout", g.timeout))
			return "", domain.NewServiceUnavailableError(fmt.Errorf("LLM request timed out after %s: %w", g.timeout, err))
		}
		l.Error("Failed to get response from LLM", zap.String("model", g.modelName), zap.Error(err))
		return "", domain.NewServiceUnavailableError(fmt.Errorf("LLM call failed: %w", err))
	}

	var text string
	if resp != nil && len(resp.Choices) > 0 {
		text = resp.Choices[0].Content
	}
	l.Debug("LLM call finished", zap.String("model", g.modelName), zap.Duration("duration", time.Since(start)), zap.Int("response_len", len(text)))

	if strings.TrimSpace(text) == "" {
		return "", domain.NewEmptyResponseError()
	}
	return text, nil
}

func (g *LangchainGenerator) ModelID() string {
	return g.modelName
}

var _ domain.TextGenerator = (*LangchainGenerator)(nil)
