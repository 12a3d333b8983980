package domain

import "context"

// TextGenerator is the external text-generation collaborator.
// Implementations return the raw model text for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// ModelID returns the model identifier the generator is configured to use.
	ModelID() string
}
