// internal/ai/generator.go
package ai

import "context"

// TextGenerator generates text from a prompt.
// All LLM providers (Gemini, OpenRouter) implement this interface.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
