// Package backend provides the model backend boundary: a text-completion
// capability that personas and the synthesizer call into. The concrete
// implementation wraps the Anthropic API (directly or via AWS Bedrock);
// everything above this package depends only on the Generator interface.
package backend

import "context"

// Generator is the single capability the orchestrator needs from a model
// backend. Implementations must return a typed *Error on transport,
// timeout and quota failures rather than panicking.
type Generator interface {
	// Generate produces a text completion for the prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
