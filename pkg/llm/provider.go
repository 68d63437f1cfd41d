package llm

import "context"

// Message is a single chat turn in provider-neutral form. Role is "user" or
// "assistant"; providers map it to their own vocabulary.
type Message struct {
	Role    string
	Content string
}

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // overrides the provider default
}

type Option func(*Options)

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// Provider is the external text-generation capability. Calls are single-shot:
// no retry, no provider-side state between calls. All conversational context
// must be carried inside the prompt.
type Provider interface {
	Generate(ctx context.Context, prompt string, opts ...Option) (string, error)
}
