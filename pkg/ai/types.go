package ai

import "context"

// Exchange is a single system+user prompt pair sent to the model.
type Exchange struct {
	SystemPrompt string
	UserPrompt   string
}

// Completer describes a chat model capable of answering one exchange.
type Completer interface {
	Complete(ctx context.Context, exchange Exchange) (string, error)
}
