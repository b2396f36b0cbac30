package llm

import (
	"context"
)

type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ModelLister is an optional capability: providers that can enumerate
// their available models implement it, which is what makes runtime
// model switching verifiable.
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}
