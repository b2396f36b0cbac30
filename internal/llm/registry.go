package llm

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/veritext/veritext/internal/config"
)

var (
	ErrModelNotAvailable  = errors.New("model not available")
	ErrListingUnsupported = errors.New("provider does not support model listing")
)

// Registry holds the process-wide "current model" state. Comparison
// requests read the active client through it while /api/models may swap
// the model underneath them, so all access goes through the lock.
type Registry struct {
	mu     sync.RWMutex
	cfg    config.LLMConfig
	client Client
	build  func(ctx context.Context, cfg config.LLMConfig) (Client, error)
}

func NewRegistry(ctx context.Context, cfg config.LLMConfig) (*Registry, error) {
	r := &Registry{
		cfg:   cfg,
		build: NewClient,
	}
	client, err := r.build(ctx, cfg)
	if err != nil {
		return nil, err
	}
	r.client = client
	return r, nil
}

func (r *Registry) Client() Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.client
}

func (r *Registry) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cfg.Model
}

func (r *Registry) AvailableModels(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	lister, ok := r.client.(ModelLister)
	r.mu.RUnlock()
	if !ok {
		return nil, ErrListingUnsupported
	}
	return lister.ListModels(ctx)
}

// Switch validates the requested model against the provider's model list
// and rebuilds the client. The write lock is held across the rebuild so a
// concurrent request never observes a half-updated configuration.
func (r *Registry) Switch(ctx context.Context, model string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lister, ok := r.client.(ModelLister)
	if !ok {
		return ErrListingUnsupported
	}
	available, err := lister.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	found := false
	for _, name := range available {
		if name == model {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrModelNotAvailable, model)
	}

	cfg := r.cfg
	cfg.Model = model
	client, err := r.build(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build client for model %s: %w", model, err)
	}

	r.cfg = cfg
	r.client = client
	return nil
}
