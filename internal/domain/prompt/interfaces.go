package prompt

import "context"

// Repository provides persistence for prompts. Implementations keep insertion
// order stable: Update must not move a prompt within List results.
type Repository interface {
	Create(ctx context.Context, p *Prompt) error
	Get(ctx context.Context, id string) (*Prompt, error)
	Update(ctx context.Context, p *Prompt) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Prompt, error)
	ListByCategory(ctx context.Context, categoryID string) ([]Prompt, error)
	IncrementUsage(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
