package category

import "context"

// Repository provides persistence for categories.
//
// Delete clears the category reference on every prompt that points at the
// removed category, in the same transaction as the removal (cascade-to-null,
// never cascade-delete).
type Repository interface {
	Create(ctx context.Context, c *Category) error
	Get(ctx context.Context, id string) (*Category, error)
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Category, error)
	DeleteAll(ctx context.Context) error
}
