package mocks

import (
	"context"

	"github.com/promptdeck/promptdeck/internal/domain/category"
	"github.com/promptdeck/promptdeck/internal/domain/prompt"
	"github.com/stretchr/testify/mock"
)

// PromptRepository is a mock for prompt.Repository.
type PromptRepository struct {
	mock.Mock
}

var _ prompt.Repository = (*PromptRepository)(nil)

func (m *PromptRepository) Create(ctx context.Context, p *prompt.Prompt) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PromptRepository) Get(ctx context.Context, id string) (*prompt.Prompt, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*prompt.Prompt); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PromptRepository) Update(ctx context.Context, p *prompt.Prompt) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PromptRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PromptRepository) List(ctx context.Context) ([]prompt.Prompt, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]prompt.Prompt); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PromptRepository) ListByCategory(ctx context.Context, categoryID string) ([]prompt.Prompt, error) {
	args := m.Called(ctx, categoryID)
	if list, ok := args.Get(0).([]prompt.Prompt); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PromptRepository) IncrementUsage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PromptRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// CategoryRepository is a mock for category.Repository.
type CategoryRepository struct {
	mock.Mock
}

var _ category.Repository = (*CategoryRepository)(nil)

func (m *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CategoryRepository) Get(ctx context.Context, id string) (*category.Category, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*category.Category); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CategoryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CategoryRepository) List(ctx context.Context) ([]category.Category, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]category.Category); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CategoryRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
