// Package actions implements the user-facing prompt actions that tie usage
// counting to the clipboard and chat-dispatch collaborators.
package actions

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/promptdeck/promptdeck/internal/clipboard"
	"github.com/promptdeck/promptdeck/internal/dispatch"
	"github.com/promptdeck/promptdeck/internal/domain/prompt"
)

// Service performs prompt actions.
type Service struct {
	prompts    *prompt.Service
	clip       clipboard.Clipboard
	dispatcher *dispatch.Dispatcher
	logger     *slog.Logger
}

// NewService creates a new action service.
func NewService(prompts *prompt.Service, clip clipboard.Clipboard, dispatcher *dispatch.Dispatcher, logger *slog.Logger) *Service {
	return &Service{prompts: prompts, clip: clip, dispatcher: dispatcher, logger: logger}
}

// CopyToClipboard copies a prompt's content to the clipboard and bumps its
// usage counter. A failed counter bump is logged, never surfaced; the copy
// already succeeded from the user's point of view.
func (s *Service) CopyToClipboard(ctx context.Context, id string) (*prompt.Prompt, error) {
	p, err := s.prompts.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.clip.WriteText(p.Content); err != nil {
		return nil, fmt.Errorf("copying prompt %q: %w", p.Title, err)
	}

	s.recordUsage(ctx, p)
	return p, nil
}

// SendToChat dispatches a prompt's content to the chat surface, degrading to
// the clipboard when no integration works. Usage is counted on any
// successful delivery, degraded or not.
func (s *Service) SendToChat(ctx context.Context, id string) (*prompt.Prompt, dispatch.Outcome, error) {
	p, err := s.prompts.Get(ctx, id)
	if err != nil {
		return nil, dispatch.Outcome{}, err
	}

	outcome, err := s.dispatcher.Send(ctx, p.Content, p.Title)
	if err != nil {
		return nil, dispatch.Outcome{}, fmt.Errorf("sending prompt %q: %w", p.Title, err)
	}

	s.recordUsage(ctx, p)
	return p, outcome, nil
}

func (s *Service) recordUsage(ctx context.Context, p *prompt.Prompt) {
	if err := s.prompts.IncrementUsage(ctx, p.ID); err != nil {
		s.logger.Warn("failed to record prompt usage", "id", p.ID, "error", err)
	}
}
