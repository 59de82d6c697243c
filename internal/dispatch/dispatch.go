// Package dispatch delivers prompt text to an AI chat surface, best-effort.
// Integrations are probed in order; when none works the text lands on the
// clipboard so the user can paste it manually.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/promptdeck/promptdeck/internal/clipboard"
)

// ErrUnavailable indicates no integration worked and the clipboard fallback
// failed too.
var ErrUnavailable = errors.New("no chat integration available")

// Integration is one environment-specific way of getting text into a chat.
type Integration interface {
	Name() string
	Available(ctx context.Context) bool
	Send(ctx context.Context, text, titleHint string) error
}

// Outcome reports how the text was delivered. Delivered is false when the
// dispatcher degraded to the clipboard fallback.
type Outcome struct {
	Delivered bool
	Method    string
}

// Dispatcher tries integrations in registration order.
type Dispatcher struct {
	integrations []Integration
	clip         clipboard.Clipboard
	logger       *slog.Logger
}

// NewDispatcher creates a dispatcher with a clipboard fallback.
func NewDispatcher(integrations []Integration, clip clipboard.Clipboard, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{integrations: integrations, clip: clip, logger: logger}
}

// Send delivers text through the first working integration. A failing
// integration is logged and the next one is tried; with none left the text
// is copied to the clipboard and the degraded outcome reported.
func (d *Dispatcher) Send(ctx context.Context, text, titleHint string) (Outcome, error) {
	for _, in := range d.integrations {
		if !in.Available(ctx) {
			continue
		}
		if err := in.Send(ctx, text, titleHint); err != nil {
			d.logger.Warn("chat integration failed, trying next", "integration", in.Name(), "error", err)
			continue
		}
		return Outcome{Delivered: true, Method: in.Name()}, nil
	}

	if err := d.clip.WriteText(text); err != nil {
		return Outcome{}, fmt.Errorf("%w: clipboard fallback failed: %v", ErrUnavailable, err)
	}
	return Outcome{Delivered: false, Method: "clipboard"}, nil
}
