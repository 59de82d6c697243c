package dispatch

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandIntegration pipes prompt text to a user-configured external
// command's stdin, e.g. a chat CLI. The title hint is exposed to the command
// through the PROMPTDECK_TITLE environment variable.
type CommandIntegration struct {
	name string
	argv []string
}

// NewCommandIntegration creates an integration running argv. A nil or empty
// argv yields an integration that is never available.
func NewCommandIntegration(argv []string) *CommandIntegration {
	name := "command"
	if len(argv) > 0 {
		name = argv[0]
	}
	return &CommandIntegration{name: name, argv: argv}
}

func (c *CommandIntegration) Name() string { return c.name }

// Available reports whether the configured binary exists on PATH.
func (c *CommandIntegration) Available(_ context.Context) bool {
	if len(c.argv) == 0 {
		return false
	}
	_, err := exec.LookPath(c.argv[0])
	return err == nil
}

// Send runs the command with the prompt text on stdin.
func (c *CommandIntegration) Send(ctx context.Context, text, titleHint string) error {
	if len(c.argv) == 0 {
		return fmt.Errorf("no dispatch command configured")
	}

	cmd := exec.CommandContext(ctx, c.argv[0], c.argv[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if titleHint != "" {
		cmd.Env = append(cmd.Environ(), "PROMPTDECK_TITLE="+titleHint)
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", c.name, err)
	}
	return nil
}
