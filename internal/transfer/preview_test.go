package transfer_test

import (
	"testing"

	"github.com/promptdeck/promptdeck/internal/domain/prompt"
	"github.com/promptdeck/promptdeck/internal/transfer"
	"github.com/stretchr/testify/require"
)

func TestBuildPreview(t *testing.T) {
	env := &transfer.Envelope{
		Version: transfer.CurrentVersion,
		Prompts: []prompt.Prompt{
			{ID: "p1", Title: "A", Content: "a", Tags: []string{"x"}},
			{ID: "p2", Title: "B", Content: "b"},
		},
	}

	preview, err := transfer.BuildPreview(env)
	require.NoError(t, err)
	require.Contains(t, preview.Summary, "2 prompts")
	require.Contains(t, preview.Details, "Prompts with tags: 1")
	require.NotEmpty(t, preview.EstimatedSize)
}
