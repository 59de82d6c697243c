package clipboard_test

import (
	"testing"

	"github.com/promptdeck/promptdeck/internal/clipboard"
	"github.com/stretchr/testify/require"
)

func TestSystem_RejectsBlankText(t *testing.T) {
	clip := clipboard.NewSystem()
	require.ErrorIs(t, clip.WriteText(""), clipboard.ErrEmptyText)
	require.ErrorIs(t, clip.WriteText("   \n"), clipboard.ErrEmptyText)
}
