package transfer_test

import (
	"testing"

	"github.com/promptdeck/promptdeck/internal/transfer"
	"github.com/stretchr/testify/require"
)

func TestDecode_RejectsNonEnvelopeInput(t *testing.T) {
	cases := map[string]string{
		"empty":              "",
		"not json":           "hello",
		"not an object":      `[1, 2, 3]`,
		"missing prompts":    `{"version":"1.0.0","categories":[]}`,
		"missing categories": `{"version":"1.0.0","prompts":[]}`,
		"prompts not array":  `{"version":"1.0.0","prompts":{},"categories":[]}`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := transfer.Decode([]byte(input))
			require.ErrorIs(t, err, transfer.ErrFormat)
		})
	}
}

func TestDecode_DropsInvalidRecordsKeepsValid(t *testing.T) {
	input := `{
		"version": "1.0.0",
		"prompts": [
			{"id": "p1", "title": "Good", "content": "body"},
			{"id": "p2", "title": "", "content": "no title"},
			{"id": "p3", "title": "No content", "content": "   "},
			"not even an object"
		],
		"categories": [
			{"id": "c1", "name": "Good"},
			{"id": "c2", "name": "  "}
		]
	}`

	env, dropped, err := transfer.Decode([]byte(input))
	require.NoError(t, err)
	require.Equal(t, 4, dropped)
	require.Len(t, env.Prompts, 1)
	require.Equal(t, "p1", env.Prompts[0].ID)
	require.Len(t, env.Categories, 1)
	require.Equal(t, "c1", env.Categories[0].ID)
}

func TestDecode_FillsRecordDefaults(t *testing.T) {
	input := `{
		"version": "1.0.0",
		"prompts": [
			{"title": "  Padded  ", "content": " body ", "usageCount": -5,
			 "tags": [" go ", "go", ""]}
		],
		"categories": [
			{"name": "Writing"}
		]
	}`

	env, dropped, err := transfer.Decode([]byte(input))
	require.NoError(t, err)
	require.Zero(t, dropped)

	p := env.Prompts[0]
	require.NotEmpty(t, p.ID)
	require.Equal(t, "Padded", p.Title)
	require.Equal(t, "body", p.Content)
	require.Zero(t, p.UsageCount)
	require.Equal(t, []string{"go"}, p.Tags)
	require.False(t, p.CreatedAt.IsZero())
	require.False(t, p.UpdatedAt.Before(p.CreatedAt))

	require.NotEmpty(t, env.Categories[0].ID)
	require.False(t, env.Categories[0].CreatedAt.IsZero())
}

func TestDecode_EmptyCollectionsAreValid(t *testing.T) {
	env, dropped, err := transfer.Decode([]byte(`{"prompts":[],"categories":[]}`))
	require.NoError(t, err)
	require.Zero(t, dropped)
	require.Empty(t, env.Prompts)
	require.Empty(t, env.Categories)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	env, _, err := transfer.Decode([]byte(`{
		"version": "1.0.0",
		"exportedAt": "2024-06-01T12:00:00Z",
		"prompts": [{"id": "p1", "title": "T", "content": "C", "tags": ["a"],
			"createdAt": "2024-05-01T08:00:00Z", "updatedAt": "2024-05-02T08:00:00Z"}],
		"categories": [{"id": "c1", "name": "N", "createdAt": "2024-05-01T08:00:00Z"}]
	}`))
	require.NoError(t, err)

	data, err := transfer.Encode(env)
	require.NoError(t, err)

	again, dropped, err := transfer.Decode(data)
	require.NoError(t, err)
	require.Zero(t, dropped)
	require.Equal(t, env.Prompts, again.Prompts)
	require.Equal(t, env.Categories, again.Categories)
}
