package transfer

import "fmt"

// Preview describes what an export would contain, without touching disk.
type Preview struct {
	Summary       string
	Details       []string
	EstimatedSize string
}

// BuildPreview renders a human-readable summary of an envelope.
func BuildPreview(env *Envelope) (*Preview, error) {
	data, err := Encode(env)
	if err != nil {
		return nil, err
	}

	tagged := 0
	for i := range env.Prompts {
		if len(env.Prompts[i].Tags) > 0 {
			tagged++
		}
	}

	size := fmt.Sprintf("%.2f KB", float64(len(data))/1024)
	return &Preview{
		Summary: fmt.Sprintf("Ready to export %d prompts and %d categories",
			len(env.Prompts), len(env.Categories)),
		Details: []string{
			fmt.Sprintf("Prompts: %d", len(env.Prompts)),
			fmt.Sprintf("Categories: %d", len(env.Categories)),
			fmt.Sprintf("Prompts with tags: %d", tagged),
			fmt.Sprintf("Estimated file size: %s", size),
		},
		EstimatedSize: size,
	}, nil
}
