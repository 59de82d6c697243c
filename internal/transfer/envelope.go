package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/promptdeck/promptdeck/internal/domain/category"
	"github.com/promptdeck/promptdeck/internal/domain/prompt"
)

// CurrentVersion is the export format version written by this build.
const CurrentVersion = "1.0.0"

// SupportedVersions is the closed allow-list of recognized format versions.
// Anything else imports best-effort with a warning.
var SupportedVersions = []string{"1.0.0"}

// ErrFormat indicates the input is not a parseable export envelope at all.
var ErrFormat = errors.New("invalid export format")

// Envelope is the portable container for a full data set.
type Envelope struct {
	Version    string              `json:"version"`
	ExportedAt time.Time           `json:"exportedAt"`
	Prompts    []prompt.Prompt     `json:"prompts"`
	Categories []category.Category `json:"categories"`
	Metadata   Metadata            `json:"metadata"`
}

// Metadata describes an export. Informational only: import never trusts it.
type Metadata struct {
	TotalCount    int    `json:"totalCount"`
	CategoryCount int    `json:"categoryCount"`
	ExportedBy    string `json:"exportedBy"`
	Platform      string `json:"platform"`
}

// rawEnvelope defers per-record parsing so one malformed record doesn't
// abort the whole import.
type rawEnvelope struct {
	Version    json.RawMessage   `json:"version"`
	ExportedAt json.RawMessage   `json:"exportedAt"`
	Prompts    []json.RawMessage `json:"prompts"`
	Categories []json.RawMessage `json:"categories"`
	Metadata   Metadata          `json:"metadata"`
}

// Decode parses an export envelope leniently. Structural problems (not a
// JSON object, prompts/categories missing or not arrays) fail with ErrFormat;
// individual records that don't parse or miss required fields are dropped,
// and the count of dropped records is returned alongside the envelope.
func Decode(data []byte) (*Envelope, int, error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, 0, fmt.Errorf("%w: empty input", ErrFormat)
	}

	var raw rawEnvelope
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if raw.Prompts == nil {
		return nil, 0, fmt.Errorf("%w: prompts must be an array", ErrFormat)
	}
	if raw.Categories == nil {
		return nil, 0, fmt.Errorf("%w: categories must be an array", ErrFormat)
	}

	env := &Envelope{
		Version:    decodeVersion(raw.Version),
		ExportedAt: decodeTime(raw.ExportedAt),
		Metadata:   raw.Metadata,
	}

	dropped := 0
	for _, msg := range raw.Prompts {
		p, ok := sanitizePrompt(msg)
		if !ok {
			dropped++
			continue
		}
		env.Prompts = append(env.Prompts, p)
	}
	for _, msg := range raw.Categories {
		c, ok := sanitizeCategory(msg)
		if !ok {
			dropped++
			continue
		}
		env.Categories = append(env.Categories, c)
	}

	return env, dropped, nil
}

// Encode renders the envelope as indented UTF-8 JSON.
func Encode(env *Envelope) ([]byte, error) {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding envelope: %w", err)
	}
	return data, nil
}

func decodeVersion(msg json.RawMessage) string {
	var v string
	if len(msg) == 0 || json.Unmarshal(msg, &v) != nil {
		return ""
	}
	return v
}

func decodeTime(msg json.RawMessage) time.Time {
	var t time.Time
	if len(msg) == 0 || json.Unmarshal(msg, &t) != nil {
		return time.Now()
	}
	return t
}

// sanitizePrompt coerces one record, trims it, and fills defaults. A record
// without a usable title and content after trimming is rejected.
func sanitizePrompt(msg json.RawMessage) (prompt.Prompt, bool) {
	var p prompt.Prompt
	if err := json.Unmarshal(msg, &p); err != nil {
		return prompt.Prompt{}, false
	}

	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
	if p.Title == "" || p.Content == "" {
		return prompt.Prompt{}, false
	}

	p.CategoryID = strings.TrimSpace(p.CategoryID)
	p.Description = strings.TrimSpace(p.Description)
	p.Tags = prompt.NormalizeTags(p.Tags)
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.UsageCount < 0 {
		p.UsageCount = 0
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() || p.UpdatedAt.Before(p.CreatedAt) {
		p.UpdatedAt = p.CreatedAt
	}
	return p, true
}

// sanitizeCategory coerces one record. A record without a name is rejected.
func sanitizeCategory(msg json.RawMessage) (category.Category, bool) {
	var c category.Category
	if err := json.Unmarshal(msg, &c); err != nil {
		return category.Category{}, false
	}

	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return category.Category{}, false
	}

	c.Description = strings.TrimSpace(c.Description)
	c.Icon = strings.TrimSpace(c.Icon)
	c.Color = strings.TrimSpace(c.Color)
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return c, true
}

func versionSupported(version string) bool {
	for _, v := range SupportedVersions {
		if v == version {
			return true
		}
	}
	return false
}
