package prompt

import (
	"fmt"
	"strings"
)

// ValidateSaveInput validates fields required to save a prompt. The error
// names the first failing field so the caller can report it.
func ValidateSaveInput(req SaveRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if req.UsageCount != nil && *req.UsageCount < 0 {
		return fmt.Errorf("%w: usageCount must not be negative", ErrInvalidInput)
	}
	return nil
}
