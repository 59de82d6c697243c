package prompt

import "errors"

var (
	// ErrPromptNotFound indicates the prompt doesn't exist.
	ErrPromptNotFound = errors.New("prompt not found")
	// ErrInvalidInput indicates invalid input for prompt operations.
	// Wrapped errors name the failing field.
	ErrInvalidInput = errors.New("invalid prompt input")
)
