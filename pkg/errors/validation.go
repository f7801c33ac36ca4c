package errors

import (
	"strings"
	"unicode"
)

// ValidateDimensions checks that a maze has at least one cell in each
// direction. It is called before any generation attempt.
func ValidateDimensions(width, height int) error {
	if width < 1 {
		return New(ErrCodeInvalidDimensions, "width must be at least 1, got %d", width)
	}
	if height < 1 {
		return New(ErrCodeInvalidDimensions, "height must be at least 1, got %d", height)
	}
	return nil
}

// ValidateCellSize checks the rendering scale of a single cell.
func ValidateCellSize(size int) error {
	if size < 1 {
		return New(ErrCodeInvalidInput, "cell size must be at least 1, got %d", size)
	}
	return nil
}

// ValidateAttempts checks the generation retry budget. Zero is accepted and
// always ends in a maze-too-large failure.
func ValidateAttempts(attempts int) error {
	if attempts < 0 {
		return New(ErrCodeInvalidInput, "attempts cannot be negative, got %d", attempts)
	}
	return nil
}

// ValidatePath validates an output or config file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path cannot start or end with whitespace")
	}

	return nil
}
