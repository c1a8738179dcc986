package errors

import (
	"strings"
	"unicode"
)

// ValidateTopic validates a presentation topic for safety and size.
//
// The validation rules are intentionally conservative:
//   - No empty topics
//   - No control characters
//   - Maximum length of 500 characters
//
// Prompt-level sanitization is the generator's concern, not validated here.
func ValidateTopic(topic string) error {
	if strings.TrimSpace(topic) == "" {
		return New(ErrCodeInvalidTopic, "topic cannot be empty")
	}

	if len(topic) > 500 {
		return New(ErrCodeInvalidTopic, "topic too long (max 500 characters)")
	}

	for _, r := range topic {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return New(ErrCodeInvalidTopic, "topic contains invalid control characters")
		}
	}

	return nil
}

// ValidateSlideCount validates a requested slide count.
// The bounds keep decks usable and generation costs sane.
func ValidateSlideCount(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidInput, "slide count must be at least 1")
	}
	if n > 50 {
		return New(ErrCodeInvalidInput, "slide count too large (max 50)")
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "output path cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
