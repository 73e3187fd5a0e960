package errors

import (
	"strings"
	"unicode"
)

// MaxTreeTextLength bounds the size of a textual tree description accepted
// from untrusted sources such as the HTTP API.
const MaxTreeTextLength = 1 << 20

// MaxLabelLength is the longest node label accepted by ValidateLabel.
const MaxLabelLength = 256

// ValidateTreeText validates a textual tree description before parsing.
//
// The validation rules are intentionally conservative:
//   - No empty input
//   - Maximum length of MaxTreeTextLength bytes
//   - No null bytes
//
// Syntax errors are reported by the parser, not here.
func ValidateTreeText(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeInvalidTree, "tree description cannot be empty")
	}

	if len(text) > MaxTreeTextLength {
		return New(ErrCodeInvalidTree, "tree description too long (max %d bytes)", MaxTreeTextLength)
	}

	if strings.ContainsRune(text, '\x00') {
		return New(ErrCodeInvalidTree, "tree description contains a null byte")
	}

	return nil
}

// ValidateLabel validates a single node label.
// Labels end up on a character grid, so control characters are rejected.
func ValidateLabel(label string) error {
	if len(label) > MaxLabelLength {
		return New(ErrCodeInvalidTree, "label too long (max %d characters)", MaxLabelLength)
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTree, "label %q contains control characters", label)
		}
	}

	return nil
}
