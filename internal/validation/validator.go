// Package validation implements the message text validation pipeline.
//
// Validation is fail-fast: rules are applied in a fixed order and the first
// violated rule determines the reported reason. All functions are pure and
// safe for concurrent use. Duplicate detection is not a validation concern;
// it requires store state and lives in the store.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Rule bounds, measured in runes on the trimmed text.
const (
	MinLength = 5
	MaxLength = 200
)

// Code identifies the first validation rule a text violated.
type Code string

const (
	CodeEmpty          Code = "EMPTY"
	CodeTooShort       Code = "TOO_SHORT"
	CodeTooLong        Code = "TOO_LONG"
	CodeNoAlphanumeric Code = "NO_ALPHANUMERIC"
)

// Error is a validation failure. It carries the reason code and a
// human-readable message suitable for an API error body.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("validation failed (%s): %s", e.Code, e.Message)
}

// Validate checks text against the message rules and returns the canonical
// stored form: the text with leading and trailing whitespace removed.
// Length rules count runes, not bytes, so multi-byte text is measured
// correctly.
func Validate(text string) (string, error) {
	if text == "" {
		return "", &Error{Code: CodeEmpty, Message: "Message must not be empty"}
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", &Error{Code: CodeEmpty, Message: "Message must not be empty or only whitespace"}
	}

	length := utf8.RuneCountInString(trimmed)
	if length < MinLength {
		return "", &Error{Code: CodeTooShort, Message: fmt.Sprintf("Message must be at least %d characters", MinLength)}
	}
	if length > MaxLength {
		return "", &Error{Code: CodeTooLong, Message: fmt.Sprintf("Message must be less than %d characters", MaxLength)}
	}

	if !strings.ContainsFunc(trimmed, isAlphanumeric) {
		return "", &Error{Code: CodeNoAlphanumeric, Message: "Message must contain at least 1 alphanumeric character"}
	}

	return trimmed, nil
}

// isAlphanumeric reports whether r is in [A-Za-z0-9]. The rule is
// deliberately ASCII-only, matching the duplicate index's simple case
// folding.
func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
