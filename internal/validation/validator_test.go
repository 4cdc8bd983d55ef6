package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsTrimmedText(t *testing.T) {
	req := require.New(t)

	got, err := Validate("  Hello, World! Test  ")
	req.NoError(err)
	req.Equal("Hello, World! Test", got)
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name string
		text string
		code Code
	}{
		{"empty string", "", CodeEmpty},
		{"whitespace only", "   \t\n  ", CodeEmpty},
		{"too short", "hi", CodeTooShort},
		{"too short after trim", "  hi   ", CodeTooShort},
		{"four runes", "abcd", CodeTooShort},
		{"too long", strings.Repeat("a", 201), CodeTooLong},
		{"no alphanumeric", "!!!!!!", CodeNoAlphanumeric},
		{"punctuation and spaces", "?! ... ?!", CodeNoAlphanumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)

			_, err := Validate(tt.text)
			req.Error(err)

			var verr *Error
			req.ErrorAs(err, &verr)
			req.Equal(tt.code, verr.Code)
			req.NotEmpty(verr.Message)
		})
	}
}

func TestValidateBoundaryLengths(t *testing.T) {
	req := require.New(t)

	// Exactly MinLength and MaxLength runes are accepted.
	minText := strings.Repeat("a", MinLength)
	got, err := Validate(minText)
	req.NoError(err)
	req.Equal(minText, got)

	maxText := strings.Repeat("a", MaxLength)
	got, err = Validate(maxText)
	req.NoError(err)
	req.Equal(maxText, got)

	_, err = Validate(strings.Repeat("a", MaxLength+1))
	var verr *Error
	req.ErrorAs(err, &verr)
	req.Equal(CodeTooLong, verr.Code)
}

func TestValidateCountsRunesNotBytes(t *testing.T) {
	req := require.New(t)

	// Five multi-byte runes: 15 bytes but exactly the minimum length, as
	// long as one alphanumeric rune is present.
	_, err := Validate("ééééé")
	var verr *Error
	req.ErrorAs(err, &verr)
	req.Equal(CodeNoAlphanumeric, verr.Code)

	got, err := Validate("ééééa")
	req.NoError(err)
	req.Equal("ééééa", got)

	// 200 multi-byte runes pass the length rule even though the byte count
	// is far above 200.
	long := strings.Repeat("é", MaxLength-1) + "a"
	got, err = Validate(long)
	req.NoError(err)
	req.Equal(long, got)
}

func TestValidateFailFastOrder(t *testing.T) {
	req := require.New(t)

	// "!" padded with whitespace violates both the length rule and the
	// alphanumeric rule; the length rule comes first.
	_, err := Validate("  !  ")
	var verr *Error
	req.ErrorAs(err, &verr)
	req.Equal(CodeTooShort, verr.Code)
}
