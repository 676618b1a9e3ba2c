package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NotEmpty rejects strings that are empty after trimming whitespace.
func NotEmpty() Rule[string] {
	return check(func(v string) bool { return strings.TrimSpace(v) != "" }, "is required")
}

// MinLength rejects strings shorter than min characters.
func MinLength(min int) Rule[string] {
	return check(func(v string) bool { return utf8.RuneCountInString(v) >= min },
		fmt.Sprintf("must be at least %d characters long", min))
}

// MaxLength rejects strings longer than max characters.
func MaxLength(max int) Rule[string] {
	return check(func(v string) bool { return utf8.RuneCountInString(v) <= max },
		fmt.Sprintf("must be at most %d characters long", max))
}

// Length rejects strings whose length is outside [min, max].
func Length(min, max int) Rule[string] {
	return check(func(v string) bool {
		n := utf8.RuneCountInString(v)
		return n >= min && n <= max
	}, fmt.Sprintf("must be between %d and %d characters long", min, max))
}
