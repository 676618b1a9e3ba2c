package validator

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

// Matches accepts strings matching re. description completes the message
// "must match <description>".
func Matches(re *regexp.Regexp, description string) Rule[string] {
	if re == nil {
		panic(ErrNilRule)
	}
	if description == "" {
		description = "the pattern " + re.String()
	}
	return check(re.MatchString, "must match "+description)
}

func Alpha() Rule[string] {
	return check(alphaRegex.MatchString, "must contain only letters")
}

func Alphanumeric() Rule[string] {
	return check(alphanumericRegex.MatchString, "must contain only letters and numbers")
}

func NoWhitespace() Rule[string] {
	return check(func(v string) bool {
		return !strings.ContainsFunc(v, unicode.IsSpace)
	}, "must not contain whitespace")
}
