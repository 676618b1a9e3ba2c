package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)

	commonPasswords = map[string]bool{
		"password": true, "password1": true, "password123": true, "123456": true,
		"12345678": true, "123456789": true, "qwerty": true, "qwerty123": true,
		"abc123": true, "letmein": true, "welcome": true, "admin": true,
		"admin123": true, "iloveyou": true, "monkey": true, "dragon": true,
		"sunshine": true, "trustno1": true, "1q2w3e4r": true, "passw0rd": true,
	}
)

// PasswordStrengthConfig describes a password policy.
type PasswordStrengthConfig struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	MinCharClasses   int
	RejectCommon     bool
}

// DefaultPasswordStrength is 8 to 128 characters with every character class
// required and well-known passwords rejected.
func DefaultPasswordStrength() PasswordStrengthConfig {
	return PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        128,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigits:    true,
		RequireSpecial:   true,
		MinCharClasses:   3,
		RejectCommon:     true,
	}
}

// StrongPassword enforces cfg, or DefaultPasswordStrength when cfg is omitted.
func StrongPassword(cfg ...PasswordStrengthConfig) Rule[string] {
	policy := DefaultPasswordStrength()
	if len(cfg) > 0 {
		policy = cfg[0]
	}
	msg := fmt.Sprintf("must be %d-%d characters with required character types", policy.MinLength, policy.MaxLength)
	return check(func(v string) bool { return policy.allows(v) }, msg)
}

func (p PasswordStrengthConfig) allows(v string) bool {
	n := utf8.RuneCountInString(v)
	if n < p.MinLength || (p.MaxLength > 0 && n > p.MaxLength) {
		return false
	}
	if p.RejectCommon && commonPasswords[strings.ToLower(v)] {
		return false
	}

	classes := 0
	for _, c := range []struct {
		has      bool
		required bool
	}{
		{uppercaseRegex.MatchString(v), p.RequireUppercase},
		{lowercaseRegex.MatchString(v), p.RequireLowercase},
		{digitRegex.MatchString(v), p.RequireDigits},
		{specialCharRegex.MatchString(v), p.RequireSpecial},
	} {
		if c.required && !c.has {
			return false
		}
		if c.has {
			classes++
		}
	}
	return classes >= p.MinCharClasses
}
