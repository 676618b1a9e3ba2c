package validator_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/outcome/pkg/validator"
)

func passes[V any](t *testing.T, r validator.Rule[V], values ...V) {
	t.Helper()
	for _, v := range values {
		assert.Empty(t, r.Validate(v, "F"), "expected %v to pass", v)
	}
}

func fails[V any](t *testing.T, r validator.Rule[V], values ...V) {
	t.Helper()
	for _, v := range values {
		assert.NotEmpty(t, r.Validate(v, "F"), "expected %v to fail", v)
	}
}

func TestStringRules(t *testing.T) {
	t.Parallel()

	passes(t, validator.NotEmpty(), "a", " b ")
	fails(t, validator.NotEmpty(), "", "   ")
	passes(t, validator.MinLength(3), "abc", "héé")
	fails(t, validator.MinLength(3), "ab")
	passes(t, validator.MaxLength(3), "", "abc")
	fails(t, validator.MaxLength(3), "abcd")
	passes(t, validator.Length(2, 3), "ab", "abc")
	fails(t, validator.Length(2, 3), "a", "abcd")

	assert.Equal(t, "Title must be at least 3 characters long", validator.MinLength(3).Validate("x", "Title"))
}

func TestNumericRules(t *testing.T) {
	t.Parallel()

	passes(t, validator.NotZero[int](), 1, -1)
	fails(t, validator.NotZero[int](), 0)
	passes(t, validator.Min(1.5), 1.5, 2)
	fails(t, validator.Min(1.5), 1.4)
	passes(t, validator.Max[uint](10), 10)
	fails(t, validator.Max[uint](10), 11)
	passes(t, validator.Between(1, 3), 1, 2, 3)
	fails(t, validator.Between(1, 3), 0, 4)
	passes(t, validator.Positive[int64](), 1)
	fails(t, validator.Positive[int64](), 0, -5)

	assert.Equal(t, "Qty must be between 1 and 3", validator.Between(1, 3).Validate(9, "Qty"))
}

func TestComparableRules(t *testing.T) {
	t.Parallel()

	passes(t, validator.Required[string](), "x")
	fails(t, validator.Required[string](), "")
	fails(t, validator.Required[int](), 0)
	passes(t, validator.Equal("yes"), "yes")
	fails(t, validator.Equal("yes"), "no")
	passes(t, validator.NotEqual(0), 1)
	fails(t, validator.NotEqual(0), 0)
}

func TestCollectionRules(t *testing.T) {
	t.Parallel()

	passes(t, validator.NotEmptySlice[int](), []int{1})
	fails(t, validator.NotEmptySlice[int](), nil, []int{})
	passes(t, validator.MinItems[string](2), []string{"a", "b"})
	fails(t, validator.MinItems[string](2), []string{"a"})
	passes(t, validator.MaxItems[string](1), []string{"a"})
	fails(t, validator.MaxItems[string](1), []string{"a", "b"})
	passes(t, validator.UniqueItems[int](), []int{1, 2, 3}, nil)
	fails(t, validator.UniqueItems[int](), []int{1, 2, 1})
}

func TestChoiceRules(t *testing.T) {
	t.Parallel()

	passes(t, validator.OneOf("draft", "published"), "draft")
	fails(t, validator.OneOf("draft", "published"), "deleted")
	passes(t, validator.NotOneOf(13), 12)
	fails(t, validator.NotOneOf(13), 13)

	assert.Equal(t, "Status must be one of: draft, published",
		validator.OneOf("draft", "published").Validate("x", "Status"))
}

func TestFormatRules(t *testing.T) {
	t.Parallel()

	passes(t, validator.EmailAddress(), "jane@example.com", "Jane Doe <jane@mail.example.org>")
	fails(t, validator.EmailAddress(), "", "not-an-email", "a@localhost", "a@b..com", "@example.com")

	passes(t, validator.URL(), "https://example.com/path?q=1", "ftp://files.example.com")
	fails(t, validator.URL(), "", "example.com", "/relative/path", "https://")

	passes(t, validator.IP(), "10.0.0.1", "::1", "2001:db8::ff00:42:8329")
	fails(t, validator.IP(), "300.1.1.1", "host")

	passes(t, validator.Phone(), "+14155552671", "+44 20 7946 0958", "415-555-2671")
	fails(t, validator.Phone(), "12345", "+0123456789", "phone")
}

func TestPatternRules(t *testing.T) {
	t.Parallel()

	hex := validator.Matches(regexp.MustCompile(`^[0-9a-f]+$`), "a lowercase hex string")
	passes(t, hex, "deadbeef")
	fails(t, hex, "XYZ")
	assert.Equal(t, "Key must match a lowercase hex string", hex.Validate("XYZ", "Key"))

	passes(t, validator.Alpha(), "abc")
	fails(t, validator.Alpha(), "ab1", "")
	passes(t, validator.Alphanumeric(), "ab1")
	fails(t, validator.Alphanumeric(), "ab-1")
	passes(t, validator.NoWhitespace(), "abc", "")
	fails(t, validator.NoWhitespace(), "a b", "a\tb")

	assert.Panics(t, func() { validator.Matches(nil, "") })
}

func TestDateRules(t *testing.T) {
	t.Parallel()

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	pivot := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	passes(t, validator.PastDate(), past)
	fails(t, validator.PastDate(), future)
	passes(t, validator.FutureDate(), future)
	fails(t, validator.FutureDate(), past)
	passes(t, validator.Before(pivot), pivot.Add(-time.Second))
	fails(t, validator.Before(pivot), pivot)
	passes(t, validator.After(pivot), pivot.Add(time.Second))
	fails(t, validator.After(pivot), pivot)

	assert.Equal(t, "Start must be before 2024-01-01T00:00:00Z", validator.Before(pivot).Validate(pivot, "Start"))
}

func TestFinancialRules(t *testing.T) {
	t.Parallel()

	passes(t, validator.CreditCard(), "4111111111111111", "4111 1111 1111 1111", "5500-0000-0000-0004")
	fails(t, validator.CreditCard(), "4111111111111112", "1234", "4111a11111111111")

	passes(t, validator.CurrencyCode(), "USD", "eur")
	fails(t, validator.CurrencyCode(), "XYZ", "US", "")
}

func TestIdentifierRules(t *testing.T) {
	t.Parallel()

	passes(t, validator.Slug(), "hello-world-2", "a")
	fails(t, validator.Slug(), "Hello", "-a", "a-", "a--b", "")

	passes(t, validator.UUID(), uuid.NewString())
	fails(t, validator.UUID(), "", "not-a-uuid", "123e4567e89b12d3a456426614174000")

	passes(t, validator.NonNilUUID(), uuid.New())
	fails(t, validator.NonNilUUID(), uuid.Nil)
}

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	passes(t, validator.StrongPassword(), "Str0ng!Pass")
	fails(t, validator.StrongPassword(), "short1!", "alllowercase1!", "NoDigitsHere!", "NoSpecial123", "")

	relaxed := validator.DefaultPasswordStrength()
	relaxed.RequireSpecial = false
	relaxed.RejectCommon = false
	passes(t, validator.StrongPassword(relaxed), "Password123")
	fails(t, validator.StrongPassword(), "Password123")
}
