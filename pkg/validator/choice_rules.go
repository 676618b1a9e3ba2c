package validator

import (
	"fmt"
	"slices"
	"strings"
)

// OneOf accepts only the listed options.
func OneOf[V comparable](options ...V) Rule[V] {
	return check(func(v V) bool { return slices.Contains(options, v) },
		"must be one of: "+joinValues(options))
}

// NotOneOf rejects the listed values.
func NotOneOf[V comparable](forbidden ...V) Rule[V] {
	return check(func(v V) bool { return !slices.Contains(forbidden, v) },
		"must not be one of: "+joinValues(forbidden))
}

func joinValues[V any](values []V) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
