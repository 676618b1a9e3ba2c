package validator

import "fmt"

func NotEmptySlice[E any]() Rule[[]E] {
	return check(func(v []E) bool { return len(v) > 0 }, "must not be empty")
}

func MinItems[E any](min int) Rule[[]E] {
	return check(func(v []E) bool { return len(v) >= min }, fmt.Sprintf("must contain at least %d items", min))
}

func MaxItems[E any](max int) Rule[[]E] {
	return check(func(v []E) bool { return len(v) <= max }, fmt.Sprintf("must contain at most %d items", max))
}

// UniqueItems rejects slices containing the same element twice.
func UniqueItems[E comparable]() Rule[[]E] {
	return check(func(v []E) bool {
		seen := make(map[E]struct{}, len(v))
		for _, e := range v {
			if _, ok := seen[e]; ok {
				return false
			}
			seen[e] = struct{}{}
		}
		return true
	}, "must not contain duplicate items")
}
