package validator

import "fmt"

// Required rejects the zero value of V.
func Required[V comparable]() Rule[V] {
	return check(func(v V) bool {
		var zero V
		return v != zero
	}, "is required")
}

func Equal[V comparable](want V) Rule[V] {
	return check(func(v V) bool { return v == want }, fmt.Sprintf("must be equal to %v", want))
}

func NotEqual[V comparable](other V) Rule[V] {
	return check(func(v V) bool { return v != other }, fmt.Sprintf("must not be equal to %v", other))
}
