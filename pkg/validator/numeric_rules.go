package validator

import "fmt"

func NotZero[N Numeric]() Rule[N] {
	return check(func(v N) bool { return v != 0 }, "must not be zero")
}

func Min[N Numeric](min N) Rule[N] {
	return check(func(v N) bool { return v >= min }, fmt.Sprintf("must be at least %v", min))
}

func Max[N Numeric](max N) Rule[N] {
	return check(func(v N) bool { return v <= max }, fmt.Sprintf("must be at most %v", max))
}

// Between accepts values in the closed range [min, max].
func Between[N Numeric](min, max N) Rule[N] {
	return check(func(v N) bool { return v >= min && v <= max },
		fmt.Sprintf("must be between %v and %v", min, max))
}

func Positive[N Numeric]() Rule[N] {
	return check(func(v N) bool { return v > 0 }, "must be positive")
}
