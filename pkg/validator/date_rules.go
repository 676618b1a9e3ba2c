package validator

import "time"

func PastDate() Rule[time.Time] {
	return check(func(v time.Time) bool { return v.Before(time.Now()) }, "must be in the past")
}

func FutureDate() Rule[time.Time] {
	return check(func(v time.Time) bool { return v.After(time.Now()) }, "must be in the future")
}

func Before(limit time.Time) Rule[time.Time] {
	return check(func(v time.Time) bool { return v.Before(limit) },
		"must be before "+limit.Format(time.RFC3339))
}

func After(limit time.Time) Rule[time.Time] {
	return check(func(v time.Time) bool { return v.After(limit) },
		"must be after "+limit.Format(time.RFC3339))
}
