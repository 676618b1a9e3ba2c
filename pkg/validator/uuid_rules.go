package validator

import "github.com/google/uuid"

// UUID accepts the canonical 36 character hyphenated form only.
func UUID() Rule[string] {
	return check(func(v string) bool {
		if len(v) != 36 || v[8] != '-' || v[13] != '-' || v[18] != '-' || v[23] != '-' {
			return false
		}
		_, err := uuid.Parse(v)
		return err == nil
	}, "must be a valid UUID")
}

// NonNilUUID rejects uuid.Nil.
func NonNilUUID() Rule[uuid.UUID] {
	return check(func(v uuid.UUID) bool { return v != uuid.Nil }, "must not be a nil UUID")
}
