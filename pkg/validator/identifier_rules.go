package validator

import "regexp"

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Slug accepts lowercase URL segments such as "hello-world-2".
func Slug() Rule[string] {
	return check(slugRegex.MatchString, "must be a valid slug (lowercase letters, numbers, and hyphens only)")
}
