package validators

import "regexp"

// 11 digits, first one 7 or 8. No separators, no leading +.
var phonePattern = regexp.MustCompile(`^[78]\d{10}$`)

func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
