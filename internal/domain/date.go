package domain

import "time"

// ValidDate accepts exactly eight ASCII digits forming a real Gregorian
// calendar date (YYYYMMDD). Anything else, including dates like Feb 30,
// is rejected.
func ValidDate(s string) bool {
	if len(s) != 8 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	_, err := time.Parse("20060102", s)
	return err == nil
}
