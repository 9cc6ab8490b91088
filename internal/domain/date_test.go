package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDate(t *testing.T) {
	testCases := []struct {
		name  string
		date  string
		valid bool
	}{
		{name: "valid date", date: "20250615", valid: true},
		{name: "leap day", date: "20240229", valid: true},
		{name: "empty", date: "", valid: false},
		{name: "too short", date: "2025615", valid: false},
		{name: "too long", date: "202506150", valid: false},
		{name: "dashes", date: "2025-1-1", valid: false},
		{name: "month out of range", date: "20251301", valid: false},
		{name: "day out of range", date: "20250632", valid: false},
		{name: "nonexistent calendar day", date: "20250230", valid: false},
		{name: "letters", date: "2025Jun5", valid: false},
		{name: "unicode digits", date: "２０２５０６１５", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidDate(tc.date))
		})
	}
}
