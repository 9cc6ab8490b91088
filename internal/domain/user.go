package domain

import "strings"

// User is owned by the user service. IsAdmin gates the privileged
// queries of the other services.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	LastActive int64  `json:"last_active"`
	IsAdmin    bool   `json:"is_admin"`
}

// UserIDFromName derives the stable user id from a display name:
// trimmed, lowercased, spaces replaced by underscores.
func UserIDFromName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
