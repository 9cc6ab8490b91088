package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserServiceUnavailable = errors.New("user service unavailable")
)

// UsersClient asks the user service whether a caller has the admin
// flag. Used by the privileged read paths, never by booking mutations.
type UsersClient struct {
	baseURL string
	http    *http.Client
}

func NewUsersClient(baseURL string, timeout time.Duration) *UsersClient {
	return &UsersClient{baseURL: baseURL, http: &http.Client{Timeout: timeout}}
}

func (c *UsersClient) IsAdmin(ctx context.Context, userID string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/users/%s/admin", c.baseURL, userID), nil)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUserServiceUnavailable, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUserServiceUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var body struct {
			IsAdmin bool `json:"is_admin"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return false, fmt.Errorf("%w: %v", ErrUserServiceUnavailable, err)
		}
		return body.IsAdmin, nil
	case http.StatusNotFound:
		return false, ErrUserNotFound
	default:
		return false, fmt.Errorf("%w: status %d", ErrUserServiceUnavailable, resp.StatusCode)
	}
}
