package booking

import (
	"context"
	"errors"

	"github.com/maelc/cinebooking/internal/clients"
)

var (
	ErrNotAdmin        = errors.New("admin only")
	ErrUnauthenticated = errors.New("missing caller identity")
)

// Caller is the identity attached to a privileged request: either the
// trusted admin header set by the edge, or a user id to verify against
// the user service.
type Caller struct {
	AdminHeader bool
	UserID      string
}

type UserDirectory interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// AdminGate guards the privileged read operations (full ledger dump,
// per-date stats). It is not part of the booking-mutation path.
type AdminGate struct {
	users UserDirectory
}

func NewAdminGate(users UserDirectory) *AdminGate {
	return &AdminGate{users: users}
}

func (g *AdminGate) RequireAdmin(ctx context.Context, caller Caller) error {
	if caller.AdminHeader {
		return nil
	}
	if caller.UserID == "" {
		return ErrUnauthenticated
	}
	ok, err := g.users.IsAdmin(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, clients.ErrUserNotFound) {
			return ErrNotAdmin
		}
		return err
	}
	if !ok {
		return ErrNotAdmin
	}
	return nil
}
