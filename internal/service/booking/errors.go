package booking

import (
	"errors"
	"fmt"

	"github.com/maelc/cinebooking/internal/ledger"
)

var (
	// ErrInvalidInput covers a blank user id and an empty movie list
	// after trimming. Client-correctable.
	ErrInvalidInput = errors.New("provide movie or movies as a non-empty array")
	ErrInvalidDate  = errors.New("invalid date format, expected YYYYMMDD")

	// Delete-path failures, surfaced from the ledger.
	ErrNoBookingsForUser = ledger.ErrNoBookingsForUser
	ErrNoBookingsForDate = ledger.ErrNoBookingsForDate
	ErrMovieNotBooked    = ledger.ErrMovieNotBooked
)

// UnknownMovieError names the first requested id the catalog could not
// confirm. Absence and an unreachable catalog both end up here; see the
// catalog client for why that conflation is kept.
type UnknownMovieError struct {
	ID string
}

func (e *UnknownMovieError) Error() string {
	return fmt.Sprintf("unknown movie: %s", e.ID)
}
