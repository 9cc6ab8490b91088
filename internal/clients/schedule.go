package clients

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/maelc/cinebooking/internal/domain"
	"github.com/maelc/cinebooking/internal/rpc/schedulepb"
)

type ScheduleErrorKind int

const (
	ScheduleUnavailable ScheduleErrorKind = iota
	ScheduleDateNotFound
	ScheduleMoviesNotScheduled
)

// ScheduleError tells the caller why a requested booking is not legal
// for the date. The three kinds must stay distinguishable: a down
// collaborator is retryable by the caller, a rejected request is not.
type ScheduleError struct {
	Kind   ScheduleErrorKind
	Detail []string
}

func (e *ScheduleError) Error() string {
	switch e.Kind {
	case ScheduleDateNotFound:
		return "schedule: no screenings recorded for this date"
	case ScheduleMoviesNotScheduled:
		return fmt.Sprintf("schedule: movies not scheduled for this date (not allowed: %s)", strings.Join(e.Detail, ", "))
	default:
		return "schedule: service unavailable"
	}
}

// ScheduleChecker validates a (date, movies) request against the
// schedule service. Read-only: it never touches ledger state, whatever
// the outcome.
type ScheduleChecker struct {
	client  schedulepb.ScheduleClient
	timeout time.Duration
}

func NewScheduleChecker(cc grpc.ClientConnInterface, timeout time.Duration) *ScheduleChecker {
	return &ScheduleChecker{client: schedulepb.NewScheduleClient(cc), timeout: timeout}
}

// Check fetches the day's legal movie set and rejects ids outside it.
// The date is expected to be already validated. No retries: an
// unreachable collaborator is reported immediately.
func (c *ScheduleChecker) Check(ctx context.Context, date string, movieIDs []string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	day, err := c.client.GetScheduleByDate(ctx, &schedulepb.DateRequest{Date: date})
	if err != nil {
		st, ok := status.FromError(err)
		if !ok {
			return &ScheduleError{Kind: ScheduleUnavailable}
		}
		switch st.Code() {
		case codes.NotFound, codes.InvalidArgument:
			return &ScheduleError{Kind: ScheduleDateNotFound}
		default:
			return &ScheduleError{Kind: ScheduleUnavailable}
		}
	}

	legal := domain.ScheduleDay{Date: day.Date, Movies: day.Movies}
	var rejected []string
	for _, id := range movieIDs {
		if !legal.Screens(id) {
			rejected = append(rejected, id)
		}
	}
	if len(rejected) > 0 {
		return &ScheduleError{Kind: ScheduleMoviesNotScheduled, Detail: rejected}
	}
	return nil
}
