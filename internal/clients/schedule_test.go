package clients_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	schedulesrv "github.com/maelc/cinebooking/internal/api/schedule_service_api"
	"github.com/maelc/cinebooking/internal/clients"
	"github.com/maelc/cinebooking/internal/domain"
	"github.com/maelc/cinebooking/internal/rpc/schedulepb"
	"github.com/maelc/cinebooking/internal/service/schedule"
)

type memScheduleStore struct {
	days []domain.ScheduleDay
}

func (s *memScheduleStore) Load(ctx context.Context) ([]domain.ScheduleDay, error) {
	return append([]domain.ScheduleDay(nil), s.days...), nil
}

func (s *memScheduleStore) Replace(ctx context.Context, days []domain.ScheduleDay) error {
	s.days = append([]domain.ScheduleDay(nil), days...)
	return nil
}

// startScheduleServer serves the real schedule service over an
// in-process listener and returns a connected client conn.
func startScheduleServer(t *testing.T, seed []domain.ScheduleDay) (*grpc.ClientConn, *grpc.Server) {
	t.Helper()

	svc := schedule.New(&memScheduleStore{days: seed}, nil)
	require.NoError(t, svc.Load(context.Background()))

	server := grpc.NewServer(grpc.ForceServerCodec(schedulepb.Codec{}))
	schedulepb.RegisterScheduleServer(server, schedulesrv.NewServer(svc))

	lis := bufconn.Listen(1 << 20)
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn, server
}

func TestScheduleChecker_Check(t *testing.T) {
	conn, _ := startScheduleServer(t, []domain.ScheduleDay{
		{Date: "20250615", Movies: []string{"m1", "m2", "m3"}},
	})
	checker := clients.NewScheduleChecker(conn, time.Second)

	assert.NoError(t, checker.Check(context.Background(), "20250615", []string{"m1", "m3"}))
}

func TestScheduleChecker_MoviesNotScheduled(t *testing.T) {
	conn, _ := startScheduleServer(t, []domain.ScheduleDay{
		{Date: "20250615", Movies: []string{"m1", "m2"}},
	})
	checker := clients.NewScheduleChecker(conn, time.Second)

	err := checker.Check(context.Background(), "20250615", []string{"m1", "m9", "m10"})

	var schedErr *clients.ScheduleError
	assert.ErrorAs(t, err, &schedErr)
	assert.Equal(t, clients.ScheduleMoviesNotScheduled, schedErr.Kind)
	assert.Equal(t, []string{"m9", "m10"}, schedErr.Detail)
}

func TestScheduleChecker_DateNotFound(t *testing.T) {
	conn, _ := startScheduleServer(t, nil)
	checker := clients.NewScheduleChecker(conn, time.Second)

	err := checker.Check(context.Background(), "20250615", []string{"m1"})

	var schedErr *clients.ScheduleError
	assert.ErrorAs(t, err, &schedErr)
	assert.Equal(t, clients.ScheduleDateNotFound, schedErr.Kind)
}

func TestScheduleChecker_Unavailable(t *testing.T) {
	conn, server := startScheduleServer(t, nil)
	checker := clients.NewScheduleChecker(conn, time.Second)

	server.Stop()

	err := checker.Check(context.Background(), "20250615", []string{"m1"})

	var schedErr *clients.ScheduleError
	assert.ErrorAs(t, err, &schedErr)
	assert.Equal(t, clients.ScheduleUnavailable, schedErr.Kind)
}
