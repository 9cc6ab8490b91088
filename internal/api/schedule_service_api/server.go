package schedule_service_api

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/maelc/cinebooking/internal/domain"
	"github.com/maelc/cinebooking/internal/rpc/schedulepb"
	"github.com/maelc/cinebooking/internal/service/schedule"
)

// Server adapts the schedule service to its gRPC surface.
type Server struct {
	schedule *schedule.Service
}

func NewServer(svc *schedule.Service) *Server {
	return &Server{schedule: svc}
}

func (s *Server) GetAllSchedules(ctx context.Context, _ *schedulepb.Empty) (*schedulepb.ScheduleList, error) {
	days := s.schedule.All()
	entries := make([]*schedulepb.ScheduleEntry, 0, len(days))
	for _, d := range days {
		entries = append(entries, toPBEntry(d))
	}
	return &schedulepb.ScheduleList{Entries: entries}, nil
}

func (s *Server) GetScheduleByDate(ctx context.Context, req *schedulepb.DateRequest) (*schedulepb.ScheduleEntry, error) {
	day, err := s.schedule.ByDate(req.Date)
	if err != nil {
		return nil, toStatus(err)
	}
	return toPBEntry(day), nil
}

func (s *Server) AddScheduleEntry(ctx context.Context, req *schedulepb.AddScheduleRequest) (*schedulepb.ScheduleEntry, error) {
	day, err := s.schedule.Add(ctx, req.Date, req.Movies)
	if err != nil {
		return nil, toStatus(err)
	}
	return toPBEntry(day), nil
}

func (s *Server) UpdateScheduleEntry(ctx context.Context, req *schedulepb.UpdateScheduleRequest) (*schedulepb.ScheduleEntry, error) {
	day, err := s.schedule.Update(ctx, req.Date, req.Movies)
	if err != nil {
		return nil, toStatus(err)
	}
	return toPBEntry(day), nil
}

func (s *Server) DeleteScheduleEntry(ctx context.Context, req *schedulepb.DateRequest) (*schedulepb.DeleteScheduleResponse, error) {
	day, err := s.schedule.Delete(ctx, req.Date)
	if err != nil {
		return nil, toStatus(err)
	}
	return &schedulepb.DeleteScheduleResponse{
		Message:      "schedule deleted for date: " + day.Date,
		DeletedEntry: toPBEntry(day),
	}, nil
}

func (s *Server) BestRatedScheduledMovie(ctx context.Context, req *schedulepb.DateRequest) (*schedulepb.BestRatedResponse, error) {
	best, err := s.schedule.BestRatedScheduledMovie(ctx, req.Date)
	if err != nil {
		return nil, toStatus(err)
	}
	resp := &schedulepb.BestRatedResponse{
		Date:     best.Date,
		HasMovie: best.HasMovie,
		Message:  best.Message,
		Rating:   best.Rating,
	}
	if best.Movie != nil {
		resp.Movie = &schedulepb.Movie{
			Id:       best.Movie.ID,
			Title:    best.Movie.Title,
			Director: best.Movie.Director,
			Rating:   best.Movie.Rating,
		}
	}
	return resp, nil
}

func toPBEntry(d domain.ScheduleDay) *schedulepb.ScheduleEntry {
	return &schedulepb.ScheduleEntry{Date: d.Date, Movies: d.Movies}
}

func toStatus(err error) error {
	switch {
	case errors.Is(err, schedule.ErrInvalidDate),
		errors.Is(err, schedule.ErrEmptyMovies),
		errors.Is(err, schedule.ErrBlankMovie):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, schedule.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, schedule.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

var _ schedulepb.ScheduleServer = (*Server)(nil)
