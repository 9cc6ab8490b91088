package booking

import (
	"context"
	"sort"

	"github.com/maelc/cinebooking/internal/clients"
	"github.com/maelc/cinebooking/internal/domain"
)

// MovieDetail is a catalog movie, or a placeholder carrying an error
// note when the id could not be resolved. Detail queries never fail on
// a missing movie; they degrade per id.
type MovieDetail struct {
	ID       string  `json:"id"`
	Title    string  `json:"title,omitempty"`
	Director string  `json:"director,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
	Error    string  `json:"error,omitempty"`
}

type DetailedDate struct {
	Date   string        `json:"date"`
	Movies []MovieDetail `json:"movies"`
}

type DetailedEntry struct {
	UserID string         `json:"userid"`
	Dates  []DetailedDate `json:"dates"`
}

type MovieCount struct {
	Movie MovieDetail `json:"movie"`
	Count int         `json:"count"`
}

type DateStats struct {
	Date   string       `json:"date"`
	Movies []MovieCount `json:"movies"`
}

// DetailedBookings resolves every booked movie id against the catalog.
// An unknown user yields an entry with empty dates, like Bookings.
func (s *Service) DetailedBookings(ctx context.Context, userID string) DetailedEntry {
	entry := s.ledger.Bookings(userID)

	out := DetailedEntry{UserID: entry.UserID, Dates: make([]DetailedDate, 0, len(entry.Dates))}
	for _, d := range entry.Dates {
		dd := DetailedDate{Date: d.Date, Movies: make([]MovieDetail, 0, len(d.Movies))}
		for _, id := range d.Movies {
			dd.Movies = append(dd.Movies, s.movieDetail(ctx, id))
		}
		out.Dates = append(out.Dates, dd)
	}
	return out
}

// StatsForDate counts, across all users, how often each movie is booked
// on the date, most booked first.
func (s *Service) StatsForDate(ctx context.Context, date string) (*DateStats, error) {
	if !domain.ValidDate(date) {
		return nil, ErrInvalidDate
	}

	counts := s.ledger.CountMoviesForDate(date)
	items := make([]MovieCount, 0, len(counts))
	for id, n := range counts {
		items = append(items, MovieCount{Movie: s.movieDetail(ctx, id), Count: n})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Count > items[j].Count })

	return &DateStats{Date: date, Movies: items}, nil
}

func (s *Service) movieDetail(ctx context.Context, id string) MovieDetail {
	res := s.catalog.Fetch(ctx, id)
	if res.Status != clients.LookupFound {
		return MovieDetail{ID: id, Error: "movie not found"}
	}
	m := res.Movie
	return MovieDetail{ID: m.ID, Title: m.Title, Director: m.Director, Rating: m.Rating}
}
