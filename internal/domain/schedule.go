package domain

// ScheduleDay is the authoritative list of movies screened on one date,
// owned by the schedule service.
type ScheduleDay struct {
	Date   string   `json:"date"`
	Movies []string `json:"movies"`
}

// Screens reports whether the movie id is legally screened on this day.
func (s ScheduleDay) Screens(movieID string) bool {
	for _, id := range s.Movies {
		if id == movieID {
			return true
		}
	}
	return false
}
