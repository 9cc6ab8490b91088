package domain

// Movie is owned by the movie service. The booking service only reads it
// through the catalog client and never writes it back.
type Movie struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Director string  `json:"director"`
	Rating   float64 `json:"rating"`
}

// Actor belongs to the movie service's catalog. Films holds the ids of
// the movies the actor appears in.
type Actor struct {
	ID        string   `json:"id"`
	Firstname string   `json:"firstname"`
	Lastname  string   `json:"lastname"`
	Birthyear int      `json:"birthyear"`
	Films     []string `json:"films"`
}
