package domain

// LedgerEntry is one user's booking record. Entries are created on the
// first successful booking for a user and never removed, even when every
// date has been deleted again.
type LedgerEntry struct {
	UserID string      `json:"userid" bson:"userid"`
	Dates  []DateEntry `json:"dates" bson:"dates"`
}

// DateEntry holds the movie ids one user booked for one calendar date.
// Movie ids are unique and keep insertion order. An entry whose movie
// list becomes empty must not survive a mutation: it is pruned
// immediately.
type DateEntry struct {
	Date   string   `json:"date" bson:"date"`
	Movies []string `json:"movies" bson:"movies"`
}

// Clone returns a deep copy, so a snapshot cannot alias the live slices.
func (e LedgerEntry) Clone() LedgerEntry {
	out := LedgerEntry{UserID: e.UserID, Dates: make([]DateEntry, len(e.Dates))}
	for i, d := range e.Dates {
		out.Dates[i] = d.Clone()
	}
	return out
}

func (d DateEntry) Clone() DateEntry {
	return DateEntry{Date: d.Date, Movies: append([]string(nil), d.Movies...)}
}

// CloneLedger deep-copies a full ledger snapshot.
func CloneLedger(entries []LedgerEntry) []LedgerEntry {
	out := make([]LedgerEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Clone()
	}
	return out
}
