package model

import (
	"sort"
)

// Snapshot is the full board state returned by one fetch of /api/board.
// A snapshot fully replaces the previous one; it is never patched.
type Snapshot struct {
	Phase        Phase                     `json:"phase"`
	Stickies     []Sticky                  `json:"stickies"`
	Scores       map[string]int            `json:"scores"`
	Votes        map[string]map[string]int `json:"votes"`
	Participants []Participant             `json:"participants,omitempty"`
}

// RankedSticky pairs a note with its aggregate score and 1-based place
type RankedSticky struct {
	Sticky Sticky
	Score  int
	Place  int
}

// BoardStatus is the summary returned by /api/status
type BoardStatus struct {
	Phase             Phase `json:"phase"`
	ParticipantsCount int   `json:"participants_count"`
	NotesCount        int   `json:"notes_count"`
	VotesCount        int   `json:"votes_count"`
}

// Score returns the aggregate score for a note, 0 if unknown
func (s *Snapshot) Score(stickyID string) int {
	if s.Scores == nil {
		return 0
	}
	return s.Scores[stickyID]
}

// OwnAllocations returns the points the given user assigned per note.
// The result is never nil.
func (s *Snapshot) OwnAllocations(name string) map[string]int {
	own := make(map[string]int)
	if s.Votes == nil {
		return own
	}
	for id, points := range s.Votes[name] {
		own[id] = points
	}
	return own
}

// Sticky returns the note with the given id
func (s *Snapshot) Sticky(id string) (Sticky, bool) {
	for _, note := range s.Stickies {
		if note.ID == id {
			return note, true
		}
	}
	return Sticky{}, false
}

// Ranked returns notes ordered by aggregate score, highest first.
// Ties keep snapshot order and share the same place.
func (s *Snapshot) Ranked() []RankedSticky {
	ranked := make([]RankedSticky, 0, len(s.Stickies))
	for _, note := range s.Stickies {
		ranked = append(ranked, RankedSticky{Sticky: note, Score: s.Score(note.ID)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	for i := range ranked {
		if i > 0 && ranked[i].Score == ranked[i-1].Score {
			ranked[i].Place = ranked[i-1].Place
			continue
		}
		ranked[i].Place = i + 1
	}
	return ranked
}
