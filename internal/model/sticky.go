package model

import (
	"strings"
)

// DefaultStickyColor is applied when the server sends a note without a color
const DefaultStickyColor = "#fff8b3"

// Sticky represents a single note placed on the board canvas
type Sticky struct {
	ID         string  `json:"id"`
	AuthorName string  `json:"author_name"`
	Text       string  `json:"text"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Color      string  `json:"color,omitempty"`
	CreatedAt  string  `json:"created_at,omitempty"` // ISO timestamp as sent by the server
}

// Participant represents a board member as reported in the snapshot
type Participant struct {
	Name        string `json:"name"`
	IsOrganizer bool   `json:"is_organizer"`
	Color       string `json:"color,omitempty"`
}

// DisplayColor returns the note color, or the default when absent
func (s *Sticky) DisplayColor() string {
	if strings.TrimSpace(s.Color) == "" {
		return DefaultStickyColor
	}
	return s.Color
}

// DisplayAuthor returns the author name shown on the note; empty when absent
func (s *Sticky) DisplayAuthor() string {
	return s.AuthorName
}

// IsAuthoredBy reports whether the note belongs to the given participant
func (s *Sticky) IsAuthoredBy(name string) bool {
	return name != "" && s.AuthorName == name
}
