package model

import (
	"errors"
	"strings"
)

// ErrMissingIdentity is returned when the access code or display name is blank
var ErrMissingIdentity = errors.New("access code and name are required")

// Identity is the session triple derived once from entry parameters.
// It is supplied with every request and never changes for a view.
type Identity struct {
	AccessCode  string
	Name        string
	IsOrganizer bool
}

// NewIdentity builds an identity from raw entry parameters. The organizer
// flag is a boolean-as-string and only the literal "true" enables it.
func NewIdentity(accessCode, name, isOrganizer string) Identity {
	return Identity{
		AccessCode:  strings.TrimSpace(accessCode),
		Name:        strings.TrimSpace(name),
		IsOrganizer: isOrganizer == "true",
	}
}

// Validate checks that both access code and name are present
func (id Identity) Validate() error {
	if strings.TrimSpace(id.AccessCode) == "" || strings.TrimSpace(id.Name) == "" {
		return ErrMissingIdentity
	}
	return nil
}

// DisplayName returns the user label shown in the board header
func (id Identity) DisplayName() string {
	label := "User: " + id.Name
	if id.IsOrganizer {
		label += " (organizer)"
	}
	return label
}
