package models

import (
	"strings"
	"time"
)

// Note is a single title/description record kept in the vault.
type Note struct {
	// ID is a random UUID assigned on creation. It never changes and is
	// unique within a vault.
	ID string `json:"id"`

	// Title is a short human-readable name. View lookups also match on it,
	// case-insensitively.
	Title string `json:"title"`

	// Description is the secret text of the note.
	Description string `json:"description"`

	// CreatedAt is the UTC instant the note was added.
	CreatedAt time.Time `json:"created_at"`

	// ModifiedAt is the UTC instant of the last edit.
	ModifiedAt time.Time `json:"modified_at"`
}

// HasID reports whether id (surrounding whitespace ignored) is the note's ID.
func (n Note) HasID(id string) bool {
	return strings.TrimSpace(n.ID) == strings.TrimSpace(id)
}

// Matches reports whether query is the note's ID or, ignoring case, its title.
func (n Note) Matches(query string) bool {
	return n.HasID(query) || strings.EqualFold(strings.TrimSpace(n.Title), strings.TrimSpace(query))
}
