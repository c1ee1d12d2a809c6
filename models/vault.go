package models

// Vault is the decrypted note collection. It only lives in memory for the
// duration of one command; on disk it always exists encrypted.
type Vault struct {
	// Notes keeps insertion order.
	Notes []Note `json:"notes"`
}

// NewVault returns an empty vault whose Notes serialize as [] rather than null.
func NewVault() Vault {
	return Vault{Notes: make([]Note, 0)}
}

// IndexByID returns the position of the note with the given ID, or -1.
func (v Vault) IndexByID(id string) int {
	for i, n := range v.Notes {
		if n.HasID(id) {
			return i
		}
	}
	return -1
}

// Find returns the first note, in insertion order, whose ID or title matches
// query. Two notes sharing a title resolve to the earlier one.
func (v Vault) Find(query string) (Note, bool) {
	for _, n := range v.Notes {
		if n.Matches(query) {
			return n, true
		}
	}
	return Note{}, false
}
