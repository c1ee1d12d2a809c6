package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/enc-notes/models"
)

// plaintextVault is the decrypted document. The pointer tells a missing
// "notes" member apart from an empty list.
type plaintextVault struct {
	Notes *[]models.Note `json:"notes"`
}

// marshalVault renders vault in its canonical form: indented JSON, notes in
// insertion order, timestamps in UTC.
func marshalVault(vault models.Vault) ([]byte, error) {
	notes := make([]models.Note, len(vault.Notes))
	for i, n := range vault.Notes {
		n.CreatedAt = n.CreatedAt.UTC()
		n.ModifiedAt = n.ModifiedAt.UTC()
		notes[i] = n
	}

	data, err := json.MarshalIndent(plaintextVault{Notes: &notes}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal vault: %w", err)
	}
	return data, nil
}

func unmarshalVault(data []byte) (models.Vault, error) {
	var doc plaintextVault
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Vault{}, fmt.Errorf("%w: decrypted vault is not valid JSON: %w", ErrFormat, err)
	}
	if doc.Notes == nil {
		return models.Vault{}, fmt.Errorf("%w: decrypted vault has no notes member", ErrFormat)
	}

	seen := make(map[string]struct{}, len(*doc.Notes))
	// ids are compared the way lookups match them, ignoring surrounding
	// whitespace
	for i, n := range *doc.Notes {
		id := strings.TrimSpace(n.ID)
		if id == "" {
			return models.Vault{}, fmt.Errorf("%w: note %d has an empty id", ErrFormat, i)
		}
		if _, dup := seen[id]; dup {
			return models.Vault{}, fmt.Errorf("%w: duplicate note id %q", ErrFormat, id)
		}
		seen[id] = struct{}{}
	}

	return models.Vault{Notes: *doc.Notes}, nil
}
