package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/enc-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalVault_CanonicalForm(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	vault := models.Vault{Notes: []models.Note{{
		ID:          "6f1c2a8e-0000-4000-8000-000000000001",
		Title:       "Wifi",
		Description: "pass: abc123",
		CreatedAt:   at,
		ModifiedAt:  at,
	}}}

	data, err := marshalVault(vault)
	require.NoError(t, err)

	want := `{
  "notes": [
    {
      "id": "6f1c2a8e-0000-4000-8000-000000000001",
      "title": "Wifi",
      "description": "pass: abc123",
      "created_at": "2024-03-01T12:30:00Z",
      "modified_at": "2024-03-01T12:30:00Z"
    }
  ]
}`
	assert.Equal(t, want, string(data))

	again, err := marshalVault(vault)
	require.NoError(t, err)
	assert.Equal(t, data, again, "serialization must be deterministic")
}

func TestMarshalVault_EmptyAndNil(t *testing.T) {
	for _, v := range []models.Vault{{}, models.NewVault()} {
		data, err := marshalVault(v)
		require.NoError(t, err)
		assert.JSONEq(t, `{"notes":[]}`, string(data))
	}
}

func TestMarshalVault_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	local := time.Date(2024, 3, 1, 15, 0, 0, 0, loc)

	data, err := marshalVault(models.Vault{Notes: []models.Note{{ID: "a", CreatedAt: local, ModifiedAt: local}}})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"created_at": "2024-03-01T12:00:00Z"`)
}

func TestUnmarshalVault_AcceptsForeignTimestamps(t *testing.T) {
	doc := `{"notes":[{"id":"x","title":"t","description":"d",
		"created_at":"2024-03-01T12:30:00.123456789Z","modified_at":"2024-03-01T12:30:00Z"}]}`

	vault, err := unmarshalVault([]byte(doc))
	require.NoError(t, err)
	require.Len(t, vault.Notes, 1)
	assert.Equal(t, 123456789, vault.Notes[0].CreatedAt.Nanosecond())
}

func TestUnmarshalVault_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: `notes`},
		{name: "truncated", doc: `{"notes":[`},
		{name: "missing notes member", doc: `{"items":[]}`},
		{name: "null notes", doc: `{"notes":null}`},
		{name: "notes not a list", doc: `{"notes":{}}`},
		{name: "bad timestamp", doc: `{"notes":[{"id":"a","created_at":"yesterday"}]}`},
		{name: "empty id", doc: `{"notes":[{"id":"","title":"t"}]}`},
		{name: "missing id", doc: `{"notes":[{"title":"t"}]}`},
		{name: "duplicate ids", doc: `{"notes":[{"id":"a"},{"id":"a"}]}`},
		{name: "blank id", doc: `{"notes":[{"id":"  ","title":"t"}]}`},
		{name: "ids equal after trimming", doc: `{"notes":[{"id":"a"},{"id":" a\t"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := unmarshalVault([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrFormat)
		})
	}
}

func TestUnmarshalVault_EmptyList(t *testing.T) {
	vault, err := unmarshalVault([]byte(`{"notes":[]}`))
	require.NoError(t, err)
	assert.NotNil(t, vault.Notes)
	assert.Empty(t, vault.Notes)
}
