package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/enc-notes/internal/logger"
	"github.com/MKhiriev/enc-notes/models"
)

type noteService struct {
	vaults VaultService
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewNoteService builds a [NoteService] that stores notes through vaults.
func NewNoteService(vaults VaultService, ids IDGenerator, logger *logger.Logger) NoteService {
	return &noteService{
		vaults: vaults,
		ids:    ids,
		now:    time.Now,
		logger: logger,
	}
}

func (n *noteService) List(ctx context.Context, password string) ([]models.Note, error) {
	vault, err := n.vaults.Read(ctx, password)
	if err != nil {
		return nil, err
	}
	return vault.Notes, nil
}

func (n *noteService) Add(ctx context.Context, password, title, description string) (models.Note, error) {
	vault, err := n.vaults.Read(ctx, password)
	if err != nil {
		return models.Note{}, err
	}

	id, err := n.ids.Generate()
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: generate note id: %w", ErrIO, err)
	}

	now := n.now().UTC()
	note := models.Note{
		ID:          id,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		ModifiedAt:  now,
	}
	vault.Notes = append(vault.Notes, note)

	if err = n.vaults.Write(ctx, vault, password); err != nil {
		return models.Note{}, err
	}

	n.logger.Info().Str("func", "noteService.Add").Str("id", note.ID).Msg("note added")
	return note, nil
}

func (n *noteService) Get(ctx context.Context, password, id string) (models.Note, error) {
	vault, err := n.vaults.Read(ctx, password)
	if err != nil {
		return models.Note{}, err
	}

	idx := vault.IndexByID(id)
	if idx < 0 {
		return models.Note{}, fmt.Errorf("%w: id %q", ErrNoteNotFound, strings.TrimSpace(id))
	}
	return vault.Notes[idx], nil
}

func (n *noteService) Find(ctx context.Context, password, query string) (models.Note, error) {
	vault, err := n.vaults.Read(ctx, password)
	if err != nil {
		return models.Note{}, err
	}

	note, ok := vault.Find(query)
	if !ok {
		return models.Note{}, fmt.Errorf("%w: %q", ErrNoteNotFound, strings.TrimSpace(query))
	}
	return note, nil
}

func (n *noteService) Edit(ctx context.Context, password, id, title, description string) (models.Note, error) {
	vault, err := n.vaults.Read(ctx, password)
	if err != nil {
		return models.Note{}, err
	}

	idx := vault.IndexByID(id)
	if idx < 0 {
		return models.Note{}, fmt.Errorf("%w: id %q", ErrNoteNotFound, strings.TrimSpace(id))
	}

	note := &vault.Notes[idx]
	note.Title = strings.TrimSpace(title)
	note.Description = strings.TrimSpace(description)
	note.ModifiedAt = n.now().UTC()

	if err = n.vaults.Write(ctx, vault, password); err != nil {
		return models.Note{}, err
	}

	n.logger.Info().Str("func", "noteService.Edit").Str("id", note.ID).Msg("note edited")
	return *note, nil
}

func (n *noteService) Delete(ctx context.Context, password, id string) error {
	vault, err := n.vaults.Read(ctx, password)
	if err != nil {
		return err
	}

	idx := vault.IndexByID(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %q", ErrNoteNotFound, strings.TrimSpace(id))
	}
	vault.Notes = slices.Delete(vault.Notes, idx, idx+1)

	if err = n.vaults.Write(ctx, vault, password); err != nil {
		return err
	}

	n.logger.Info().Str("func", "noteService.Delete").Str("id", strings.TrimSpace(id)).Msg("note deleted")
	return nil
}
