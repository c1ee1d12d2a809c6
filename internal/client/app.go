package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/enc-notes/internal/logger"
	"github.com/MKhiriev/enc-notes/internal/service"
	"github.com/MKhiriev/enc-notes/internal/store"
	"github.com/MKhiriev/enc-notes/internal/tui"
)

// App runs the individual encnotes commands. Each method is one command:
// it resolves the master password, calls the services and prints the
// outcome to out.
type App struct {
	vaults    service.VaultService
	notes     service.NoteService
	session   store.SessionStorage
	prompter  Prompter
	clipboard Clipboard
	out       io.Writer

	logger *logger.Logger
}

// NewApp builds an App from the service layer and the terminal
// collaborators.
func NewApp(
	services *service.Services,
	session store.SessionStorage,
	prompter Prompter,
	clipboard Clipboard,
	out io.Writer,
	logger *logger.Logger,
) *App {
	return &App{
		vaults:    services.VaultService,
		notes:     services.NoteService,
		session:   session,
		prompter:  prompter,
		clipboard: clipboard,
		out:       out,
		logger:    logger.GetChildLogger(),
	}
}

// password returns the cached session password or asks for one.
func (a *App) password(ctx context.Context) (string, error) {
	pw, ok, err := a.session.GetPassword(ctx)
	if err != nil {
		return "", err
	}
	if ok {
		a.logger.Debug().Str("func", "App.password").Msg("using session password")
		return pw, nil
	}

	return a.prompter.Password(ctx, LabelMasterPassword)
}

// Login asks for the master password and caches it for later commands.
// When a vault exists the password must open it first.
func (a *App) Login(ctx context.Context) error {
	pw, err := a.prompter.Password(ctx, LabelMasterPassword)
	if err != nil {
		return err
	}

	msg := MsgLoggedIn
	if err = a.vaults.Verify(ctx, pw); err != nil {
		if !errors.Is(err, service.ErrVaultMissing) {
			a.logger.Err(err).Str("func", "App.Login").Msg("password verification failed")
			return err
		}
		msg = MsgLoggedInNoVault
	}

	if err = a.session.SetPassword(ctx, pw); err != nil {
		return err
	}

	a.logger.Info().Str("func", "App.Login").Msg("session started")
	return a.println(msg)
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.ClearPassword(ctx); err != nil {
		return err
	}

	a.logger.Info().Str("func", "App.Logout").Msg("session cleared")
	return a.println(MsgLoggedOut)
}

func (a *App) Init(ctx context.Context) error {
	pw, err := a.password(ctx)
	if err != nil {
		return err
	}
	if err = a.vaults.Init(ctx, pw); err != nil {
		return err
	}

	return a.println(MsgVaultInitialized)
}

func (a *App) List(ctx context.Context) error {
	pw, err := a.password(ctx)
	if err != nil {
		return err
	}

	notes, err := a.notes.List(ctx, pw)
	if err != nil {
		return err
	}

	return a.println(tui.RenderNoteList(notes))
}

func (a *App) Add(ctx context.Context) error {
	pw, err := a.password(ctx)
	if err != nil {
		return err
	}

	title, err := a.prompter.Text(ctx, LabelTitle, "")
	if err != nil {
		return err
	}
	description, err := a.prompter.Text(ctx, LabelDescription, "")
	if err != nil {
		return err
	}

	note, err := a.notes.Add(ctx, pw, title, description)
	if err != nil {
		return err
	}

	a.logger.Info().Str("func", "App.Add").Str("note_id", note.ID).Msg("note added")
	return a.println(MsgNoteSaved)
}

// Update edits the note with the given id. An empty id is asked for. The
// title and description prompts start from the current values.
func (a *App) Update(ctx context.Context, id string) error {
	pw, err := a.password(ctx)
	if err != nil {
		return err
	}

	if id == "" {
		if id, err = a.prompter.Text(ctx, LabelNoteID, ""); err != nil {
			return err
		}
	}

	note, err := a.notes.Get(ctx, pw, id)
	if err != nil {
		return err
	}

	title, err := a.prompter.Text(ctx, LabelTitle, note.Title)
	if err != nil {
		return err
	}
	description, err := a.prompter.Text(ctx, LabelDescription, note.Description)
	if err != nil {
		return err
	}

	if _, err = a.notes.Edit(ctx, pw, note.ID, title, description); err != nil {
		return err
	}

	a.logger.Info().Str("func", "App.Update").Str("note_id", note.ID).Msg("note edited")
	return a.println(MsgNoteEdited)
}

// View prints the note matching query by id or title. With copyDescription
// the description also goes to the clipboard.
func (a *App) View(ctx context.Context, query string, copyDescription bool) error {
	pw, err := a.password(ctx)
	if err != nil {
		return err
	}

	note, err := a.notes.Find(ctx, pw, query)
	if err != nil {
		return err
	}

	if err = a.println(tui.RenderNote(note)); err != nil {
		return err
	}
	if !copyDescription {
		return nil
	}

	if err = a.clipboard.WriteAll(note.Description); err != nil {
		return err
	}
	return a.println(MsgDescriptionCopied)
}

func (a *App) Delete(ctx context.Context, id string) error {
	pw, err := a.password(ctx)
	if err != nil {
		return err
	}
	if err = a.notes.Delete(ctx, pw, id); err != nil {
		return err
	}

	a.logger.Info().Str("func", "App.Delete").Str("note_id", id).Msg("note deleted")
	return a.println(MsgNoteDeleted)
}

// ChangePassword re-encrypts the vault under a new password entered twice.
// A cached session is switched to the new password.
func (a *App) ChangePassword(ctx context.Context) error {
	oldPassword, err := a.password(ctx)
	if err != nil {
		return err
	}

	newPassword, err := a.prompter.Password(ctx, LabelNewPassword)
	if err != nil {
		return err
	}
	confirm, err := a.prompter.Password(ctx, LabelConfirmPassword)
	if err != nil {
		return err
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}

	if err = a.vaults.ChangePassword(ctx, oldPassword, newPassword); err != nil {
		return err
	}

	_, hasSession, err := a.session.GetPassword(ctx)
	if err != nil {
		return err
	}
	if hasSession {
		if err = a.session.SetPassword(ctx, newPassword); err != nil {
			return err
		}
	}

	a.logger.Info().Str("func", "App.ChangePassword").Bool("session_refreshed", hasSession).Msg("master password changed")
	return a.println(MsgPasswordUpdated)
}

func (a *App) println(msg string) error {
	if _, err := fmt.Fprintln(a.out, msg); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
