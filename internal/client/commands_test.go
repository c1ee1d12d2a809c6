package client

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/enc-notes/internal/config"
	"github.com/MKhiriev/enc-notes/internal/logger"
	"github.com/MKhiriev/enc-notes/internal/mock"
	"github.com/MKhiriev/enc-notes/internal/service"
	"github.com/MKhiriev/enc-notes/internal/store"
	"github.com/MKhiriev/enc-notes/internal/tui"
	"github.com/MKhiriev/enc-notes/models"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testPaths struct {
	vault, session, log string
}

func newTestPaths(t *testing.T) testPaths {
	t.Helper()
	dir := t.TempDir()
	return testPaths{
		vault:   filepath.Join(dir, "vault.enc"),
		session: filepath.Join(dir, "encnotes.session"),
		log:     filepath.Join(dir, "encnotes.log"),
	}
}

func runCLI(t *testing.T, p testPaths, build AppBuilder, args ...string) (string, error) {
	t.Helper()
	return runCLIWithInput(t, p, build, strings.NewReader(""), args...)
}

func runCLIWithInput(t *testing.T, p testPaths, build AppBuilder, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	c := NewCLI(models.NewAppBuildInfo("v1.2.3", "2026-01-01", "abc123"), build)

	var out, prompts bytes.Buffer
	c.root.SetIn(stdin)
	c.root.SetOut(&out)
	c.root.SetErr(&prompts)
	c.root.SetArgs(append([]string{
		"--" + config.FlagVault, p.vault,
		"--" + config.FlagSession, p.session,
		"--" + config.FlagLogFile, p.log,
	}, args...))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := c.Run(ctx)
	return out.String(), err
}

// fileBuilder wires the real file storages and services with the given
// terminal collaborators.
func fileBuilder(p Prompter, cb Clipboard) AppBuilder {
	return func(cmd *cobra.Command, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
		storages := store.NewClientStorages(cfg, log)
		return NewApp(service.NewServices(storages, log), storages.SessionStorage, p, cb, cmd.OutOrStdout(), log), nil
	}
}

func TestCLI_Version(t *testing.T) {
	p := newTestPaths(t)

	out, err := runCLI(t, p, nil, "--version")
	require.NoError(t, err)
	assert.Equal(t, "Build version: v1.2.3\nBuild date: 2026-01-01\nBuild commit: abc123\n", out)
}

func TestCLI_VersionDefaults(t *testing.T) {
	c := NewCLI(models.NewAppBuildInfo("", "", ""), nil)
	var out bytes.Buffer
	c.root.SetOut(&out)
	c.root.SetArgs([]string{"--version"})

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n", out.String())
}

func TestCLI_ArgumentValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown command", args: []string{"bogus"}},
		{name: "view needs a query", args: []string{"view"}},
		{name: "delete needs an id", args: []string{"delete"}},
		{name: "update takes at most one id", args: []string{"update", "a", "b"}},
		{name: "list takes no args", args: []string{"list", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPaths(t)
			built := false
			build := func(*cobra.Command, *config.StructuredConfig, *logger.Logger) (*App, error) {
				built = true
				return nil, nil
			}

			_, err := runCLI(t, p, build, tt.args...)
			assert.Error(t, err)
			assert.False(t, built, "nothing runs on bad arguments")
		})
	}
}

func TestCLI_InvalidConfig(t *testing.T) {
	p := newTestPaths(t)
	p.session = p.vault

	_, err := runCLI(t, p, fileBuilder(nil, nil), "list")
	assert.ErrorIs(t, err, config.ErrInvalidSessionConfigs)
}

func TestCLI_WritesLogFile(t *testing.T) {
	p := newTestPaths(t)
	ctrl := gomock.NewController(t)
	prompter := mock.NewMockPrompter(ctrl)
	prompter.EXPECT().Password(gomock.Any(), LabelMasterPassword).Return("pw", nil)

	_, err := runCLI(t, p, fileBuilder(prompter, nil), "--"+config.FlagLogLevel, "debug", "init")
	require.NoError(t, err)

	data, err := os.ReadFile(p.log)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"role":"encnotes"`)
	assert.NotContains(t, string(data), `"pw"`, "passwords are never logged")
}

func TestCLI_Scenario(t *testing.T) {
	p := newTestPaths(t)
	ctrl := gomock.NewController(t)
	prompter := mock.NewMockPrompter(ctrl)
	clipboard := mock.NewMockClipboard(ctrl)
	build := fileBuilder(prompter, clipboard)
	anyCtx := gomock.Any()

	run := func(args ...string) string {
		t.Helper()
		out, err := runCLI(t, p, build, args...)
		require.NoError(t, err, "encnotes %v", args)
		return out
	}

	// login before init caches the password
	prompter.EXPECT().Password(anyCtx, LabelMasterPassword).Return("master", nil)
	assert.Contains(t, run("login"), MsgLoggedInNoVault)

	assert.Contains(t, run("init"), MsgVaultInitialized)

	// the session password is not prompted for
	gomock.InOrder(
		prompter.EXPECT().Text(anyCtx, LabelTitle, "").Return("Wifi", nil),
		prompter.EXPECT().Text(anyCtx, LabelDescription, "").Return("pass: abc123", nil),
	)
	assert.Contains(t, run("add"), MsgNoteSaved)

	clipboard.EXPECT().WriteAll("pass: abc123").Return(nil)
	out := run("view", "wifi", "--copy")
	assert.Contains(t, out, "pass: abc123")
	assert.Contains(t, out, MsgDescriptionCopied)

	assert.Contains(t, run("list"), "Wifi")

	gomock.InOrder(
		prompter.EXPECT().Password(anyCtx, LabelNewPassword).Return("new master", nil),
		prompter.EXPECT().Password(anyCtx, LabelConfirmPassword).Return("new master", nil),
	)
	assert.Contains(t, run("change-pwd"), MsgPasswordUpdated)

	session, err := os.ReadFile(p.session)
	require.NoError(t, err)
	assert.Equal(t, "new master", string(session))

	before, err := os.ReadFile(p.vault)
	require.NoError(t, err)

	_, err = runCLI(t, p, build, "delete", "no-such-id")
	assert.ErrorIs(t, err, service.ErrNoteNotFound)

	after, err := os.ReadFile(p.vault)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	assert.Contains(t, run("logout"), MsgLoggedOut)
	_, err = os.Stat(p.session)
	assert.ErrorIs(t, err, os.ErrNotExist)

	// after logout the old password is rejected
	prompter.EXPECT().Password(anyCtx, LabelMasterPassword).Return("master", nil)
	_, err = runCLI(t, p, build, "list")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)

	prompter.EXPECT().Password(anyCtx, LabelMasterPassword).Return("new master", nil)
	assert.Contains(t, run("list"), "Wifi")
}

func TestCLI_LoginWrongPassword(t *testing.T) {
	p := newTestPaths(t)
	ctrl := gomock.NewController(t)
	prompter := mock.NewMockPrompter(ctrl)
	build := fileBuilder(prompter, nil)

	prompter.EXPECT().Password(gomock.Any(), LabelMasterPassword).Return("right", nil)
	_, err := runCLI(t, p, build, "init")
	require.NoError(t, err)

	prompter.EXPECT().Password(gomock.Any(), LabelMasterPassword).Return("wrong", nil)
	_, err = runCLI(t, p, build, "login")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)

	_, err = os.Stat(p.session)
	assert.ErrorIs(t, err, os.ErrNotExist, "no session after a failed login")
}

// The default builder reads answers from the command's stdin, one line per
// prompt, so commands with several prompts can be scripted.
func TestCLI_PipedAnswers(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the terminal prompts and the key derivation")
	}
	p := newTestPaths(t)

	run := func(stdin string, args ...string) string {
		t.Helper()
		out, err := runCLIWithInput(t, p, nil, strings.NewReader(stdin), args...)
		require.NoError(t, err, "encnotes %v", args)
		return out
	}

	assert.Contains(t, run("hunter2\n", "init"), MsgVaultInitialized)
	assert.Contains(t, run("hunter2\nWifi\npass: abc123\n", "add"), MsgNoteSaved)

	out := run("hunter2\n", "view", "wifi")
	assert.Contains(t, out, "pass: abc123")

	assert.Contains(t, run("hunter2\nsecond\nsecond\n", "change-pwd"), MsgPasswordUpdated)
	assert.Contains(t, run("second\n", "list"), "Wifi")

	_, err := runCLIWithInput(t, p, nil, strings.NewReader("hunter2\n"), "list")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed, "old password after change-pwd")

	_, err = runCLIWithInput(t, p, nil, strings.NewReader("second\nonly a title\n"), "add")
	assert.ErrorIs(t, err, tui.ErrPromptCancelled, "input ends before the description")
}
