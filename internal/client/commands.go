// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/enc-notes/internal/config"
	"github.com/MKhiriev/enc-notes/internal/logger"
	"github.com/MKhiriev/enc-notes/internal/service"
	"github.com/MKhiriev/enc-notes/internal/store"
	"github.com/MKhiriev/enc-notes/internal/tui"
	"github.com/MKhiriev/enc-notes/models"
	"github.com/spf13/cobra"
)

const (
	appName  = "encnotes"
	flagCopy = "copy"
)

// AppBuilder assembles the [App] for one invocation once the configuration
// and logger are known.
type AppBuilder func(cmd *cobra.Command, cfg *config.StructuredConfig, logger *logger.Logger) (*App, error)

// CLI is the cobra command tree of encnotes. It implements [Client].
type CLI struct {
	root  *cobra.Command
	build AppBuilder

	app    *App
	logger *logger.Logger
}

// NewCLI builds the command tree. A nil build uses [DefaultAppBuilder].
func NewCLI(info models.AppBuildInfo, build AppBuilder) *CLI {
	if build == nil {
		build = DefaultAppBuilder
	}

	c := &CLI{build: build}
	c.root = &cobra.Command{
		Use:               appName,
		Short:             "Encrypted Notes CLI",
		Long:              "encnotes keeps title/description notes in a single password-encrypted vault file.",
		Version:           info.BuildVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	c.root.SetVersionTemplate(info.VersionText())
	config.RegisterFlags(c.root.PersistentFlags())

	viewCmd := &cobra.Command{
		Use:   "view <query>",
		Short: "Show a note by id or title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			copyDescription, err := cmd.Flags().GetBool(flagCopy)
			if err != nil {
				return err
			}
			return c.app.View(cmd.Context(), args[0], copyDescription)
		},
	}
	viewCmd.Flags().Bool(flagCopy, false, "Copy the description to the clipboard")

	c.root.AddCommand(
		&cobra.Command{
			Use:   "login",
			Short: "Cache the master password for later commands",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.app.Login(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "logout",
			Short: "Clear the cached master password",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.app.Logout(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Create an empty vault",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.app.Init(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all notes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.app.List(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "add",
			Short: "Add a note",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.app.Add(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "update [id]",
			Short: "Edit the title and description of a note",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var id string
				if len(args) == 1 {
					id = args[0]
				}
				return c.app.Update(cmd.Context(), id)
			},
		},
		viewCmd,
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a note by id",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.Delete(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "change-pwd",
			Short: "Re-encrypt the vault under a new master password",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.app.ChangePassword(cmd.Context())
			},
		},
	)

	return c
}

// Run executes the command selected by the process arguments.
func (c *CLI) Run(ctx context.Context) error {
	err := c.root.ExecuteContext(ctx)
	if err != nil && c.logger != nil {
		c.logger.Err(err).Str("func", "CLI.Run").Msg("command failed")
	}
	if c.logger != nil {
		_ = c.logger.Close()
	}
	return err
}

// setup loads the configuration from the parsed flags, opens the log and
// builds the App before any subcommand runs.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return err
	}

	c.logger = logger.NewClientLogger(appName, cfg.Log)
	c.logger.Debug().
		Str("func", "CLI.setup").
		Str("command", cmd.Name()).
		Str("vault", cfg.Vault.Path).
		Msg("running command")

	c.app, err = c.build(cmd, cfg, c.logger)
	if err != nil {
		return fmt.Errorf("error building app: %w", err)
	}
	return nil
}

// DefaultAppBuilder wires the file storages, the services and the terminal
// prompts to the command's streams.
func DefaultAppBuilder(cmd *cobra.Command, cfg *config.StructuredConfig, logger *logger.Logger) (*App, error) {
	storages := store.NewClientStorages(cfg, logger)
	services := service.NewServices(storages, logger)

	return NewApp(
		services,
		storages.SessionStorage,
		tui.NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()),
		NewSystemClipboard(),
		cmd.OutOrStdout(),
		logger,
	), nil
}
