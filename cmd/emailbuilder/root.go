package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Notifuse/emailbuilder/config"
	"github.com/Notifuse/emailbuilder/internal/app"
	"github.com/Notifuse/emailbuilder/pkg/logger"
)

// NewAppFunc defines the function signature for creating a new app
type NewAppFunc func(cfg *config.Config, opts ...app.AppOption) app.AppInterface

// cli holds what the commands need from the process, so tests can swap it
type cli struct {
	loadConfig func(envFile string) (*config.Config, error)
	newApp     NewAppFunc
	appOptions []app.AppOption
	isTerminal func(f any) bool
	open       func(path string) error

	envFile  string
	logLevel string

	app app.AppInterface
}

func defaultCLI() *cli {
	return &cli{
		loadConfig: func(envFile string) (*config.Config, error) {
			return config.LoadWithOptions(config.LoadOptions{EnvFile: envFile})
		},
		newApp:     app.NewApp,
		isTerminal: isTerminal,
		open:       open.Run,
	}
}

// isTerminal reports whether f is a file attached to a terminal
func isTerminal(f any) bool {
	file, ok := f.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "emailbuilder",
		Short:        "Build HTML emails from components",
		Long:         `emailbuilder composes emails from headings, text, images, buttons, dividers, spacers, lists and grids, and manages the templates, contacts and campaigns of the email backend.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.app == nil {
				return nil
			}
			return c.app.Shutdown(context.Background())
		},
	}
	rootCmd.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "environment file to load")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level, overrides LOG_LEVEL")

	rootCmd.AddCommand(
		newEditorCmd(c),
		newTemplatesCmd(c),
		newContactsCmd(c),
		newGroupsCmd(c),
		newCampaignsCmd(c),
		newVersionCmd(c),
	)
	return rootCmd
}

func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := c.loadConfig(c.envFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}

	// logs go to stderr so commands can pipe their output
	logger.SetGlobalLevel(cfg.LogLevel)
	opts := append([]app.AppOption{app.WithLogger(logger.NewConsoleLogger(cmd.ErrOrStderr()))}, c.appOptions...)

	c.app = c.newApp(cfg, opts...)
	return c.app.Initialize()
}

// requireBackend fails commands that need the backend when it is not configured
func (c *cli) requireBackend() error {
	return c.app.GetConfig().RequireBackend()
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), c.app.GetConfig().Version)
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := parseID(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// writeOutput writes content to path, or to w when path is empty
func writeOutput(w io.Writer, path, content string) error {
	if path == "" {
		_, err := fmt.Fprintln(w, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
