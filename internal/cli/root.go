// Package cli provides the command-line interface for todo.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/tui"
)

// Command group IDs.
const (
	groupMain  = "main"
	groupSetup = "setup"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// newContainerFunc builds the container from the persistent flags; replaced in tests.
var newContainerFunc = app.New

// session holds the container shared by all subcommands of one invocation.
// The container is built after flag parsing because --config, --log-file
// and --log-level decide how it is wired.
type session struct {
	container *app.Container
	opts      app.Options
}

// Container returns the container, building it on first use.
func (s *session) Container() (*app.Container, error) {
	if s.container != nil {
		return s.container, nil
	}
	c, err := newContainerFunc(s.opts)
	if err != nil {
		return nil, err
	}
	s.container = c
	return c, nil
}

// close releases the container if one was built.
func (s *session) close() error {
	if s.container == nil {
		return nil
	}
	return s.container.Close()
}

// NewRootCommand creates the root command for todo.
// A non-nil container is used as is and the persistent flags are ignored,
// which is how tests inject dependencies.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	s := &session{container: c}

	root := &cobra.Command{
		Use:   "todo",
		Short: "A single-list to-do manager for the terminal",
		Long: `todo keeps one list of short tasks in a terminal UI.

Type a task and press enter to add it. Select a task to mark it done,
edit it or delete it. The list lives in memory and is gone when you quit.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// The template never depends on existing files, even broken ones.
			if cmd.Name() == "template" {
				return nil
			}

			c, err := s.Container()
			if err != nil {
				return err
			}

			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return s.close()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := s.Container()
			if err != nil {
				return err
			}
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().StringVar(&s.opts.ConfigPath, "config", "", "Load configuration from this file (TOML or YAML)")
	root.PersistentFlags().StringVar(&s.opts.LogFile, "log-file", "", "Write logs to this file")
	root.PersistentFlags().StringVar(&s.opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddGroup(
		&cobra.Group{ID: groupMain, Title: "Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	tuiCmd := newTUICommand(s)
	tuiCmd.GroupID = groupMain

	configCmd := newConfigCommand(s)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		tuiCmd,
		configCmd,
	)

	return root
}

// launchTUI runs the interactive TUI until the user quits.
func launchTUI(c *app.Container) error {
	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
