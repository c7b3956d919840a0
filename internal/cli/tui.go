package cli

import (
	"github.com/spf13/cobra"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// Running `todo` without arguments does the same.
func newTUICommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive terminal user interface for managing tasks.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c, err := s.Container()
			if err != nil {
				return err
			}
			return launchTUIFunc(c)
		},
	}
	return cmd
}
