package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-jobform/pkg/renderers/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Fill in the application in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWizard()
			if err != nil {
				return err
			}
			session, err := tui.NewSession(w, tui.WithOutput(cmd.OutOrStdout()), tui.WithLogger(logger))
			if err != nil {
				return err
			}
			if _, err := session.Run(cmd.Context()); err != nil {
				if errors.Is(err, tui.ErrAborted) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
					return nil
				}
				return err
			}
			return nil
		},
	}
}
