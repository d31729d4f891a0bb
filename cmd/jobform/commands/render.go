package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func renderCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the HTML of the first step",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWizard()
			if err != nil {
				return err
			}
			opts, err := renderOptions()
			if err != nil {
				return err
			}
			html, err := newHTMLRenderer()
			if err != nil {
				return err
			}
			out, err := html.Render(cmd.Context(), w.View(), opts)
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, out, 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Form written to %s\n", output)
				return nil
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
