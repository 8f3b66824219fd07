package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newProgressionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "progression <script|->",
		Short: "Run a progression script and print the resulting sheet",
		Long: "Run a progression script, e.g.\n" +
			"  theoryctl progression 'tempo(bpm=96); progression(scale=\"F_major\", degrees=\"I,vi,ii,V\")'\n" +
			"Pass - to read the script from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script := args[0]
			if script == "-" {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read script: %w", err)
				}
				script = string(raw)
			}

			sheet, err := a.service.ParseProgression(cmd.Context(), script)
			if err != nil {
				return err
			}
			return a.print(cmd, sheet)
		},
	}
}
