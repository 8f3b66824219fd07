package cli

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/magda-theory/internal/services"
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <notation> <text>",
		Short: "Parse one token or list in the given notation",
		Long: "Parse text as one of: " + strings.Join(services.Notations(), ", ") + ".\n" +
			"Lists are comma-separated, e.g. theoryctl parse notes \"C4, Eb4, G4\".",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.service.Parse(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			return a.print(cmd, result)
		},
	}
}
