package cli

import (
	"fmt"

	"github.com/Conceptual-Machines/magda-theory/internal/models"
	"github.com/Conceptual-Machines/magda-theory/internal/services"
	"github.com/spf13/cobra"
)

func newTableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "table <notes|intervals|notations>",
		Short:     "Print one of the static notation tables",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"notes", "intervals", "notations"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "notes":
				return a.print(cmd, models.PitchClassTable())
			case "intervals":
				table, err := models.IntervalTable()
				if err != nil {
					return err
				}
				return a.print(cmd, table)
			case "notations":
				return a.print(cmd, services.Notations())
			default:
				return fmt.Errorf("unknown table %q", args[0])
			}
		},
	}
}
