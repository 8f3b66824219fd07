package cli

import (
	"fmt"

	"github.com/Conceptual-Machines/magda-theory/internal/catalog"
	"github.com/Conceptual-Machines/magda-theory/internal/models"
	"github.com/spf13/cobra"
)

// newCatalogCmd builds the chords or scales listing command.
func newCatalogCmd(a *app, kind string) *cobra.Command {
	var (
		label string
		flat  bool
	)

	cmd := &cobra.Command{
		Use:   kind + " [name]",
		Short: "List the " + kind + " catalog, or look up one entry by any of its names",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				result any
				err    error
			)
			if kind == "chords" {
				result, err = catalogView(a.indexes.Chords, args, label, flat, models.NewChordRecordView)
			} else {
				result, err = catalogView(a.indexes.Scales, args, label, flat, models.NewScaleRecordView)
			}
			if err != nil {
				return err
			}
			return a.print(cmd, result)
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "only show records with this label")
	cmd.Flags().BoolVar(&flat, "flat", false, "show a label -> records map instead of ordered groups")
	return cmd
}

func catalogView[T catalog.Record, V any](idx *catalog.Index[T], args []string, label string, flat bool, convert func(*T) V) (any, error) {
	switch {
	case len(args) == 1:
		rec, ok := idx.Lookup(args[0])
		if !ok {
			return nil, fmt.Errorf("unknown %s %q", idx.Category(), args[0])
		}
		return convert(rec), nil

	case label != "":
		records := idx.ByLabel(label)
		if records == nil {
			return nil, fmt.Errorf("unknown %s label %q (labels: %v)", idx.Category(), label, idx.Labels())
		}
		views := make([]V, len(records))
		for i, r := range records {
			views[i] = convert(r)
		}
		return views, nil

	case flat:
		return models.FlattenRecords(idx.ByLabelData(), convert), nil

	default:
		return models.GroupRecords(idx.LabelData(), convert), nil
	}
}
