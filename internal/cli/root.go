package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/Conceptual-Machines/magda-theory/internal/services"
	"github.com/Conceptual-Machines/magda-theory/internal/theory"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "THEORYCTL"

// app carries what every subcommand needs once the root has initialised.
type app struct {
	v       *viper.Viper
	indexes *theory.Indexes
	service *services.NotationService
}

// Execute runs theoryctl with the process arguments.
func Execute() {
	if err := NewRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree writing results to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "theoryctl",
		Short:         "Parse music notation and browse the chord and scale catalogs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.initConfig(cmd); err != nil {
				return err
			}
			if _, err := formatFor(a.v.GetString("output")); err != nil {
				return err
			}
			ix, err := theory.BuildIndexes()
			if err != nil {
				return fmt.Errorf("failed to build catalogs: %w", err)
			}
			a.indexes = ix
			a.service = services.NewNotationService(ix)
			return nil
		},
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().String("config", "", "config file (default .theoryctl.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", formatYAML, "output format: yaml or json")
	_ = a.v.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))

	rootCmd.AddCommand(
		newParseCmd(a),
		newCatalogCmd(a, "chords"),
		newCatalogCmd(a, "scales"),
		newProgressionCmd(a),
		newTableCmd(a),
	)
	return rootCmd
}

func (a *app) initConfig(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		a.v.SetConfigName(".theoryctl")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		// It's fine if no config file is found; we use defaults.
		_ = a.v.ReadInConfig()
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()
	return nil
}

// print writes v to the command's output in the configured format.
func (a *app) print(cmd *cobra.Command, v any) error {
	f, err := formatFor(a.v.GetString("output"))
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), f, v)
}
