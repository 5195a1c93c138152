package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gnu-dash/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a run would use, after the preset is applied.

The output is a complete dash.yaml and can be saved to
~/.gnudash/dash.yaml as a starting point for tuning.

Examples:
  gnudash config
  gnudash config --preset hard
  gnudash config --defaults > ~/.gnudash/dash.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	addGameFlags(configCmd)
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults verbatim")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyPreset(&cfg, config.ParsePreset(flagPreset))
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
