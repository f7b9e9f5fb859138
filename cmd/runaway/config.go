package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/runaway/internal/config"
	"github.com/vovakirdan/runaway/internal/registry"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect game configuration",
}

var configDumpCmd = &cobra.Command{
	Use:   "dump [variant]",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration a variant runs with, after applying
--config and --difficulty. With --defaults, print the embedded
default file instead; it is a good starting point for a custom config.

Examples:
  runaway config dump
  runaway config dump chase --difficulty hard
  runaway config dump --defaults > my-runaway.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigDump,
}

var configCheckCmd = &cobra.Command{
	Use:   "check [variant]",
	Short: "Validate the configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		v, err := variantArg(args)
		if err != nil {
			return err
		}
		if err := checkConfig(v); err != nil {
			return err
		}
		fmt.Printf("%s: configuration is valid\n", v)
		return nil
	},
}

func init() {
	configDumpCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the embedded defaults")
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configCheckCmd)
}

func runConfigDump(_ *cobra.Command, args []string) error {
	v, err := variantArg(args)
	if err != nil {
		return err
	}

	if flagConfigDefaults {
		_, err := os.Stdout.Write(config.GetDefaultYAML(v))
		return err
	}

	cfg, err := config.LoadRunaway(v, flagConfig)
	if err != nil {
		return err
	}
	config.ApplyRunawayPreset(&cfg, config.ParsePreset(flagDifficulty))

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// variantArg returns the variant named by the optional argument.
func variantArg(args []string) (config.Variant, error) {
	if len(args) == 0 {
		return config.VariantRunaway, nil
	}
	if !registry.Exists(args[0]) {
		return "", fmt.Errorf("unknown variant %q, run 'runaway list' to see available variants", args[0])
	}
	return config.Variant(args[0]), nil
}
