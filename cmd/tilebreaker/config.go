package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilebreaker/internal/config"
	"github.com/vovakirdan/tilebreaker/internal/games/tilebreaker"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default config file",
	Long: `Write the built-in default config so it can be edited. Without a
path the file goes to $XDG_CONFIG_HOME/tilebreaker/tilebreaker.yaml.
An existing file is never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved config",
	Long:  `Print the config after file loading and --width/--colors overrides.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(_ *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		p, err := config.UserConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := config.WriteDefault(path); err != nil {
		return err
	}
	fmt.Printf("Wrote default config to %s\n", path)
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, source, err := tilebreaker.LoadConfig()
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	fmt.Printf("# source: %s\n%s", source, out)
	return nil
}
