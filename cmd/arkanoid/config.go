package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Load the configuration the same way "play" does, validate it and print
it as YAML. The output is a valid config file.

Examples:
  arkanoid config
  arkanoid config --config ./my-arkanoid.toml
  arkanoid config --defaults > ~/.arkanoid/arkanoid.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file")
}

func runConfig(cmd *cobra.Command, args []string) {
	data := config.GetDefaultYAML()
	if !flagDefaults {
		cfg, err := loadConfig()
		exitOnError("loading config", err)

		data, err = config.Marshal(cfg)
		exitOnError("encoding config", err)
	}

	_, err := os.Stdout.Write(data)
	exitOnError("writing config", err)
}
