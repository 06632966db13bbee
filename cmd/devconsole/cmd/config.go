package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/devconsole/foundation/core/config"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Prints the effective configuration",
	Long: `Prints the configuration after defaults and environment variables
have been applied, as TOML or YAML. The output is a valid config file.`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVarP(&configFormat, "format", "f", "toml", "output format (toml, yaml)")
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("failed to load config", err)
		return err
	}

	var format config.Format
	switch strings.ToLower(configFormat) {
	case "toml":
		format = config.FormatTOML
	case "yaml", "yml":
		format = config.FormatYAML
	default:
		return fmt.Errorf("unknown format %q (expected toml or yaml)", configFormat)
	}

	data, err := cfg.Encode(format)
	if err != nil {
		printError("failed to encode config", err)
		return err
	}

	out := cmd.OutOrStdout()
	if path := cfg.Path(); path != "" && verbose {
		fmt.Fprintf(out, "# loaded from %s\n", path)
	}
	_, err = out.Write(data)
	return err
}
