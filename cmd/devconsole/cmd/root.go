package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/devconsole/foundation/core/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "devconsole",
	Short: "devconsole - interactive developer console",
	Long: `devconsole is an in-process developer console.

Lines are split into a command name and typed literals (strings, integers,
floats, booleans), decoded into the command's declared arguments and run.

Commands:
  tui       - Interactive console in the terminal
  exec      - Run a single console line
  repl      - Line-based console on stdin/stdout
  commands  - List the registered console commands
  config    - Print the effective configuration`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: $"+config.EnvConfigPath+" or ./configs/console.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads the file given by --config, falling back to the
// environment and the default locations
func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
