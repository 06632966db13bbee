package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/devconsole/foundation/console/builtin"
	"github.com/msto63/devconsole/foundation/console/command"
)

var execCmd = &cobra.Command{
	Use:   "exec <line>...",
	Short: "Runs a single console line",
	Long: `Runs a single console line and prints its output.

All arguments are joined with spaces, so quote the line to keep string
literals intact:

  devconsole exec 'log "hello world" 2'

The exit code is non-zero when the line fails to parse, names an unknown
command, cannot be decoded or its handler fails.`,
	Args: cobra.MinimumNArgs(1),
	// the console output already carries the error line
	SilenceErrors: true,
	RunE:          runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("failed to load config", err)
		return err
	}

	s, err := newSession(cfg, os.Stderr, builtin.HostFuncs{}, true)
	if err != nil {
		printError("failed to set up console", err)
		return err
	}

	out := cmd.OutOrStdout()
	res := s.submit(strings.Join(args, " "), command.OutputFunc(func(line string) {
		fmt.Fprintln(out, line)
	}))
	if !res.Success() {
		if res.Err != nil {
			return res.Err
		}
		return fmt.Errorf("line finished with status %s", res.Status)
	}
	return nil
}
