package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/devconsole/foundation/console/builtin"
	"github.com/msto63/devconsole/foundation/console/command"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Runs a line-based console on stdin",
	Long: `Reads console lines from stdin until EOF or 'exit' and prints
their output to stdout. Useful for piping scripts into the console.`,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// lines above the configured input limit still reach the dispatcher, which
// rejects them with a parse error
const maxScanLine = 1 << 20

func runREPL(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("failed to load config", err)
		return err
	}

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	quit := false
	host := builtin.HostFuncs{
		OnClear: func() { fmt.Fprint(out, "\033[H\033[2J") },
		OnExit:  func() { quit = true },
	}
	s, err := newSession(cfg, os.Stderr, host, true)
	if err != nil {
		printError("failed to set up console", err)
		return err
	}

	output := command.OutputFunc(func(line string) {
		fmt.Fprintln(out, line)
	})

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), maxScanLine)
	for !quit {
		fmt.Fprint(out, cfg.Console.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		s.submit(scanner.Text(), output)
	}
	return scanner.Err()
}
