package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/msto63/devconsole/foundation/console/builtin"
	"github.com/msto63/devconsole/foundation/utils/stringx"
)

var commandsUsage bool

var commandsCmd = &cobra.Command{
	Use:     "commands",
	Aliases: []string{"ls"},
	Short:   "Lists the registered console commands",
	RunE:    runCommands,
}

func init() {
	rootCmd.AddCommand(commandsCmd)

	commandsCmd.Flags().BoolVarP(&commandsUsage, "usage", "u", false, "print the usage line of every command")
}

func runCommands(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("failed to load config", err)
		return err
	}
	s, err := newSession(cfg, io.Discard, builtin.HostFuncs{}, true)
	if err != nil {
		printError("failed to set up console", err)
		return err
	}

	out := cmd.OutOrStdout()
	infos := s.registry.Infos()

	width := 0
	for _, info := range infos {
		if len(info.Name) > width {
			width = len(info.Name)
		}
	}

	fmt.Fprintln(out, "Commands:")
	for _, info := range infos {
		fmt.Fprintf(out, "  %s  %s\n", stringx.PadRight(info.Name, width, ' '), info.Description)
		if commandsUsage {
			fmt.Fprintf(out, "  %s  %s\n", stringx.PadRight("", width, ' '), info.Usage())
		}
	}

	aliases := s.registry.Aliases()
	if len(aliases) == 0 {
		return nil
	}
	names := make([]string, 0, len(aliases))
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Aliases:")
	for _, alias := range names {
		fmt.Fprintf(out, "  %s -> %s\n", stringx.PadRight(alias, width, ' '), aliases[alias])
	}
	return nil
}
