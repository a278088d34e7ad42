package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gros-nounours/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show default config files",
	Long: `Config files are looked up in --config-dir, then ~/.nounours/configs,
then ./configs. Missing files fall back to the built-in defaults printed here.

Examples:
  nounours config show traffic > ~/.nounours/configs/traffic.yaml`,
}

var configShowCmd = &cobra.Command{
	Use:       "show <name>",
	Short:     "Print a default config file",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Names(),
	Run:       runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown config %q (available: %s)\n",
			args[0], strings.Join(config.Names(), ", "))
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
