// nounours is a terminal hub game: walk the bear's house, open a door and
// play the minigame behind it to earn coins.
//
// Usage:
//
//	nounours                 - Play (same as "nounours play")
//	nounours play            - Start the hub
//	nounours list            - List minigames and the zone that opens each
//	nounours scores [id]     - Browse run history, or print the top runs of one minigame
//	nounours layout show     - Print the hub layout and a preview
//	nounours layout reset    - Write the default hub layout
//	nounours config show <n> - Print a default config file
//
// Global flags:
//
//	--log                - Verbose logging to the log file
//	--log-file <path>    - Log file (default: ~/.nounours/nounours.log)
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.nounours/runs.db)
//	--config-dir <dir>   - Directory searched first for config files
//	--hub-config <path>  - Hub config file (zones and their minigames)
//	--layout <path>      - Hub layout file (default from hub.yaml)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import minigames to register them
	_ "github.com/vovakirdan/gros-nounours/internal/games/gateau"
	_ "github.com/vovakirdan/gros-nounours/internal/games/pousse"
	_ "github.com/vovakirdan/gros-nounours/internal/games/stub"
	_ "github.com/vovakirdan/gros-nounours/internal/games/traffic"
)

var (
	// Global flags
	flagVerbose   bool
	flagLogFile   string
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagConfigDir string
	flagLayout    string
	flagHubConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nounours",
	Short: "Gros Nounours - a hub of minigames in your terminal",
	Long: `Gros Nounours is a terminal game: pick a door in the bear's house,
play the minigame behind it and collect coins.

Available commands:
  play     - Start the hub (default)
  list     - Show minigames and their zones
  scores   - View run history
  layout   - Show or reset the hub layout
  config   - Show default config files

Examples:
  nounours
  nounours --log
  nounours scores traffic
  nounours layout show`,
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "log", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.nounours/nounours.log", "Log file used with --log")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.nounours/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "Directory searched first for config files")
	rootCmd.PersistentFlags().StringVar(&flagHubConfig, "hub-config", "", "Path to custom hub config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLayout, "layout", "", "Hub layout file (default from hub.yaml)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(configCmd)
}
