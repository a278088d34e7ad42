package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gros-nounours/internal/config"
	"github.com/vovakirdan/gros-nounours/internal/core"
	"github.com/vovakirdan/gros-nounours/internal/games/gateau"
	"github.com/vovakirdan/gros-nounours/internal/games/pousse"
	"github.com/vovakirdan/gros-nounours/internal/games/traffic"
	"github.com/vovakirdan/gros-nounours/internal/layout"
	"github.com/vovakirdan/gros-nounours/internal/platform/tui"
	"github.com/vovakirdan/gros-nounours/internal/session"
	"github.com/vovakirdan/gros-nounours/internal/storage"
)

var (
	flagPousseConfig  string
	flagTrafficConfig string
	flagGateauConfig  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the hub",
	Long: `Start the game on the title screen.

Controls:
  Enter          - Confirm / enter a door
  Arrows / WASD  - Move (hub focus, minigames)
  Mouse          - Hover and click doors, drag items
  Backspace      - Leave the current zone or minigame
  Esc / P        - Pause (resuming returns to the hub)
  R              - Restart the current minigame
  F2             - Layout editor (drag doors and the bear)
  F11            - Fullscreen toggle
  Ctrl+S         - Save a text screenshot
  Q / Ctrl+C     - Quit

Examples:
  nounours play
  nounours play --seed 42
  nounours play --traffic-config ./my-traffic.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPousseConfig, "pousse-config", "", "Path to custom pousse config YAML")
	playCmd.Flags().StringVar(&flagTrafficConfig, "traffic-config", "", "Path to custom traffic config YAML")
	playCmd.Flags().StringVar(&flagGateauConfig, "gateau-config", "", "Path to custom gateau config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, logCloser, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	config.SetConfigDir(flagConfigDir)
	pousse.SetConfigPath(flagPousseConfig)
	traffic.SetConfigPath(flagTrafficConfig)
	gateau.SetConfigPath(flagGateauConfig)

	hub, err := config.LoadHub(flagHubConfig)
	if err != nil {
		logger.Warn("using default hub config", "error", err)
	}

	layoutPath, err := resolveLayoutPath(hub)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	lay, err := layout.Load(layoutPath)
	if err != nil {
		logger.Warn("using default layout", "path", layoutPath, "error", err)
		lay = layout.Default()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	opts := session.Options{
		Hub:     hub,
		Layout:  lay,
		Runtime: cfg,
		Logger:  logger,
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
	} else {
		opts.Recorder = store
		defer store.Close()
	}

	sess := session.New(opts)
	runErr := tui.Run(sess, cfg, logger)

	saveLayout(sess, layoutPath, logger)
	logger.Info("session ended", "session", sess.ID(), "coins", sess.Coins())

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveLayoutPath picks the --layout flag over the hub config entry.
func resolveLayoutPath(hub config.HubConfig) (string, error) {
	path := flagLayout
	if path == "" {
		path = hub.LayoutFile
	}
	if path == "" {
		path = config.DefaultHubConfig().LayoutFile
	}
	return expandHome(path)
}

// saveLayout writes editor changes back to the layout file.
func saveLayout(sess *session.Session, path string, logger *log.Logger) {
	if !sess.LayoutChanged() {
		return
	}
	if err := sess.Layout().Save(path); err != nil {
		logger.Error("cannot save layout", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not save layout: %v\n", err)
		return
	}
	logger.Info("layout saved", "path", path)
}
