package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gros-nounours/internal/config"
	"github.com/vovakirdan/gros-nounours/internal/core"
	"github.com/vovakirdan/gros-nounours/internal/layout"
	"github.com/vovakirdan/gros-nounours/internal/platform/tui"
	"github.com/vovakirdan/gros-nounours/internal/session"
)

var (
	flagPreviewW int
	flagPreviewH int
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show or reset the hub layout",
	Long: `The hub layout file stores where each door and the bear are drawn, as
fractions of the screen. Edit it in game with F2 (drag and drop), or here.

Examples:
  nounours layout show
  nounours layout show --width 120 --height 40
  nounours layout reset`,
}

var layoutShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the layout file and a hub preview",
	Args:  cobra.NoArgs,
	Run:   runLayoutShow,
}

var layoutResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Write the default layout to the layout file",
	Args:  cobra.NoArgs,
	Run:   runLayoutReset,
}

func init() {
	layoutShowCmd.Flags().IntVar(&flagPreviewW, "width", 80, "Preview width in cells")
	layoutShowCmd.Flags().IntVar(&flagPreviewH, "height", 24, "Preview height in cells")
	layoutCmd.AddCommand(layoutShowCmd)
	layoutCmd.AddCommand(layoutResetCmd)
}

func layoutPath() string {
	config.SetConfigDir(flagConfigDir)
	hub, _ := config.LoadHub(flagHubConfig)
	path, err := resolveLayoutPath(hub)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return path
}

func runLayoutShow(cmd *cobra.Command, args []string) {
	path := layoutPath()
	lay, err := layout.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# %s\n", path)
	if err := lay.Write(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()

	w, h := max(flagPreviewW, 20), max(flagPreviewH, 10)
	sess := session.New(session.Options{
		Layout:  lay,
		Runtime: core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: flagFPS},
	})
	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	sess.Update(0, in) // Title -> Hub

	screen := core.NewScreen(w, h)
	sess.Draw(screen)
	fmt.Print(tui.RenderPlain(screen))
}

func runLayoutReset(cmd *cobra.Command, args []string) {
	path := layoutPath()
	if err := layout.Default().Save(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Default layout written to %s\n", path)
}
