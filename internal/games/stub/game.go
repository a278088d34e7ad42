// Package stub provides a placeholder minigame for zones whose game is not
// built yet. It never completes; the player leaves with Backspace.
package stub

import (
	"github.com/vovakirdan/gros-nounours/internal/core"
	"github.com/vovakirdan/gros-nounours/internal/registry"
)

// ID is the registry id of the placeholder.
const ID = "tbd"

// Game is the placeholder minigame.
type Game struct {
	elapsed float64
}

// New creates a new placeholder.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string    { return ID }
func (g *Game) Title() string { return "Mini-jeu TBD" }

func (g *Game) Init(runtime core.RuntimeConfig) {
	g.elapsed = 0
}

func (g *Game) Update(dt float64, in core.InputFrame) {
	g.elapsed += dt
}

func (g *Game) Draw(dst *core.Screen) {
	y := dst.Height()/2 - 1
	dst.DrawTextCenteredColor(y, "Mini-jeu TBD (stub)", core.ColorBrightWhite)
	// Blinking hint
	if int(g.elapsed*2)%2 == 0 {
		dst.DrawTextCenteredColor(y+2, "Backspace: retour", core.ColorGray)
	}
}

func (g *Game) Unload() {}

func init() {
	registry.Register(ID, func() registry.Minigame {
		return New()
	})
}
