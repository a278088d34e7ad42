// Package pousse implements Pousse-Pousse, a single-level box pushing puzzle.
// The player pushes boxes onto targets; a box can never push another box.
package pousse

import (
	"fmt"

	"github.com/vovakirdan/gros-nounours/internal/config"
	"github.com/vovakirdan/gros-nounours/internal/core"
	"github.com/vovakirdan/gros-nounours/internal/registry"
)

// Visual glyphs, two cells wide per tile
const (
	WallGlyph   = "▓▓"
	EmptyGlyph  = "  "
	TargetGlyph = "··"
	BoxGlyph    = "[]"
	PlayerGlyph = "☻ "
)

// Game implements the puzzle logic.
type Game struct {
	level   Level
	grid    [][]Tile
	playerX int
	playerY int
	won     bool    // Latched until the level is reloaded
	wonFor  float64 // Seconds since the level was won
	moves   int
	pushes  int
	cfg     config.PousseConfig
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a puzzle on the built-in map.
func New() *Game {
	return NewWithLevel(MustParseLevel(defaultLevel))
}

// NewWithLevel creates a puzzle on a custom map.
func NewWithLevel(lvl Level) *Game {
	return &Game{level: lvl, cfg: config.DefaultPousseConfig()}
}

// ID returns the unique identifier for this minigame.
func (g *Game) ID() string {
	return "pousse"
}

// Title returns the display name for this minigame.
func (g *Game) Title() string {
	return "Pousse-Pousse"
}

// Init loads the config and the level.
func (g *Game) Init(runtime core.RuntimeConfig) {
	cfg, err := config.LoadPousse(configPath)
	if err != nil {
		cfg = config.DefaultPousseConfig()
	}
	g.cfg = cfg
	g.loadLevel()
}

// loadLevel resets the grid from the template and clears the win.
func (g *Game) loadLevel() {
	g.grid = g.level.clone()
	g.playerX = g.level.StartX
	g.playerY = g.level.StartY
	g.won = false
	g.wonFor = 0
	g.moves = 0
	g.pushes = 0
}

// Update applies this frame's moves or a reset.
func (g *Game) Update(dt float64, in core.InputFrame) {
	if in.Has(core.ActionRestart) {
		g.loadLevel()
		return
	}

	if in.Has(core.ActionLeft) {
		g.tryMove(-1, 0)
	}
	if in.Has(core.ActionRight) {
		g.tryMove(1, 0)
	}
	if in.Has(core.ActionUp) {
		g.tryMove(0, -1)
	}
	if in.Has(core.ActionDown) {
		g.tryMove(0, 1)
	}

	if g.won {
		g.wonFor += dt
	}
}

// at returns the tile at (x, y); out of bounds reads as wall.
func (g *Game) at(x, y int) Tile {
	if y < 0 || y >= len(g.grid) || x < 0 || x >= len(g.grid[y]) {
		return TileWall
	}
	return g.grid[y][x]
}

// tryMove moves the player one cell, pushing at most one box.
// Rejected moves leave the grid untouched.
func (g *Game) tryMove(dx, dy int) bool {
	if g.won {
		return false
	}

	nx, ny := g.playerX+dx, g.playerY+dy
	target := g.at(nx, ny)
	if target == TileWall {
		return false
	}

	if target.hasBox() {
		bx, by := nx+dx, ny+dy
		if !g.at(bx, by).free() {
			return false
		}
		if g.grid[by][bx] == TileTarget {
			g.grid[by][bx] = TileBoxOnTarget
		} else {
			g.grid[by][bx] = TileBox
		}
		if target == TileBoxOnTarget {
			g.grid[ny][nx] = TileTarget
		} else {
			g.grid[ny][nx] = TileEmpty
		}
		g.pushes++
	}

	g.playerX, g.playerY = nx, ny
	g.moves++
	g.won = !g.anyLooseBox()
	return true
}

// anyLooseBox scans the whole grid for a box off target.
func (g *Game) anyLooseBox() bool {
	for _, row := range g.grid {
		for _, t := range row {
			if t == TileBox {
				return true
			}
		}
	}
	return false
}

// Won reports whether every box is on a target.
func (g *Game) Won() bool {
	return g.won
}

// IsCompleted reports completion once the win has been shown for the
// celebration time.
func (g *Game) IsCompleted() (int, bool) {
	if !g.won || g.wonFor < g.cfg.Celebration {
		return 0, false
	}
	return g.cfg.Reward, true
}

// Draw renders the grid centered on the screen.
func (g *Game) Draw(dst *core.Screen) {
	dst.DrawTextCenteredColor(0, "Pousse-Pousse", core.ColorBrightYellow)
	dst.DrawTextCentered(1, "Flèches pour bouger, R pour reset, Backspace retour")

	gridW := g.level.W * 2
	originX := (dst.Width() - gridW) / 2
	originY := core.Max(3, (dst.Height()-g.level.H)/2)

	for y, row := range g.grid {
		for x, t := range row {
			glyph, color := tileLook(t)
			dst.DrawTextColor(originX+x*2, originY+y, glyph, color)
		}
	}
	dst.DrawTextColor(originX+g.playerX*2, originY+g.playerY, PlayerGlyph, core.ColorBrightYellow)

	status := fmt.Sprintf("Coups: %d  Poussées: %d", g.moves, g.pushes)
	dst.DrawText(originX, originY+g.level.H+1, status)

	if g.won {
		dst.DrawMessage("Bravo! Niveau réussi.", fmt.Sprintf("+%d pièces", g.cfg.Reward), core.ColorBrightYellow)
	}
}

func tileLook(t Tile) (string, core.Color) {
	switch t {
	case TileWall:
		return WallGlyph, core.ColorGray
	case TileTarget:
		return TargetGlyph, core.ColorGreen
	case TileBox:
		return BoxGlyph, core.ColorOrange
	case TileBoxOnTarget:
		return BoxGlyph, core.ColorBrightGreen
	default:
		return EmptyGlyph, core.ColorDefault
	}
}

// Unload drops the grid.
func (g *Game) Unload() {
	g.grid = nil
}

// Register the minigame on package initialization
func init() {
	registry.Register("pousse", func() registry.Minigame {
		return New()
	})
}
