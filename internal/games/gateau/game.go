// Package gateau implements Gateau, a drag-and-drop cake assembly game.
// The player opens the fridge, drags ingredients into the bowl, then
// decorates the cake. Good ingredients score points that become coins.
package gateau

import (
	"fmt"

	"github.com/vovakirdan/gros-nounours/internal/config"
	"github.com/vovakirdan/gros-nounours/internal/core"
	"github.com/vovakirdan/gros-nounours/internal/registry"
)

const (
	IngredientCount = 20
	DecorCount      = 10
	fridgeColumns   = 5
)

// Phase is the step of the recipe.
type Phase int

const (
	PhaseFridgeClosed Phase = iota
	PhaseFridgeOpening
	PhaseMixing
	PhaseDecorating
	PhaseDone
)

// String returns the on-screen name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseFridgeClosed:
		return "Frigo fermé"
	case PhaseFridgeOpening:
		return "Ouverture"
	case PhaseMixing:
		return "Mélange"
	case PhaseDecorating:
		return "Décoration"
	case PhaseDone:
		return "Terminé"
	default:
		return "?"
	}
}

// Place says where an item is. An item is always in exactly one place.
type Place int

const (
	PlaceHome     Place = iota // Fridge slot or decoration shelf
	PlaceDragging              // Following the pointer
	PlaceBowl                  // Ingredient dropped in the bowl
	PlaceCake                  // Decoration dropped somewhere on screen
)

// Item is an ingredient or a decoration.
type Item struct {
	ID    int
	Decor bool
	Rect  core.Rect
	Home  core.Rect
	Place Place
	offX  int
	offY  int
}

// Game implements the cake assembly logic.
type Game struct {
	phase       Phase
	open        float64 // Fridge door progress 0..1
	points      int
	ingredients []Item
	decors      []Item
	bowl        []int // Ingredient ids in drop order
	dragging    *Item
	fridge      core.Rect
	bowlRect    core.Rect
	panel       core.Rect
	origin      core.Rect
	cfg         config.GateauConfig
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new cake game.
func New() *Game {
	return &Game{cfg: config.DefaultGateauConfig()}
}

// ID returns the unique identifier for this minigame.
func (g *Game) ID() string {
	return "gateau"
}

// Title returns the display name for this minigame.
func (g *Game) Title() string {
	return "Gâteau"
}

// Init loads the config and lays out the kitchen for the screen size.
func (g *Game) Init(runtime core.RuntimeConfig) {
	cfg, err := config.LoadGateau(configPath)
	if err != nil {
		cfg = config.DefaultGateauConfig()
	}
	g.cfg = cfg

	// The kitchen is an 80x24 board centered on the screen
	ox := core.Max(0, (runtime.ScreenW-80)/2)
	oy := core.Max(0, (runtime.ScreenH-24)/2)
	g.origin = core.NewRect(ox, oy, 80, 24)
	g.fridge = core.NewRect(ox+1, oy+3, 22, 16)
	g.bowlRect = core.NewRect(ox+28, oy+10, 24, 8)
	g.panel = core.NewRect(ox+56, oy+4, 22, 6)

	g.ingredients = make([]Item, IngredientCount)
	for i := range g.ingredients {
		col, row := i%fridgeColumns, i/fridgeColumns
		home := core.NewRect(g.fridge.X+2+col*4, g.fridge.Y+3+row*3, 3, 2)
		g.ingredients[i] = Item{ID: i + 1, Rect: home, Home: home}
	}

	g.decors = make([]Item, DecorCount)
	for i := range g.decors {
		home := core.NewRect(ox+28+i*4, oy+1, 3, 1)
		g.decors[i] = Item{ID: i + 1, Decor: true, Rect: home, Home: home}
	}

	g.phase = PhaseFridgeClosed
	g.open = 0
	g.points = 0
	g.bowl = g.bowl[:0]
	g.dragging = nil
}

// Update advances the recipe and the drag state.
func (g *Game) Update(dt float64, in core.InputFrame) {
	p := in.Pointer

	switch g.phase {
	case PhaseFridgeClosed:
		if (p.Pressed && g.fridge.Contains(p.X, p.Y)) || in.Has(core.ActionConfirm) {
			g.phase = PhaseFridgeOpening
		}
		return
	case PhaseFridgeOpening:
		g.open += g.cfg.OpenSpeed * dt
		if g.open >= 1 {
			g.open = 1
			g.phase = PhaseMixing
		}
		return
	case PhaseDone:
		return
	}

	g.updateDrag(p)

	if in.Has(core.ActionConfirm) && g.dragging == nil {
		switch g.phase {
		case PhaseMixing:
			g.phase = PhaseDecorating
		case PhaseDecorating:
			g.phase = PhaseDone
		}
	}
}

// updateDrag picks, moves and drops one item at a time.
func (g *Game) updateDrag(p core.Pointer) {
	if g.dragging == nil && p.Pressed {
		g.dragging = g.pick(p.X, p.Y)
		if g.dragging != nil {
			g.dragging.Place = PlaceDragging
			g.dragging.offX = p.X - g.dragging.Rect.X
			g.dragging.offY = p.Y - g.dragging.Rect.Y
		}
	}

	if g.dragging == nil {
		return
	}

	it := g.dragging
	it.Rect.X = p.X - it.offX
	it.Rect.Y = p.Y - it.offY

	if p.Down && !p.Released {
		return
	}

	g.dragging = nil
	if it.Decor {
		it.Place = PlaceCake
	} else {
		g.dropIngredient(it)
	}
}

// pick returns the item under the pointer that may be dragged now.
func (g *Game) pick(x, y int) *Item {
	for i := range g.ingredients {
		it := &g.ingredients[i]
		if it.Place == PlaceHome && it.Rect.Contains(x, y) {
			return it
		}
	}
	if g.phase != PhaseDecorating {
		return nil
	}
	for i := range g.decors {
		it := &g.decors[i]
		if it.Place != PlaceDragging && it.Rect.Contains(x, y) {
			return it
		}
	}
	return nil
}

// dropIngredient adds the item to the bowl or sends it back to its slot.
func (g *Game) dropIngredient(it *Item) {
	if it.Rect.Intersects(g.bowlRect) && len(g.bowl) < g.cfg.BowlCapacity {
		it.Place = PlaceBowl
		g.bowl = append(g.bowl, it.ID)
		if g.cfg.IsGood(it.ID) {
			g.points += g.cfg.GoodPoints
		} else {
			g.points += g.cfg.BadPoints
		}
		return
	}
	it.Place = PlaceHome
	it.Rect = it.Home
}

// Phase returns the current recipe step.
func (g *Game) Phase() Phase {
	return g.phase
}

// Points returns the current score.
func (g *Game) Points() int {
	return g.points
}

// IsCompleted reports completion once the cake is done.
func (g *Game) IsCompleted() (int, bool) {
	if g.phase != PhaseDone {
		return 0, false
	}
	if g.points <= 0 || g.cfg.PointsPerCoin <= 0 {
		return 0, true
	}
	return g.points / g.cfg.PointsPerCoin, true
}

var palette = []core.Color{
	core.ColorRed, core.ColorOrange, core.ColorYellow, core.ColorGreen,
	core.ColorCyan, core.ColorBlue, core.ColorMagenta, core.ColorBrightRed,
	core.ColorBrightGreen, core.ColorBrightBlue,
}

// Draw renders the kitchen.
func (g *Game) Draw(dst *core.Screen) {
	g.drawFridge(dst)

	// Bowl with its contents as small pastilles
	dst.DrawBoxColor(g.bowlRect, core.ColorOrange)
	dst.DrawTextColor(g.bowlRect.X+2, g.bowlRect.Y, " Bol ", core.ColorOrange)
	cols := (g.bowlRect.W - 2) / 2
	for i, id := range g.bowl {
		x := g.bowlRect.X + 1 + (i%cols)*2
		y := g.bowlRect.Y + 2 + i/cols
		dst.SetColored(x, y, '●', palette[(id-1)%len(palette)])
	}
	dst.DrawText(g.bowlRect.X, g.bowlRect.Bottom(), "Entrée pour décorer")

	// Decoration shelf, always visible
	dst.DrawText(g.origin.X+28, g.origin.Y, "Décors (glisser sur le gâteau)")
	for i := range g.decors {
		d := &g.decors[i]
		dst.DrawRectColor(d.Rect, '✿', palette[(d.ID*3)%len(palette)])
	}

	// Score panel
	dst.DrawBox(g.panel)
	dst.DrawTextColor(g.panel.X+2, g.panel.Y+1, "SCORE", core.ColorBrightWhite)
	dst.DrawTextColor(g.panel.X+2, g.panel.Y+2, fmt.Sprintf("Points : %d", g.points), core.ColorBrightBlue)
	dst.DrawTextColor(g.panel.X+2, g.panel.Y+3, fmt.Sprintf("Ingrédients : %d", len(g.bowl)), core.ColorBrightBlue)
	dst.DrawText(g.panel.X+2, g.panel.Y+4, g.phase.String())

	dst.DrawTextColor(g.panel.X, g.panel.Bottom()+1, "Backspace : retour au menu", core.ColorGray)
	dst.DrawTextColor(g.panel.X, g.panel.Bottom()+2, "Entrée : étape suivante", core.ColorGray)

	// Dragged item on top of everything
	if g.dragging != nil {
		g.drawItem(dst, g.dragging)
	}

	if g.phase == PhaseDone {
		coins, _ := g.IsCompleted()
		dst.DrawMessage("Miam! Gâteau terminé.", fmt.Sprintf("+%d pièces", coins), core.ColorBrightYellow)
	}
}

func (g *Game) drawFridge(dst *core.Screen) {
	dst.DrawRectColor(g.fridge, ' ', core.ColorDefault)
	dst.DrawBoxColor(g.fridge, core.ColorWhite)
	dst.DrawTextColor(g.fridge.X+2, g.fridge.Y+1, "FRIGO", core.ColorBrightWhite)

	if g.open < 1 {
		// The door slides left as it opens
		doorW := int(float64(g.fridge.W-2) * (1 - g.open))
		door := core.NewRect(g.fridge.X+1, g.fridge.Y+2, doorW, g.fridge.H-3)
		dst.DrawRectColor(door, '▒', core.ColorGray)
		dst.DrawTextColor(g.fridge.X+1, g.fridge.Bottom(), "Cliquez sur le frigo", core.ColorGray)
		return
	}

	for i := range g.ingredients {
		it := &g.ingredients[i]
		if it.Place == PlaceDragging {
			continue
		}
		if it.Place == PlaceBowl {
			dst.DrawTextColor(it.Home.X, it.Home.Y, "OK", core.ColorGreen)
			continue
		}
		g.drawItem(dst, it)
	}
}

func (g *Game) drawItem(dst *core.Screen, it *Item) {
	if !it.Decor {
		dst.DrawRectColor(it.Rect, '█', palette[(it.ID-1)%len(palette)])
		dst.DrawTextColor(it.Rect.X, it.Rect.Y, fmt.Sprintf("%d", it.ID), core.ColorBrightWhite)
		return
	}
	dst.DrawRectColor(it.Rect, '✿', palette[(it.ID*3)%len(palette)])
}

// Unload drops the items.
func (g *Game) Unload() {
	g.ingredients = nil
	g.decors = nil
	g.bowl = nil
	g.dragging = nil
}

// Register the minigame on package initialization
func init() {
	registry.Register("gateau", func() registry.Minigame {
		return New()
	})
}
