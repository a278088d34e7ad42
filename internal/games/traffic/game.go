// Package traffic implements Traffic, a lane-dodging runner.
// The bear drives up a scrolling road, dodging cars and grabbing coins,
// until it has covered the goal distance.
package traffic

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/gros-nounours/internal/config"
	"github.com/vovakirdan/gros-nounours/internal/core"
	"github.com/vovakirdan/gros-nounours/internal/registry"
)

// Visual characters for rendering
const (
	RoadChar     = '░'
	LaneChar     = '┆'
	ObstacleChar = '█'
	CoinChar     = '●'
	PlayerChar1  = '▲'
	PlayerChar2  = '△'
)

// frameDuration is the player animation step in seconds.
const frameDuration = 0.12

// Game implements the runner. The simulation runs in field pixels
// (config.TrafficField) and is scaled to cells only when drawing.
type Game struct {
	player     core.RectF
	obstacles  *Pool
	coins      *Pool
	scroll     *config.Ramp
	distance   float64 // Scrolled pixels
	lives      int
	collected  int
	completed  bool // Latched on reaching the goal distance
	reward     int  // Coins held at the moment of completion
	roadX      float64
	roadW      float64
	roadScroll float64 // Visual only
	frame      int
	frameTimer float64
	rng        *rand.Rand
	runtime    core.RuntimeConfig
	cfg        config.TrafficConfig
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Traffic runner instance.
func New() *Game {
	return &Game{cfg: config.DefaultTrafficConfig()}
}

// ID returns the unique identifier for this minigame.
func (g *Game) ID() string {
	return "traffic"
}

// Title returns the display name for this minigame.
func (g *Game) Title() string {
	return "Traffic"
}

// Init loads the config and starts a fresh run.
func (g *Game) Init(runtime core.RuntimeConfig) {
	cfg, err := config.LoadTraffic(configPath)
	if err != nil {
		cfg = config.DefaultTrafficConfig()
	}
	g.InitWithConfig(runtime, cfg)
}

// InitWithConfig starts a fresh run with an explicit config.
// Out-of-range values are replaced by defaults.
func (g *Game) InitWithConfig(runtime core.RuntimeConfig, cfg config.TrafficConfig) {
	cfg = cfg.Sanitize()
	g.runtime = runtime
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.obstacles = NewPool(cfg.Obstacles)
	g.coins = NewPool(cfg.Coins)
	g.scroll = config.NewRamp(cfg.Scroll)
	g.reset()
}

// reset reinitializes every counter, position and list.
func (g *Game) reset() {
	field := g.cfg.Field
	g.roadW = field.Width * field.RoadRatio
	g.roadX = (field.Width - g.roadW) / 2

	p := g.cfg.Player
	g.player = core.RectF{
		X: g.roadX + (g.roadW-p.Width)/2,
		Y: field.Height - p.BottomOffset,
		W: p.Width,
		H: p.Height,
	}

	g.obstacles.Reset()
	g.coins.Reset()
	g.scroll.Reset()
	g.distance = 0
	g.lives = p.Lives
	g.collected = 0
	g.completed = false
	g.reward = 0
	g.roadScroll = 0
	g.frame = 0
	g.frameTimer = 0
}

// Update advances the simulation by dt seconds.
func (g *Game) Update(dt float64, in core.InputFrame) {
	if g.lives <= 0 {
		if in.Has(core.ActionRestart) {
			g.reset()
		}
		return
	}

	g.movePlayer(dt, in)

	g.obstacles.Tick(dt, g.spawnX)
	g.coins.Tick(dt, g.spawnX)

	speed := g.scroll.Speed()
	g.obstacles.Advance(speed * dt)
	g.coins.Advance(speed * dt)
	g.roadScroll = math.Mod(g.roadScroll+speed*dt, g.cfg.Field.Height)
	g.distance += speed * dt
	g.scroll.Advance(dt)

	g.frameTimer += dt
	for g.frameTimer >= frameDuration {
		g.frameTimer -= frameDuration
		g.frame = (g.frame + 1) % 2
	}

	g.collide()

	limit := g.cfg.Field.Height + g.cfg.Field.DespawnMargin
	sweep := func(e Entity) bool {
		return e.Consumed || e.Box.Y >= limit
	}
	g.obstacles.RemoveIf(sweep)
	g.coins.RemoveIf(sweep)

	if !g.completed && g.Meters() >= g.cfg.Distance.GoalMeters {
		g.completed = true
		g.reward = g.collected
	}
}

// movePlayer applies held directions and clamps to the road and play band.
func (g *Game) movePlayer(dt float64, in core.InputFrame) {
	p := g.cfg.Player
	g.player.X += in.Axis(core.ActionLeft, core.ActionRight) * p.SpeedX * dt
	g.player.Y += in.Axis(core.ActionUp, core.ActionDown) * p.SpeedY * dt
	g.clampPlayer()
}

func (g *Game) clampPlayer() {
	p := g.cfg.Player
	g.player.X = core.ClampF(g.player.X, g.roadX, g.roadX+g.roadW-g.player.W)
	g.player.Y = core.ClampF(g.player.Y, p.Margin, g.cfg.Field.Height-g.player.H-p.Margin)
}

// spawnX returns a random left edge keeping an entity of width w on the road.
func (g *Game) spawnX(w float64) float64 {
	maxOffset := int(g.roadW - w)
	if maxOffset < 0 {
		maxOffset = 0
	}
	return g.roadX + float64(g.rng.Intn(maxOffset+1))
}

// collide resolves player contacts with shrunk hitboxes.
// Every overlapping obstacle costs a life; there is no invulnerability.
func (g *Game) collide() {
	p := g.cfg.Player

	obstacles := g.obstacles.Items()
	for i := range obstacles {
		pbox := g.player.Shrink(p.HitboxX, p.HitboxY)
		obox := obstacles[i].Box.Shrink(g.cfg.Obstacles.HitboxX, g.cfg.Obstacles.HitboxY)
		if obstacles[i].Consumed || !pbox.Overlaps(obox) {
			continue
		}
		obstacles[i].Consumed = true
		if g.lives > 0 {
			g.lives--
		}
		g.player.Y += p.Knockback
		g.clampPlayer()
	}

	pbox := g.player.Shrink(p.HitboxX, p.HitboxY)
	coins := g.coins.Items()
	for i := range coins {
		cbox := coins[i].Box.Shrink(g.cfg.Coins.HitboxX, g.cfg.Coins.HitboxY)
		if coins[i].Consumed || !pbox.Overlaps(cbox) {
			continue
		}
		coins[i].Consumed = true
		g.collected++
	}
}

// Meters returns the distance covered.
func (g *Game) Meters() float64 {
	if g.cfg.Distance.PixelsPerMeter <= 0 {
		return 0
	}
	return g.distance / g.cfg.Distance.PixelsPerMeter
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Collected returns the number of coins picked up this run.
func (g *Game) Collected() int {
	return g.collected
}

// GameOver reports whether the run is frozen waiting for a restart.
func (g *Game) GameOver() bool {
	return g.lives <= 0
}

// IsCompleted reports the latched goal flag and the coins collected when
// the goal was reached.
func (g *Game) IsCompleted() (int, bool) {
	return g.reward, g.completed
}

// Draw renders the road, entities and HUD scaled to the screen.
func (g *Game) Draw(dst *core.Screen) {
	if dst.Height() < 2 || g.cfg.Field.Width <= 0 || g.cfg.Field.Height <= 0 {
		return
	}

	v := viewport{
		sx:   float64(dst.Width()) / g.cfg.Field.Width,
		sy:   float64(dst.Height()-1) / g.cfg.Field.Height,
		top:  1,
		rows: dst.Height() - 1,
	}

	g.drawRoad(dst, v)

	for _, e := range g.coins.Items() {
		if !e.Consumed {
			dst.DrawRectColor(v.rect(e.Box), CoinChar, core.ColorBrightYellow)
		}
	}
	for _, e := range g.obstacles.Items() {
		if !e.Consumed {
			dst.DrawRectColor(v.rect(e.Box), ObstacleChar, core.ColorRed)
		}
	}

	glyph := PlayerChar1
	if g.frame == 1 {
		glyph = PlayerChar2
	}
	dst.DrawRectColor(v.rect(g.player), glyph, core.ColorOrange)

	g.drawHUD(dst)

	if g.GameOver() {
		dst.DrawMessage("Oups! Tu as perdu.", "Appuie sur R pour rejouer", core.ColorBrightYellow)
	}
}

func (g *Game) drawRoad(dst *core.Screen, v viewport) {
	road := v.rect(core.RectF{X: g.roadX, Y: 0, W: g.roadW, H: g.cfg.Field.Height})
	dst.DrawRectColor(road, RoadChar, core.ColorGray)

	// Dashed centre line scrolling with the road
	cx := road.X + road.W/2
	offset := int(g.roadScroll * v.sy)
	for y := 0; y < v.rows; y++ {
		if ((y-offset)%4+4)%4 < 2 {
			dst.SetColored(cx, v.top+y, LaneChar, core.ColorWhite)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf("Vies: %d | Flèches pour bouger | R pour recommencer", g.lives)
	dst.DrawTextColor(0, 0, left, core.ColorWhite)

	speed := 0.0
	if g.cfg.Distance.PixelsPerMeter > 0 {
		speed = g.scroll.Speed() / g.cfg.Distance.PixelsPerMeter
	}
	right := fmt.Sprintf("%0.1f m | %0.1f m/s | %d", g.Meters(), speed, g.collected)
	dst.DrawTextColor(dst.Width()-len(right), 0, right, core.ColorBrightYellow)
}

// viewport maps field pixels to screen cells below the HUD row.
type viewport struct {
	sx, sy float64
	top    int
	rows   int
}

func (v viewport) rect(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	rect := core.NewRect(x0, v.top+y0, core.Max(1, x1-x0), core.Max(1, y1-y0))

	// Keep entities above the field off the HUD row
	if rect.Y < v.top {
		rect.H -= v.top - rect.Y
		rect.Y = v.top
	}
	return rect
}

// Unload drops the entity lists.
func (g *Game) Unload() {
	g.obstacles = nil
	g.coins = nil
}

// Register the minigame on package initialization
func init() {
	registry.Register("traffic", func() registry.Minigame {
		return New()
	})
}
