// Package config provides YAML-based configuration loading for the hub
// and the minigames, plus the linear speed ramp used by the runner.
package config

import "math"

// HubConfig describes the hub zones and which minigame each one opens.
type HubConfig struct {
	DefaultMinigame string       `yaml:"default_minigame"`
	LayoutFile      string       `yaml:"layout_file"`
	Zones           []ZoneConfig `yaml:"zones"`
}

// ZoneConfig binds a hub zone to a minigame.
type ZoneConfig struct {
	Key      string `yaml:"key"` // jardin, chambre, grenier, cuisine
	Label    string `yaml:"label"`
	Minigame string `yaml:"minigame"`
}

// Zone returns the configuration for a zone key.
func (c HubConfig) Zone(key string) (ZoneConfig, bool) {
	for _, z := range c.Zones {
		if z.Key == key {
			return z, true
		}
	}
	return ZoneConfig{}, false
}

// TrafficConfig contains all configuration for the Traffic runner.
// Distances are in field pixels, speeds in pixels per second.
type TrafficConfig struct {
	Field     TrafficField   `yaml:"field"`
	Player    TrafficPlayer  `yaml:"player"`
	Scroll    RampConfig     `yaml:"scroll"`
	Distance  TrafficGoal    `yaml:"distance"`
	Obstacles TrafficSpawner `yaml:"obstacles"`
	Coins     TrafficSpawner `yaml:"coins"`
}

// TrafficField defines the virtual play field.
type TrafficField struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	RoadRatio     float64 `yaml:"road_ratio"`     // Road width as a share of the field
	DespawnMargin float64 `yaml:"despawn_margin"` // Entities are removed this far below the field
}

// TrafficPlayer defines the player car.
type TrafficPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Start y = field height - offset
	SpeedX       float64 `yaml:"speed_x"`
	SpeedY       float64 `yaml:"speed_y"`
	Margin       float64 `yaml:"margin"` // Vertical play band inset
	HitboxX      float64 `yaml:"hitbox_x"`
	HitboxY      float64 `yaml:"hitbox_y"`
	Lives        int     `yaml:"lives"`
	Knockback    float64 `yaml:"knockback"`
}

// TrafficGoal defines the distance needed to complete a run.
type TrafficGoal struct {
	PixelsPerMeter float64 `yaml:"pixels_per_meter"`
	GoalMeters     float64 `yaml:"goal_meters"`
}

// TrafficSpawner defines one spawner and the entities it produces.
type TrafficSpawner struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Interval float64 `yaml:"interval"` // Seconds between spawns
	Capacity int     `yaml:"capacity"` // Spawns beyond this are dropped
	HitboxX  float64 `yaml:"hitbox_x"`
	HitboxY  float64 `yaml:"hitbox_y"`
}

// PousseConfig contains configuration for the box-pushing puzzle.
type PousseConfig struct {
	Reward      int     `yaml:"reward"`      // Coins awarded for solving
	Celebration float64 `yaml:"celebration"` // Seconds the win banner shows before completion; 0 completes on the winning move
}

// GateauConfig contains configuration for the cake assembly game.
type GateauConfig struct {
	GoodIngredients []int   `yaml:"good_ingredients"`
	GoodPoints      int     `yaml:"good_points"`
	BadPoints       int     `yaml:"bad_points"`
	PointsPerCoin   int     `yaml:"points_per_coin"`
	BowlCapacity    int     `yaml:"bowl_capacity"`
	OpenSpeed       float64 `yaml:"open_speed"` // Fridge door progress per second
}

// IsGood reports whether an ingredient id belongs in the cake.
func (c GateauConfig) IsGood(id int) bool {
	for _, g := range c.GoodIngredients {
		if g == id {
			return true
		}
	}
	return false
}

// Fixed list sizes of the runner. Configs may lower them, never raise them.
const (
	MaxObstacles = 32
	MaxCoins     = 64
)

// Sanitize returns a copy where every out-of-range value is replaced by
// its default. Spawner capacities are clamped to MaxObstacles and MaxCoins.
func (c TrafficConfig) Sanitize() TrafficConfig {
	def := DefaultTrafficConfig()

	c.Field.Width = positiveOr(c.Field.Width, def.Field.Width)
	c.Field.Height = positiveOr(c.Field.Height, def.Field.Height)
	if c.Field.RoadRatio <= 0 || c.Field.RoadRatio > 1 {
		c.Field.RoadRatio = def.Field.RoadRatio
	}
	if c.Field.DespawnMargin < 0 {
		c.Field.DespawnMargin = def.Field.DespawnMargin
	}

	c.Player.Width = positiveOr(c.Player.Width, def.Player.Width)
	c.Player.Height = positiveOr(c.Player.Height, def.Player.Height)
	c.Player.HitboxX = insetOr(c.Player.HitboxX, def.Player.HitboxX, c.Player.Width)
	c.Player.HitboxY = insetOr(c.Player.HitboxY, def.Player.HitboxY, c.Player.Height)
	if c.Player.Lives <= 0 {
		c.Player.Lives = def.Player.Lives
	}

	c.Distance.PixelsPerMeter = positiveOr(c.Distance.PixelsPerMeter, def.Distance.PixelsPerMeter)
	c.Distance.GoalMeters = positiveOr(c.Distance.GoalMeters, def.Distance.GoalMeters)

	c.Obstacles = c.Obstacles.sanitize(def.Obstacles, MaxObstacles)
	c.Coins = c.Coins.sanitize(def.Coins, MaxCoins)
	return c
}

func (s TrafficSpawner) sanitize(def TrafficSpawner, limit int) TrafficSpawner {
	s.Width = positiveOr(s.Width, def.Width)
	s.Height = positiveOr(s.Height, def.Height)
	s.Interval = positiveOr(s.Interval, def.Interval)
	switch {
	case s.Capacity <= 0:
		s.Capacity = def.Capacity
	case s.Capacity > limit:
		s.Capacity = limit
	}
	s.HitboxX = insetOr(s.HitboxX, def.HitboxX, s.Width)
	s.HitboxY = insetOr(s.HitboxY, def.HitboxY, s.Height)
	return s
}

// insetOr keeps a hitbox inset that leaves a non-empty box of the given size.
func insetOr(v, def, size float64) float64 {
	for _, inset := range []float64{v, def} {
		if inset >= 0 && 2*inset < size {
			return inset
		}
	}
	return 0
}

func positiveOr(v, def float64) float64 {
	if v > 0 && !math.IsInf(v, 0) {
		return v
	}
	return def
}
