package config

import (
	_ "embed"
)

//go:embed defaults/hub.yaml
var defaultHubYAML []byte

//go:embed defaults/traffic.yaml
var defaultTrafficYAML []byte

//go:embed defaults/pousse.yaml
var defaultPousseYAML []byte

//go:embed defaults/gateau.yaml
var defaultGateauYAML []byte

// DefaultHubConfig returns the default hub configuration.
func DefaultHubConfig() HubConfig {
	return HubConfig{
		DefaultMinigame: "pousse",
		LayoutFile:      "config/menu_layout.ini",
		Zones: []ZoneConfig{
			{Key: "jardin", Label: "Jardin", Minigame: "pousse"},
			{Key: "chambre", Label: "Chambre", Minigame: "gateau"},
			{Key: "grenier", Label: "Grenier", Minigame: "traffic"},
			{Key: "cuisine", Label: "Cuisine", Minigame: ""},
		},
	}
}

// DefaultTrafficConfig returns the default Traffic runner configuration.
func DefaultTrafficConfig() TrafficConfig {
	return TrafficConfig{
		Field: TrafficField{
			Width:         1920,
			Height:        1080,
			RoadRatio:     0.45,
			DespawnMargin: 20,
		},
		Player: TrafficPlayer{
			Width:        80,
			Height:       84,
			BottomOffset: 120,
			SpeedX:       260,
			SpeedY:       200,
			Margin:       10,
			HitboxX:      8,
			HitboxY:      8,
			Lives:        3,
			Knockback:    12,
		},
		Scroll: RampConfig{
			Base:  220,
			Accel: 18,
			Max:   1200,
		},
		Distance: TrafficGoal{
			PixelsPerMeter: 48,
			GoalMeters:     1000,
		},
		Obstacles: TrafficSpawner{
			Width:    64,
			Height:   84,
			Interval: 0.8,
			Capacity: 32,
			HitboxX:  10,
			HitboxY:  12,
		},
		Coins: TrafficSpawner{
			Width:    24,
			Height:   24,
			Interval: 1.2,
			Capacity: 64,
			HitboxX:  4,
			HitboxY:  4,
		},
	}
}

// DefaultPousseConfig returns the default puzzle configuration.
func DefaultPousseConfig() PousseConfig {
	return PousseConfig{
		Reward:      5,
		Celebration: 0,
	}
}

// DefaultGateauConfig returns the default cake configuration.
func DefaultGateauConfig() GateauConfig {
	return GateauConfig{
		GoodIngredients: []int{2, 5, 7, 11, 13},
		GoodPoints:      20,
		BadPoints:       -10,
		PointsPerCoin:   10,
		BowlCapacity:    20,
		OpenSpeed:       4.0,
	}
}

// Names lists the config files that ship with embedded defaults.
func Names() []string {
	return []string{"hub", "traffic", "pousse", "gateau"}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "hub":
		return defaultHubYAML
	case "traffic":
		return defaultTrafficYAML
	case "pousse":
		return defaultPousseYAML
	case "gateau":
		return defaultGateauYAML
	default:
		return nil
	}
}
