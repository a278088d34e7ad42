package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchGoDefaults(t *testing.T) {
	SetConfigDir(t.TempDir())
	t.Cleanup(func() { SetConfigDir("") })

	hub, err := LoadHub("")
	if err != nil {
		t.Fatalf("LoadHub() error: %v", err)
	}
	if !reflect.DeepEqual(hub, DefaultHubConfig()) {
		t.Errorf("hub.yaml = %+v, expected %+v", hub, DefaultHubConfig())
	}

	traffic, err := LoadTraffic("")
	if err != nil {
		t.Fatalf("LoadTraffic() error: %v", err)
	}
	if traffic != DefaultTrafficConfig() {
		t.Errorf("traffic.yaml = %+v, expected %+v", traffic, DefaultTrafficConfig())
	}

	pousse, err := LoadPousse("")
	if err != nil {
		t.Fatalf("LoadPousse() error: %v", err)
	}
	if pousse != DefaultPousseConfig() {
		t.Errorf("pousse.yaml = %+v", pousse)
	}

	gateau, err := LoadGateau("")
	if err != nil {
		t.Fatalf("LoadGateau() error: %v", err)
	}
	if !reflect.DeepEqual(gateau, DefaultGateauConfig()) {
		t.Errorf("gateau.yaml = %+v", gateau)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traffic.yaml")
	data := []byte("distance:\n  goal_meters: 50\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTraffic(path)
	if err != nil {
		t.Fatalf("LoadTraffic() error: %v", err)
	}
	if cfg.Distance.GoalMeters != 50 {
		t.Errorf("goal = %v, expected 50", cfg.Distance.GoalMeters)
	}
	if cfg.Distance.PixelsPerMeter != 48 {
		t.Errorf("unset fields should keep defaults, got ppm %v", cfg.Distance.PixelsPerMeter)
	}
	if cfg.Obstacles.Capacity != 32 {
		t.Errorf("obstacle capacity = %d, expected 32", cfg.Obstacles.Capacity)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadPousse(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("reward: [nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadPousse(path)
	if err == nil {
		t.Error("malformed YAML should fail")
	}
	if cfg != DefaultPousseConfig() {
		t.Error("a parse failure should still return defaults")
	}
}

func TestConfigDirTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	SetConfigDir(dir)
	t.Cleanup(func() { SetConfigDir("") })

	if err := os.WriteFile(filepath.Join(dir, "pousse.yaml"), []byte("reward: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPousse("")
	if err != nil {
		t.Fatalf("LoadPousse() error: %v", err)
	}
	if cfg.Reward != 9 {
		t.Errorf("reward = %d, expected 9", cfg.Reward)
	}
	if cfg.Celebration != DefaultPousseConfig().Celebration {
		t.Errorf("celebration = %v, expected default %v", cfg.Celebration, DefaultPousseConfig().Celebration)
	}
}

func TestHubZoneLookup(t *testing.T) {
	hub := DefaultHubConfig()

	z, ok := hub.Zone("grenier")
	if !ok || z.Minigame != "traffic" {
		t.Errorf("Zone(grenier) = %+v, %v", z, ok)
	}
	if _, ok := hub.Zone("cave"); ok {
		t.Error("unknown zone should not be found")
	}
}

func TestGateauIsGood(t *testing.T) {
	cfg := DefaultGateauConfig()
	for _, id := range []int{2, 5, 7, 11, 13} {
		if !cfg.IsGood(id) {
			t.Errorf("ingredient %d should be good", id)
		}
	}
	for _, id := range []int{0, 1, 3, 19} {
		if cfg.IsGood(id) {
			t.Errorf("ingredient %d should be bad", id)
		}
	}
}

func TestGetDefaultYAML(t *testing.T) {
	for _, name := range Names() {
		if len(GetDefaultYAML(name)) == 0 {
			t.Errorf("no embedded default for %q", name)
		}
	}
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown names have no default")
	}
}

func TestTrafficSanitize(t *testing.T) {
	def := DefaultTrafficConfig()
	tests := []struct {
		name  string
		edit  func(c *TrafficConfig)
		check func(c TrafficConfig) bool
	}{
		{"negative obstacle capacity", func(c *TrafficConfig) { c.Obstacles.Capacity = -1 },
			func(c TrafficConfig) bool { return c.Obstacles.Capacity == def.Obstacles.Capacity }},
		{"obstacle capacity over limit", func(c *TrafficConfig) { c.Obstacles.Capacity = 500 },
			func(c TrafficConfig) bool { return c.Obstacles.Capacity == MaxObstacles }},
		{"coin capacity over limit", func(c *TrafficConfig) { c.Coins.Capacity = 65 },
			func(c TrafficConfig) bool { return c.Coins.Capacity == MaxCoins }},
		{"lower capacity kept", func(c *TrafficConfig) { c.Coins.Capacity = 5 },
			func(c TrafficConfig) bool { return c.Coins.Capacity == 5 }},
		{"zero interval", func(c *TrafficConfig) { c.Obstacles.Interval = 0 },
			func(c TrafficConfig) bool { return c.Obstacles.Interval == def.Obstacles.Interval }},
		{"negative coin interval", func(c *TrafficConfig) { c.Coins.Interval = -2 },
			func(c TrafficConfig) bool { return c.Coins.Interval == def.Coins.Interval }},
		{"road ratio above one", func(c *TrafficConfig) { c.Field.RoadRatio = 3 },
			func(c TrafficConfig) bool { return c.Field.RoadRatio == def.Field.RoadRatio }},
		{"zero pixels per meter", func(c *TrafficConfig) { c.Distance.PixelsPerMeter = 0 },
			func(c TrafficConfig) bool { return c.Distance.PixelsPerMeter == def.Distance.PixelsPerMeter }},
		{"no lives", func(c *TrafficConfig) { c.Player.Lives = 0 },
			func(c TrafficConfig) bool { return c.Player.Lives == def.Player.Lives }},
		{"hitbox wider than entity", func(c *TrafficConfig) { c.Coins.HitboxX = 40 },
			func(c TrafficConfig) bool { return c.Coins.HitboxX == def.Coins.HitboxX }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTrafficConfig()
			tt.edit(&cfg)
			if got := cfg.Sanitize(); !tt.check(got) {
				t.Errorf("Sanitize() = %+v", got)
			}
		})
	}

	if DefaultTrafficConfig().Sanitize() != def {
		t.Error("defaults should pass through unchanged")
	}
}

func TestLoadTrafficSanitizesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traffic.yaml")
	data := []byte("obstacles:\n  capacity: 500\n  interval: 0\ncoins:\n  capacity: -1\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTraffic(path)
	if err != nil {
		t.Fatalf("LoadTraffic() error: %v", err)
	}
	if cfg.Obstacles.Capacity != MaxObstacles {
		t.Errorf("obstacle capacity = %d, expected %d", cfg.Obstacles.Capacity, MaxObstacles)
	}
	if cfg.Obstacles.Interval <= 0 {
		t.Errorf("obstacle interval = %v, expected positive", cfg.Obstacles.Interval)
	}
	if cfg.Coins.Capacity != DefaultTrafficConfig().Coins.Capacity {
		t.Errorf("coin capacity = %d, expected default", cfg.Coins.Capacity)
	}
}
