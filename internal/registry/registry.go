// Package registry provides the minigame contract and a global registry of
// minigame factories. Minigames register themselves in init() functions,
// allowing the session to install them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/gros-nounours/internal/core"
)

// Minigame is the lifecycle contract every minigame implements.
// Minigames contain pure logic with no external dependencies (especially no Bubble Tea).
// The session owns the single active instance and drives it frame by frame.
type Minigame interface {
	// ID returns a unique identifier for this minigame (e.g., "pousse", "traffic").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Init prepares all state for one play session.
	// Called exactly once per activation, before any Update.
	Init(cfg core.RuntimeConfig)

	// Update advances the simulation by dt seconds using this frame's input.
	// Must not block.
	Update(dt float64, in core.InputFrame)

	// Draw renders the current state into the provided screen buffer.
	// It must not change gameplay state. The screen is pre-cleared.
	Draw(dst *core.Screen)

	// Unload releases everything Init acquired.
	// Called exactly once, after the last Update and Draw.
	Unload()
}

// Completer is implemented by minigames that have a victory condition.
// IsCompleted reports true once the minigame is won, together with a
// non-negative coin reward. It has no side effects when it returns false.
type Completer interface {
	IsCompleted() (coins int, ok bool)
}

// Info contains metadata about a registered minigame.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new, uninitialized minigame.
type Factory func() Minigame

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a minigame factory to the registry.
// Typically called from a minigame's init() function.
// Panics if a minigame with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: minigame %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered minigames, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new minigame by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Minigame, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown minigame %q", id)
	}

	return f(), nil
}

// Exists checks if a minigame with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display title of a registered minigame, or the id itself.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}

// Completion polls the optional Completer capability of m.
func Completion(m Minigame) (coins int, ok bool) {
	c, isCompleter := m.(Completer)
	if !isCompleter {
		return 0, false
	}
	coins, ok = c.IsCompleted()
	if coins < 0 {
		coins = 0
	}
	return coins, ok
}
