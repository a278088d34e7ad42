package traffic

import (
	"github.com/vovakirdan/gros-nounours/internal/config"
	"github.com/vovakirdan/gros-nounours/internal/core"
)

// Entity is an obstacle or a coin scrolling down the road.
type Entity struct {
	Box      core.RectF
	Consumed bool // Hit or collected; swept on the next compaction
}

// Pool is a capped, ordered list of entities fed by a countdown spawner.
// Spawns beyond capacity are dropped.
type Pool struct {
	items    []Entity
	capacity int
	interval float64
	timer    float64
	w, h     float64
}

// NewPool creates an empty pool from spawner settings.
func NewPool(cfg config.TrafficSpawner) *Pool {
	p := &Pool{
		items:    make([]Entity, 0, cfg.Capacity),
		capacity: cfg.Capacity,
		interval: cfg.Interval,
		w:        cfg.Width,
		h:        cfg.Height,
	}
	p.Reset()
	return p
}

// Reset clears all entities and arms the spawner for an immediate spawn.
func (p *Pool) Reset() {
	p.items = p.items[:0]
	p.timer = 0
}

// Tick counts the spawner down by dt. On expiry it places one entity with
// its left edge at x and rearms the timer. Returns true if an entity was added.
func (p *Pool) Tick(dt float64, x func(w float64) float64) bool {
	p.timer -= dt
	if p.timer > 0 {
		return false
	}
	p.timer = p.interval
	return p.Add(core.RectF{X: x(p.w), Y: -p.h - 10, W: p.w, H: p.h})
}

// Add appends an entity unless the pool is full.
func (p *Pool) Add(box core.RectF) bool {
	if len(p.items) >= p.capacity {
		return false
	}
	p.items = append(p.items, Entity{Box: box})
	return true
}

// Advance moves every entity down by dy.
func (p *Pool) Advance(dy float64) {
	for i := range p.items {
		p.items[i].Box.Y += dy
	}
}

// RemoveIf compacts the list in place, keeping order.
func (p *Pool) RemoveIf(drop func(Entity) bool) {
	valid := p.items[:0]
	for _, e := range p.items {
		if !drop(e) {
			valid = append(valid, e)
		}
	}
	p.items = valid
}

// Len returns the number of live entities.
func (p *Pool) Len() int {
	return len(p.items)
}

// Items returns the entities for iteration. Callers may flag Consumed.
func (p *Pool) Items() []Entity {
	return p.items
}

// Cap returns the pool capacity.
func (p *Pool) Cap() int {
	return p.capacity
}
