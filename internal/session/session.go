// Package session drives the hub: the title screen, the zone portals, the
// zone intros and the single active minigame. It owns the minigame
// lifecycle (one Init, then Update/Draw, then one Unload) and turns
// completions into coins and zone completion flags.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/gros-nounours/internal/config"
	"github.com/vovakirdan/gros-nounours/internal/core"
	"github.com/vovakirdan/gros-nounours/internal/layout"
	"github.com/vovakirdan/gros-nounours/internal/registry"
)

// FallbackMinigame is installed when neither the zone's minigame nor the
// hub default can be created.
const FallbackMinigame = "tbd"

// Factory creates an uninitialized minigame by id.
type Factory func(id string) (registry.Minigame, error)

// Options configures a Session. Zero values get defaults.
type Options struct {
	Hub      config.HubConfig
	Layout   layout.Layout
	Runtime  core.RuntimeConfig
	Factory  Factory
	Recorder RunRecorder // Optional
	Logger   *log.Logger
	Clock    func() time.Time
}

// Session is the hub state machine.
type Session struct {
	id    string
	state State
	zone  Zone // Zone of the intro or of the active minigame

	active    registry.Minigame
	activeID  string
	startedAt time.Time

	completed map[Zone]bool
	coins     int

	hub     hubState
	debug   bool
	fullscr bool

	cfg      config.HubConfig
	layout   layout.Layout
	runtime  core.RuntimeConfig
	factory  Factory
	recorder RunRecorder
	log      *log.Logger
	now      func() time.Time
}

// New creates a session on the title screen.
func New(opts Options) *Session {
	if len(opts.Hub.Zones) == 0 {
		opts.Hub = config.DefaultHubConfig()
	}
	if opts.Layout.Portals == nil {
		opts.Layout = layout.Default()
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		opts.Runtime = core.DefaultConfig()
	}
	if opts.Factory == nil {
		opts.Factory = registry.Create
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	s := &Session{
		id:        uuid.NewString(),
		state:     StateTitle,
		zone:      ZoneNone,
		completed: make(map[Zone]bool),
		cfg:       opts.Hub,
		layout:    opts.Layout,
		runtime:   opts.Runtime,
		factory:   opts.Factory,
		recorder:  opts.Recorder,
		log:       opts.Logger,
		now:       opts.Clock,
	}
	s.hub.reset()
	s.log.Debug("session started", "id", s.id)
	return s
}

// Update advances one frame. At most one state transition happens per
// frame, and the active minigame is updated only after the transition
// checks.
func (s *Session) Update(dt float64, in core.InputFrame) {
	if in.Has(core.ActionFullscreen) {
		s.fullscr = !s.fullscr
		s.log.Debug("fullscreen toggled", "on", s.fullscr)
	}
	if in.Has(core.ActionDebug) {
		s.debug = !s.debug
		if !s.debug {
			s.hub.stopDrag()
		}
		s.log.Debug("debug overlay toggled", "on", s.debug)
	}

	if s.state != StateTitle && in.Has(core.ActionPause) {
		if s.state == StatePaused {
			s.resume()
		} else {
			s.setState(StatePaused)
		}
		return
	}

	switch s.state {
	case StateTitle:
		if in.Has(core.ActionConfirm) {
			s.hub.reset()
			s.setState(StateHub)
		}

	case StateHub:
		s.updateHub(in)

	case StateZoneIntro:
		if in.Has(core.ActionBack) {
			s.zone = ZoneNone
			s.setState(StateHub)
			return
		}
		if in.Has(core.ActionConfirm) {
			s.startMinigame()
		}

	case StateMinigame:
		if in.Has(core.ActionBack) {
			s.finish(OutcomeCancelled, 0)
			return
		}
		s.active.Update(dt, in)
		if coins, ok := registry.Completion(s.active); ok {
			s.coins += coins
			s.completed[s.zone] = true
			s.log.Info("minigame completed", "zone", s.zone, "minigame", s.activeID, "coins", coins, "total", s.coins)
			s.finish(OutcomeCompleted, coins)
		}

	case StatePaused:
	}
}

// enterZone moves from the hub to a zone intro.
func (s *Session) enterZone(z Zone) {
	if !z.valid() {
		return
	}
	s.zone = z
	s.setState(StateZoneIntro)
}

// resume leaves the pause screen. It always lands in the hub; a minigame
// suspended by the pause is unloaded without reward.
func (s *Session) resume() {
	if s.active != nil {
		s.finish(OutcomeSuspended, 0)
		return
	}
	s.zone = ZoneNone
	s.setState(StateHub)
}

// startMinigame creates, initializes and installs the zone's minigame.
func (s *Session) startMinigame() {
	m, id := s.resolve(s.zone)
	if m == nil {
		s.log.Error("no minigame available", "zone", s.zone)
		return
	}

	m.Init(s.runtime)
	s.active = m
	s.activeID = id
	s.startedAt = s.now()
	s.log.Debug("minigame init", "zone", s.zone, "minigame", id)
	s.setState(StateMinigame)
}

// resolve picks the zone's minigame, then the hub default, then the stub.
func (s *Session) resolve(z Zone) (registry.Minigame, string) {
	var candidates []string
	if zc, ok := s.cfg.Zone(z.Key()); ok && zc.Minigame != "" {
		candidates = append(candidates, zc.Minigame)
	}
	if s.cfg.DefaultMinigame != "" {
		candidates = append(candidates, s.cfg.DefaultMinigame)
	}
	candidates = append(candidates, FallbackMinigame)

	for _, id := range candidates {
		m, err := s.factory(id)
		if err != nil {
			s.log.Warn("minigame unavailable", "minigame", id, "error", err)
			continue
		}
		return m, id
	}
	return nil, ""
}

// finish unloads the active minigame exactly once, records the run and
// returns to the hub.
func (s *Session) finish(outcome Outcome, coins int) {
	m, id, zone := s.active, s.activeID, s.zone
	s.active = nil
	s.activeID = ""
	s.zone = ZoneNone

	m.Unload()
	s.log.Debug("minigame unload", "zone", zone, "minigame", id, "reason", outcome)

	s.record(Run{
		ID:        uuid.NewString(),
		SessionID: s.id,
		Zone:      zone.Key(),
		Minigame:  id,
		Outcome:   outcome,
		Coins:     coins,
		Duration:  s.now().Sub(s.startedAt),
	})
	s.setState(StateHub)
}

func (s *Session) record(run Run) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.SaveRun(run); err != nil {
		s.log.Warn("cannot record run", "minigame", run.Minigame, "error", err)
	}
}

func (s *Session) setState(to State) {
	if to == s.state {
		return
	}
	s.log.Debug("transition", "from", s.state, "to", to, "zone", s.zone)
	s.state = to
}

// Close unloads a minigame still installed when the program exits.
func (s *Session) Close() {
	if s.active == nil {
		return
	}
	outcome := OutcomeCancelled
	if s.state == StatePaused {
		outcome = OutcomeSuspended
	}
	s.finish(outcome, 0)
}

// Resize updates the screen size used for hub geometry and for the next
// minigame Init.
func (s *Session) Resize(w, h int) {
	if w > 0 && h > 0 {
		s.runtime.ScreenW = w
		s.runtime.ScreenH = h
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Zone returns the zone being visited, or ZoneNone.
func (s *Session) Zone() Zone {
	return s.zone
}

// Coins returns the session coin total.
func (s *Session) Coins() int {
	return s.coins
}

// Completed reports whether a zone's minigame has been won this session.
func (s *Session) Completed(z Zone) bool {
	return s.completed[z]
}

// Active returns the installed minigame, or nil.
func (s *Session) Active() registry.Minigame {
	return s.active
}

// Debug reports whether the layout editor overlay is on.
func (s *Session) Debug() bool {
	return s.debug
}

// Fullscreen reports the fullscreen request flag.
func (s *Session) Fullscreen() bool {
	return s.fullscr
}

// Layout returns the current hub layout, including editor changes.
func (s *Session) Layout() layout.Layout {
	return s.layout
}

// LayoutChanged reports whether the editor moved anything.
func (s *Session) LayoutChanged() bool {
	return s.hub.edited
}

// zoneLabel returns the configured label for a zone.
func (s *Session) zoneLabel(z Zone) string {
	if zc, ok := s.cfg.Zone(z.Key()); ok && zc.Label != "" {
		return zc.Label
	}
	return z.Key()
}

// zoneMinigame returns the id the zone would start, without creating it.
func (s *Session) zoneMinigame(z Zone) string {
	if zc, ok := s.cfg.Zone(z.Key()); ok && zc.Minigame != "" && registry.Exists(zc.Minigame) {
		return zc.Minigame
	}
	if registry.Exists(s.cfg.DefaultMinigame) {
		return s.cfg.DefaultMinigame
	}
	return FallbackMinigame
}
