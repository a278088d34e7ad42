package session

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/gros-nounours/internal/config"
	"github.com/vovakirdan/gros-nounours/internal/core"
	"github.com/vovakirdan/gros-nounours/internal/layout"
	"github.com/vovakirdan/gros-nounours/internal/registry"
)

// fakeGame records every lifecycle call and reports protocol violations.
type fakeGame struct {
	t  *testing.T
	id string

	inits, unloads int
	updates, draws int
	completeAfter  int // Updates before completion, 0 = never
	coins          int
}

func (g *fakeGame) ID() string    { return g.id }
func (g *fakeGame) Title() string { return "Fake " + g.id }

func (g *fakeGame) Init(core.RuntimeConfig) {
	g.inits++
	if g.inits > 1 {
		g.t.Errorf("%s: Init called %d times", g.id, g.inits)
	}
}

func (g *fakeGame) Update(float64, core.InputFrame) {
	if g.inits == 0 || g.unloads > 0 {
		g.t.Errorf("%s: Update outside Init/Unload (inits=%d unloads=%d)", g.id, g.inits, g.unloads)
	}
	g.updates++
}

func (g *fakeGame) Draw(*core.Screen) {
	if g.inits == 0 || g.unloads > 0 {
		g.t.Errorf("%s: Draw outside Init/Unload", g.id)
	}
	g.draws++
}

func (g *fakeGame) Unload() {
	g.unloads++
	if g.unloads > 1 {
		g.t.Errorf("%s: Unload called %d times", g.id, g.unloads)
	}
	if g.inits == 0 {
		g.t.Errorf("%s: Unload before Init", g.id)
	}
}

func (g *fakeGame) IsCompleted() (int, bool) {
	if g.completeAfter > 0 && g.updates >= g.completeAfter {
		return g.coins, true
	}
	return 0, false
}

// fakeFactory creates fake games and keeps every instance it handed out.
type fakeFactory struct {
	t       *testing.T
	made    []*fakeGame
	missing map[string]bool
	after   int
	coins   int
}

func (f *fakeFactory) create(id string) (registry.Minigame, error) {
	if f.missing[id] {
		return nil, fmt.Errorf("registry: unknown minigame %q", id)
	}
	g := &fakeGame{t: f.t, id: id, completeAfter: f.after, coins: f.coins}
	f.made = append(f.made, g)
	return g, nil
}

func (f *fakeFactory) last() *fakeGame {
	if len(f.made) == 0 {
		return nil
	}
	return f.made[len(f.made)-1]
}

type recorder struct {
	runs []Run
	err  error
}

func (r *recorder) SaveRun(run Run) error {
	r.runs = append(r.runs, run)
	return r.err
}

func newTestSession(t *testing.T, f *fakeFactory, rec RunRecorder) *Session {
	t.Helper()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var opts Options
	opts.Hub = config.DefaultHubConfig()
	opts.Runtime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	opts.Factory = f.create
	opts.Clock = func() time.Time {
		now = now.Add(time.Second)
		return now
	}
	if rec != nil {
		opts.Recorder = rec
	}
	return New(opts)
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func pointer(x, y int, pressed, down, released bool) core.InputFrame {
	in := core.NewInputFrame()
	in.Pointer = core.Pointer{X: x, Y: y, Pressed: pressed, Down: down, Released: released}
	return in
}

// enterGarden drives the session from the title to the garden minigame.
func enterGarden(t *testing.T, s *Session) {
	t.Helper()
	s.Update(0.016, press(core.ActionConfirm)) // Title -> Hub
	s.Update(0.016, press(core.ActionConfirm)) // Hub -> ZoneIntro(garden)
	if s.State() != StateZoneIntro || s.Zone() != ZoneGarden {
		t.Fatalf("expected garden intro, got %v/%v", s.State(), s.Zone())
	}
	s.Update(0.016, press(core.ActionConfirm)) // ZoneIntro -> Minigame
	if s.State() != StateMinigame {
		t.Fatalf("expected minigame state, got %v", s.State())
	}
}

func TestTitleToHub(t *testing.T) {
	s := newTestSession(t, &fakeFactory{t: t}, nil)

	if s.State() != StateTitle {
		t.Fatalf("expected title, got %v", s.State())
	}
	s.Update(0.016, press(core.ActionPause))
	if s.State() != StateTitle {
		t.Errorf("pause on title should be ignored, got %v", s.State())
	}
	s.Update(0.016, press(core.ActionConfirm))
	if s.State() != StateHub {
		t.Errorf("expected hub, got %v", s.State())
	}
	if s.ID() == "" {
		t.Error("session id should be set")
	}
}

func TestZoneIntroCancel(t *testing.T) {
	f := &fakeFactory{t: t}
	s := newTestSession(t, f, nil)

	s.Update(0.016, press(core.ActionConfirm))
	s.Update(0.016, press(core.ActionConfirm))
	if s.State() != StateZoneIntro {
		t.Fatalf("expected zone intro, got %v", s.State())
	}

	s.Update(0.016, press(core.ActionBack))
	if s.State() != StateHub {
		t.Errorf("expected hub after back, got %v", s.State())
	}
	if s.Zone() != ZoneNone {
		t.Errorf("zone should be cleared, got %v", s.Zone())
	}
	if len(f.made) != 0 {
		t.Errorf("no minigame should be created, got %d", len(f.made))
	}
}

func TestKeyboardFocus(t *testing.T) {
	f := &fakeFactory{t: t}
	s := newTestSession(t, f, nil)
	s.Update(0.016, press(core.ActionConfirm))

	s.Update(0.016, press(core.ActionRight))
	s.Update(0.016, press(core.ActionConfirm))
	if s.Zone() != ZoneBedroom {
		t.Fatalf("expected bedroom, got %v", s.Zone())
	}
	s.Update(0.016, press(core.ActionConfirm))
	if g := f.last(); g == nil || g.id != "gateau" {
		t.Errorf("bedroom should start gateau, got %+v", g)
	}
}

func TestStepZoneWraps(t *testing.T) {
	tests := []struct {
		from Zone
		d    int
		want Zone
	}{
		{ZoneGarden, 1, ZoneBedroom},
		{ZoneKitchen, 1, ZoneGarden},
		{ZoneGarden, -1, ZoneKitchen},
		{ZoneNone, 1, ZoneGarden},
	}
	for _, tt := range tests {
		if got := stepZone(tt.from, tt.d); got != tt.want {
			t.Errorf("stepZone(%v, %d) = %v, want %v", tt.from, tt.d, got, tt.want)
		}
	}
}

func TestCompletionAwardsCoinsAndFlag(t *testing.T) {
	f := &fakeFactory{t: t, after: 3, coins: 5}
	rec := &recorder{}
	s := newTestSession(t, f, rec)
	enterGarden(t, s)

	g := f.last()
	if g.id != "pousse" {
		t.Fatalf("garden should start pousse, got %q", g.id)
	}
	if g.inits != 1 {
		t.Fatalf("expected one Init, got %d", g.inits)
	}

	s.Update(0.016, idle())
	s.Update(0.016, idle())
	if s.State() != StateMinigame || s.Completed(ZoneGarden) {
		t.Fatal("should still be playing")
	}
	s.Update(0.016, idle())

	if s.State() != StateHub {
		t.Errorf("expected hub after completion, got %v", s.State())
	}
	if s.Coins() != 5 {
		t.Errorf("expected 5 coins, got %d", s.Coins())
	}
	if !s.Completed(ZoneGarden) {
		t.Error("garden should be completed")
	}
	if s.Completed(ZoneBedroom) {
		t.Error("bedroom should not be completed")
	}
	if g.unloads != 1 {
		t.Errorf("expected one Unload, got %d", g.unloads)
	}
	if s.Active() != nil {
		t.Error("active minigame should be cleared")
	}

	if len(rec.runs) != 1 {
		t.Fatalf("expected one run, got %d", len(rec.runs))
	}
	run := rec.runs[0]
	if run.Outcome != OutcomeCompleted || run.Coins != 5 || run.Zone != "jardin" || run.Minigame != "pousse" {
		t.Errorf("unexpected run %+v", run)
	}
	if run.SessionID != s.ID() || run.ID == "" {
		t.Errorf("run ids not set: %+v", run)
	}
	if run.Duration <= 0 {
		t.Errorf("expected positive duration, got %v", run.Duration)
	}
}

func TestReplayAwardsAgain(t *testing.T) {
	f := &fakeFactory{t: t, after: 1, coins: 2}
	s := newTestSession(t, f, nil)

	enterGarden(t, s)
	s.Update(0.016, idle())
	s.Update(0.016, press(core.ActionConfirm)) // Focus is still garden
	s.Update(0.016, press(core.ActionConfirm))
	s.Update(0.016, idle())

	if s.Coins() != 4 {
		t.Errorf("expected 4 coins after two wins, got %d", s.Coins())
	}
	if len(f.made) != 2 {
		t.Fatalf("expected two instances, got %d", len(f.made))
	}
	for i, g := range f.made {
		if g.inits != 1 || g.unloads != 1 {
			t.Errorf("instance %d: inits=%d unloads=%d", i, g.inits, g.unloads)
		}
	}
}

func TestBackCancelsWithoutReward(t *testing.T) {
	f := &fakeFactory{t: t, after: 1, coins: 9}
	rec := &recorder{}
	s := newTestSession(t, f, rec)
	enterGarden(t, s)
	g := f.last()

	s.Update(0.016, press(core.ActionBack))

	if s.State() != StateHub {
		t.Errorf("expected hub, got %v", s.State())
	}
	if g.updates != 0 {
		t.Errorf("minigame should not update on the back frame, got %d updates", g.updates)
	}
	if g.unloads != 1 {
		t.Errorf("expected one Unload, got %d", g.unloads)
	}
	if s.Coins() != 0 || s.Completed(ZoneGarden) {
		t.Error("cancel must not award coins or set the flag")
	}
	if len(rec.runs) != 1 || rec.runs[0].Outcome != OutcomeCancelled {
		t.Errorf("expected one cancelled run, got %+v", rec.runs)
	}
}

func TestPauseSuspendsThenUnloadsOnResume(t *testing.T) {
	f := &fakeFactory{t: t, after: 1, coins: 3}
	rec := &recorder{}
	s := newTestSession(t, f, rec)
	enterGarden(t, s)
	g := f.last()

	s.Update(0.016, press(core.ActionPause))
	if s.State() != StatePaused {
		t.Fatalf("expected paused, got %v", s.State())
	}
	if g.unloads != 0 {
		t.Error("pause must not unload")
	}

	screen := core.NewScreen(80, 24)
	for i := 0; i < 5; i++ {
		s.Update(0.016, press(core.ActionConfirm))
		s.Draw(screen)
	}
	if g.updates != 0 || g.draws != 0 {
		t.Errorf("suspended minigame was driven: updates=%d draws=%d", g.updates, g.draws)
	}
	if s.Active() == nil {
		t.Error("minigame should stay installed while paused")
	}

	s.Update(0.016, press(core.ActionPause))
	if s.State() != StateHub {
		t.Errorf("resume should land in hub, got %v", s.State())
	}
	if g.unloads != 1 {
		t.Errorf("expected one Unload after resume, got %d", g.unloads)
	}
	if s.Coins() != 0 || s.Completed(ZoneGarden) {
		t.Error("suspended run must not award anything")
	}
	if len(rec.runs) != 1 || rec.runs[0].Outcome != OutcomeSuspended {
		t.Errorf("expected one suspended run, got %+v", rec.runs)
	}
}

func TestPauseFromHubAndIntro(t *testing.T) {
	s := newTestSession(t, &fakeFactory{t: t}, nil)
	s.Update(0.016, press(core.ActionConfirm))

	s.Update(0.016, press(core.ActionPause))
	if s.State() != StatePaused {
		t.Fatalf("expected paused, got %v", s.State())
	}
	s.Update(0.016, press(core.ActionPause))
	if s.State() != StateHub {
		t.Fatalf("expected hub, got %v", s.State())
	}

	s.Update(0.016, press(core.ActionConfirm))
	s.Update(0.016, press(core.ActionPause))
	s.Update(0.016, press(core.ActionPause))
	if s.State() != StateHub || s.Zone() != ZoneNone {
		t.Errorf("resume from intro should land in hub, got %v/%v", s.State(), s.Zone())
	}
}

func TestFallbackMapping(t *testing.T) {
	tests := []struct {
		name    string
		zone    Zone
		missing map[string]bool
		want    string
	}{
		{"mapped", ZoneAttic, nil, "traffic"},
		{"unmapped uses default", ZoneKitchen, nil, "pousse"},
		{"unknown uses default", ZoneBedroom, map[string]bool{"gateau": true}, "pousse"},
		{"default missing uses stub", ZoneKitchen, map[string]bool{"pousse": true}, FallbackMinigame},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeFactory{t: t, missing: tt.missing}
			s := newTestSession(t, f, nil)
			s.Update(0.016, press(core.ActionConfirm))
			s.enterZone(tt.zone)
			s.Update(0.016, press(core.ActionConfirm))

			if s.State() != StateMinigame {
				t.Fatalf("expected minigame, got %v", s.State())
			}
			if g := f.last(); g.id != tt.want {
				t.Errorf("started %q, want %q", g.id, tt.want)
			}
			if len(f.made) != 1 {
				t.Errorf("only the selected minigame should be created, got %d", len(f.made))
			}
		})
	}
}

func TestNoMinigameAvailableStaysInIntro(t *testing.T) {
	f := &fakeFactory{t: t, missing: map[string]bool{"pousse": true, FallbackMinigame: true}}
	s := newTestSession(t, f, nil)
	s.Update(0.016, press(core.ActionConfirm))
	s.Update(0.016, press(core.ActionConfirm))
	s.Update(0.016, press(core.ActionConfirm))

	if s.State() != StateZoneIntro {
		t.Errorf("expected to stay in intro, got %v", s.State())
	}
	if s.Active() != nil {
		t.Error("nothing should be installed")
	}
}

func TestRecorderErrorDoesNotStopPlay(t *testing.T) {
	f := &fakeFactory{t: t, after: 1, coins: 1}
	rec := &recorder{err: errors.New("disk full")}
	s := newTestSession(t, f, rec)
	enterGarden(t, s)
	s.Update(0.016, idle())

	if s.State() != StateHub || s.Coins() != 1 {
		t.Errorf("recorder failure should be ignored: state=%v coins=%d", s.State(), s.Coins())
	}
}

func TestCloseUnloadsActive(t *testing.T) {
	f := &fakeFactory{t: t}
	rec := &recorder{}
	s := newTestSession(t, f, rec)
	enterGarden(t, s)

	s.Close()
	s.Close()

	if g := f.last(); g.unloads != 1 {
		t.Errorf("expected one Unload, got %d", g.unloads)
	}
	if len(rec.runs) != 1 || rec.runs[0].Outcome != OutcomeCancelled {
		t.Errorf("expected one cancelled run, got %+v", rec.runs)
	}
}

func TestExactlyOnceLifecycle(t *testing.T) {
	f := &fakeFactory{t: t, after: 7, coins: 1}
	s := newTestSession(t, f, nil)
	screen := core.NewScreen(80, 24)

	rng := rand.New(rand.NewSource(42))
	actions := []core.Action{
		core.ActionNone, core.ActionNone, core.ActionConfirm, core.ActionConfirm,
		core.ActionBack, core.ActionPause, core.ActionLeft, core.ActionRight,
	}
	for i := 0; i < 2000; i++ {
		a := actions[rng.Intn(len(actions))]
		in := idle()
		if a != core.ActionNone {
			in.Set(a)
		}
		s.Update(0.016, in)
		s.Draw(screen)

		if s.State() == StateMinigame && s.Active() == nil {
			t.Fatalf("frame %d: minigame state without a handle", i)
		}
	}
	s.Close()

	if len(f.made) == 0 {
		t.Fatal("sequence never started a minigame")
	}
	for i, g := range f.made {
		if g.inits != 1 || g.unloads != 1 {
			t.Errorf("instance %d (%s): inits=%d unloads=%d", i, g.id, g.inits, g.unloads)
		}
	}
}

func TestDebugDragPortal(t *testing.T) {
	f := &fakeFactory{t: t}
	s := newTestSession(t, f, nil)
	s.Update(0.016, press(core.ActionConfirm))

	r := s.portalRect(ZoneGarden)
	cx, cy := r.Center()
	before := s.Layout().Portal("jardin")

	in := press(core.ActionDebug)
	s.Update(0.016, in)
	if !s.Debug() {
		t.Fatal("debug overlay should be on")
	}

	s.Update(0.016, pointer(cx, cy, true, true, false))
	if s.State() != StateHub {
		t.Fatalf("click in debug mode must not enter a zone, got %v", s.State())
	}
	if s.hub.drag != dragPortal || s.hub.dragZone != ZoneGarden {
		t.Fatalf("expected garden drag, got %v/%v", s.hub.drag, s.hub.dragZone)
	}
	if s.LayoutChanged() {
		t.Error("pressing without moving should not edit the layout")
	}

	s.Update(0.016, pointer(cx+8, cy+2, false, true, false))
	s.Update(0.016, pointer(cx+8, cy+2, false, false, true))

	after := s.Layout().Portal("jardin")
	wantLeft := float64(r.X+8) / 80
	if math.Abs(after.Left-wantLeft) > 1e-9 {
		t.Errorf("left = %v, want %v", after.Left, wantLeft)
	}
	if after.Width != before.Width || after.Height != before.Height {
		t.Error("drag must not resize")
	}
	if !s.LayoutChanged() {
		t.Error("layout should be marked changed")
	}
	if s.hub.drag != dragNone {
		t.Error("release should stop the drag")
	}
}

func TestDebugDragClampsToScreen(t *testing.T) {
	s := newTestSession(t, &fakeFactory{t: t}, nil)
	s.Update(0.016, press(core.ActionConfirm))
	s.Update(0.016, press(core.ActionDebug))

	cx, cy := s.portalRect(ZoneKitchen).Center()
	s.Update(0.016, pointer(cx, cy, true, true, false))
	s.Update(0.016, pointer(500, 300, false, true, false))

	p := s.Layout().Portal("cuisine")
	if p.Left+p.Width > 1+1e-9 || p.Top+p.Height > 1+1e-9 {
		t.Errorf("portal left the screen: %+v", p)
	}

	s.Update(0.016, pointer(-500, -300, false, true, false))
	p = s.Layout().Portal("cuisine")
	if p.Left < 0 || p.Top < 0 {
		t.Errorf("portal left the screen: %+v", p)
	}
}

func TestDebugOffCancelsDrag(t *testing.T) {
	s := newTestSession(t, &fakeFactory{t: t}, nil)
	s.Update(0.016, press(core.ActionConfirm))
	s.Update(0.016, press(core.ActionDebug))

	cx, cy := s.portalRect(ZoneAttic).Center()
	s.Update(0.016, pointer(cx, cy, true, true, false))
	if s.hub.drag == dragNone {
		t.Fatal("drag should have started")
	}

	in := pointer(cx+3, cy, false, true, false)
	in.Set(core.ActionDebug)
	s.Update(0.016, in)
	if s.Debug() || s.hub.drag != dragNone {
		t.Error("turning the overlay off should cancel the drag")
	}
}

func TestDebugDragBear(t *testing.T) {
	s := newTestSession(t, &fakeFactory{t: t}, nil)
	s.Resize(120, 40)
	s.Update(0.016, press(core.ActionConfirm))
	s.Update(0.016, press(core.ActionDebug))

	// Grab the bear where no portal covers it.
	b := s.bearRect()
	x, y := b.X, b.Bottom()-1
	if s.zoneAt(x, y) != ZoneNone {
		t.Fatalf("test point (%d,%d) is covered by a portal", x, y)
	}
	s.Update(0.016, pointer(x, y, true, true, false))
	if s.hub.drag != dragBear {
		t.Fatalf("expected bear drag, got %v", s.hub.drag)
	}
	s.Update(0.016, pointer(x+1000, y, false, true, false))

	bear := s.Layout().Bear
	w := bear.WidthRatio(bearWidth, bearHeight, 120, 40)
	if bear.Left+w > 1+1e-9 {
		t.Errorf("bear left the screen: left=%v width=%v", bear.Left, w)
	}
}

func TestPointerClickEntersZone(t *testing.T) {
	s := newTestSession(t, &fakeFactory{t: t}, nil)
	s.Update(0.016, press(core.ActionConfirm))

	cx, cy := s.portalRect(ZoneAttic).Center()
	s.Update(0.016, pointer(cx, cy, false, false, false))
	if s.hub.focus != ZoneAttic {
		t.Errorf("hover should move focus, got %v", s.hub.focus)
	}
	s.Update(0.016, pointer(cx, cy, true, true, false))
	if s.State() != StateZoneIntro || s.Zone() != ZoneAttic {
		t.Errorf("expected attic intro, got %v/%v", s.State(), s.Zone())
	}
}

func TestToggles(t *testing.T) {
	s := newTestSession(t, &fakeFactory{t: t}, nil)
	s.Update(0.016, press(core.ActionFullscreen))
	if !s.Fullscreen() || s.State() != StateTitle {
		t.Error("fullscreen should toggle without a transition")
	}
	s.Update(0.016, press(core.ActionFullscreen))
	if s.Fullscreen() {
		t.Error("fullscreen should toggle back")
	}
}

func TestSetLayoutClamps(t *testing.T) {
	s := newTestSession(t, &fakeFactory{t: t}, nil)
	l := s.Layout()
	l.Portals = map[string]layout.Ratio{"jardin": {Left: 2, Top: -1, Width: 0.5, Height: 0.5}}
	s.SetLayout(l)

	p := s.Layout().Portal("jardin")
	if p.Left != 0.5 || p.Top != 0 {
		t.Errorf("portal not clamped: %+v", p)
	}
	if _, ok := s.Layout().Portals["cuisine"]; !ok {
		t.Error("missing portals should be filled with defaults")
	}
}

func TestDrawEveryState(t *testing.T) {
	f := &fakeFactory{t: t}
	s := newTestSession(t, f, nil)

	for _, size := range [][2]int{{80, 24}, {20, 8}, {1, 1}} {
		screen := core.NewScreen(size[0], size[1])
		s.Draw(screen)
	}

	screen := core.NewScreen(80, 24)
	s.Draw(screen)
	if !containsText(screen, "Gros Nounours 2D") {
		t.Error("title screen should show the game name")
	}

	s.Update(0.016, press(core.ActionConfirm))
	s.Draw(screen)
	if !containsText(screen, "Pieces : 0") || !containsText(screen, "Etat des mini-jeux") {
		t.Error("hub should show coins and the status table")
	}

	s.Update(0.016, press(core.ActionConfirm))
	s.Draw(screen)
	if !containsText(screen, "Jardin") {
		t.Error("zone intro should show the zone label")
	}

	s.Update(0.016, press(core.ActionConfirm))
	s.Draw(screen)
	if f.last().draws != 1 {
		t.Errorf("minigame should be drawn once, got %d", f.last().draws)
	}

	state, zone := s.State(), s.Zone()
	s.Draw(screen)
	if s.State() != state || s.Zone() != zone {
		t.Error("Draw must not change state")
	}

	s.Update(0.016, press(core.ActionPause))
	s.Draw(screen)
	if !containsText(screen, "Pause") {
		t.Error("pause screen should say Pause")
	}
}

func containsText(s *core.Screen, text string) bool {
	for y := 0; y < s.Height(); y++ {
		if strings.Contains(s.Row(y), text) {
			return true
		}
	}
	return false
}

func TestPortalColors(t *testing.T) {
	f := &fakeFactory{t: t}
	s := newTestSession(t, f, nil)
	s.Update(0.016, press(core.ActionConfirm)) // Title -> Hub

	s.completed[ZoneKitchen] = true
	s.hub.focus = ZoneGarden
	s.hub.hover = ZoneNone

	screen := core.NewScreen(80, 24)
	s.Draw(screen)

	tests := []struct {
		zone Zone
		want core.Color
	}{
		{ZoneGarden, core.ColorPortalLit},
		{ZoneBedroom, core.ColorPortal},
		{ZoneKitchen, core.ColorPortalDone},
	}
	for _, tt := range tests {
		r := s.portalRect(tt.zone)
		if got := screen.GetCell(r.X, r.Y).Color; got != tt.want {
			t.Errorf("%v portal color = %v, expected %v", tt.zone, got, tt.want)
		}
	}
}
