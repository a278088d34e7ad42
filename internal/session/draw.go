package session

import (
	"fmt"

	"github.com/vovakirdan/gros-nounours/internal/core"
	"github.com/vovakirdan/gros-nounours/internal/registry"
)

const (
	hubHint   = "Clique sur une porte | F11: Plein écran | F2: Debug (drag & drop)"
	debugHint = "DEBUG: glisse les portes et le nounours | F2: quitter"
)

// Draw renders the current state. It never changes session state.
func (s *Session) Draw(screen *core.Screen) {
	screen.Clear()

	switch s.state {
	case StateTitle:
		drawBear(screen, s.bearRect(), core.ColorBear)
		screen.DrawMessage("Gros Nounours 2D", "Entrée: Jouer", core.ColorBrightYellow)

	case StateHub:
		s.drawHub(screen)

	case StateZoneIntro:
		s.drawHub(screen)
		title := s.zoneLabel(s.zone)
		sub := fmt.Sprintf("%s | Entrée: Mini-jeu | Retour: Backspace", registry.Title(s.zoneMinigame(s.zone)))
		screen.DrawMessage(title, sub, core.ColorBrightCyan)

	case StateMinigame:
		s.active.Draw(screen)

	case StatePaused:
		screen.DrawMessage("Pause", "Échap: Reprendre", core.ColorBrightWhite)
	}
}

func (s *Session) drawHub(screen *core.Screen) {
	drawBear(screen, s.bearRect(), core.ColorBear)

	for _, z := range Zones {
		s.drawPortal(screen, z)
	}

	screen.DrawTextColor(1, 0, fmt.Sprintf("Pieces : %d", s.coins), core.ColorCoins)
	s.drawStatus(screen)

	if s.debug {
		s.drawDebug(screen)
		screen.DrawTextCenteredColor(screen.Height()-1, debugHint, core.ColorEditor)
		return
	}
	screen.DrawTextCenteredColor(screen.Height()-1, hubHint, core.ColorHint)
}

func (s *Session) drawPortal(screen *core.Screen, z Zone) {
	r := s.portalRect(z)

	c := core.ColorPortal
	switch {
	case s.debug && s.hub.drag == dragPortal && s.hub.dragZone == z:
		c = core.ColorEditor
	case z == s.hub.hover || z == s.hub.focus:
		c = core.ColorPortalLit
	case s.completed[z]:
		c = core.ColorPortalDone
	}

	if r.W >= 2 && r.H >= 2 {
		screen.DrawBoxColor(r, c)
	} else {
		screen.DrawRectColor(r, '#', c)
	}

	label := s.zoneLabel(z)
	if s.completed[z] {
		label += " ✓"
	}
	runes := []rune(label)
	if inner := r.W - 2; inner > 0 && len(runes) > inner {
		runes = runes[:inner]
	}
	x := r.X + (r.W-len(runes))/2
	_, cy := r.Center()
	screen.DrawTextColor(x, cy, string(runes), c)
}

// drawStatus draws the per-zone completion table in the top-right corner.
func (s *Session) drawStatus(screen *core.Screen) {
	const w = 26
	x := core.Max(0, screen.Width()-w-1)
	y := 1

	screen.DrawTextColor(x, y, "Etat des mini-jeux", core.ColorBrightWhite)
	y++
	screen.DrawTextColor(x, y, fmt.Sprintf("%-12s %s", "Pièce", "Statut"), core.ColorHint)
	for _, z := range Zones {
		y++
		status, c := "Non fait", core.ColorTodo
		if s.completed[z] {
			status, c = "Terminée", core.ColorPortalDone
		}
		screen.DrawText(x, y, fmt.Sprintf("%-12s", s.zoneLabel(z)))
		screen.DrawTextColor(x+13, y, status, c)
	}
}

func (s *Session) drawDebug(screen *core.Screen) {
	y := screen.Height() - 2 - len(Zones)
	screen.DrawTextColor(1, y, fmt.Sprintf("Mouse: %d, %d", s.hub.lastX, s.hub.lastY), core.ColorEditor)
	for _, z := range Zones {
		y++
		p := s.layout.Portal(z.Key())
		screen.DrawTextColor(1, y, fmt.Sprintf("%s: x=%.3f y=%.3f w=%.3f h=%.3f",
			s.zoneLabel(z), p.Left, p.Top, p.Width, p.Height), core.ColorMagenta)
	}
	screen.DrawBoxColor(s.bearRect(), core.ColorMagenta)
}
