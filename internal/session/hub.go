package session

import (
	"github.com/vovakirdan/gros-nounours/internal/core"
	"github.com/vovakirdan/gros-nounours/internal/layout"
)

// dragTarget identifies what the layout editor is moving.
type dragTarget int

const (
	dragNone dragTarget = iota
	dragPortal
	dragBear
)

// hubState holds hub navigation and editor state. It is reset when the
// title screen is left.
type hubState struct {
	focus Zone
	hover Zone

	lastX, lastY int
	seenPointer  bool

	drag     dragTarget
	dragZone Zone
	dragOffX int
	dragOffY int
	edited   bool
}

func (h *hubState) reset() {
	h.focus = ZoneGarden
	h.hover = ZoneNone
	h.seenPointer = false
	h.stopDrag()
}

func (h *hubState) stopDrag() {
	h.drag = dragNone
	h.dragZone = ZoneNone
}

// portalRect returns the on-screen rectangle of a zone portal.
func (s *Session) portalRect(z Zone) core.Rect {
	return s.layout.Portal(z.Key()).Rect(s.runtime.ScreenW, s.runtime.ScreenH)
}

// bearRect returns the on-screen rectangle of the bear art.
func (s *Session) bearRect() core.Rect {
	return s.layout.Bear.Rect(bearWidth, bearHeight, s.runtime.ScreenW, s.runtime.ScreenH)
}

// zoneAt returns the topmost portal under a cell, or ZoneNone. Later
// portals are drawn on top, so they win.
func (s *Session) zoneAt(x, y int) Zone {
	for i := len(Zones) - 1; i >= 0; i-- {
		if s.portalRect(Zones[i]).Contains(x, y) {
			return Zones[i]
		}
	}
	return ZoneNone
}

// updateHub handles navigation, portal clicks and the layout editor.
func (s *Session) updateHub(in core.InputFrame) {
	p := in.Pointer
	moved := !s.hub.seenPointer || p.X != s.hub.lastX || p.Y != s.hub.lastY
	s.hub.lastX, s.hub.lastY = p.X, p.Y
	s.hub.seenPointer = true

	s.hub.hover = s.zoneAt(p.X, p.Y)
	if moved && s.hub.hover != ZoneNone {
		s.hub.focus = s.hub.hover
	}

	if s.debug {
		s.updateEditor(p)
		s.clampBear()
		return
	}
	s.clampBear()

	switch {
	case in.Has(core.ActionLeft), in.Has(core.ActionUp):
		s.hub.focus = stepZone(s.hub.focus, -1)
	case in.Has(core.ActionRight), in.Has(core.ActionDown):
		s.hub.focus = stepZone(s.hub.focus, 1)
	}

	if p.Pressed && s.hub.hover != ZoneNone {
		s.enterZone(s.hub.hover)
		return
	}
	if in.Has(core.ActionConfirm) {
		s.enterZone(s.hub.focus)
	}
}

// updateEditor runs the drag-and-drop layout editor.
func (s *Session) updateEditor(p core.Pointer) {
	sw, sh := s.runtime.ScreenW, s.runtime.ScreenH

	if p.Pressed {
		s.hub.stopDrag()
		if z := s.zoneAt(p.X, p.Y); z != ZoneNone {
			r := s.portalRect(z)
			s.hub.drag = dragPortal
			s.hub.dragZone = z
			s.hub.dragOffX, s.hub.dragOffY = p.X-r.X, p.Y-r.Y
		} else if r := s.bearRect(); r.Contains(p.X, p.Y) {
			s.hub.drag = dragBear
			s.hub.dragOffX, s.hub.dragOffY = p.X-r.X, p.Y-r.Y
		}
	}

	if s.hub.drag != dragNone && p.Down && !p.Pressed {
		left := float64(p.X-s.hub.dragOffX) / float64(sw)
		top := float64(p.Y-s.hub.dragOffY) / float64(sh)
		switch s.hub.drag {
		case dragPortal:
			key := s.hub.dragZone.Key()
			r := s.layout.Portal(key)
			if r.Left != left || r.Top != top {
				r.Left, r.Top = left, top
				s.layout.SetPortal(key, r)
				s.hub.edited = true
			}
		case dragBear:
			if s.layout.Bear.Left != left || s.layout.Bear.Top != top {
				s.layout.Bear.Left, s.layout.Bear.Top = left, top
				s.hub.edited = true
			}
		}
	}

	if p.Released || !p.Down {
		s.hub.stopDrag()
	}
}

// clampBear keeps the bear fully on screen for the current screen size.
func (s *Session) clampBear() {
	w := s.layout.Bear.WidthRatio(bearWidth, bearHeight, s.runtime.ScreenW, s.runtime.ScreenH)
	s.layout.Bear = s.layout.Bear.Clamp(w)
}

func stepZone(z Zone, d int) Zone {
	if !z.valid() {
		return ZoneGarden
	}
	n := len(Zones)
	return Zones[((int(z)+d)%n+n)%n]
}

// SetLayout replaces the hub layout, clamping every value.
func (s *Session) SetLayout(l layout.Layout) {
	clamped := layout.Layout{Bear: l.Bear}
	for _, key := range layout.PortalKeys {
		clamped.SetPortal(key, l.Portal(key))
	}
	s.layout = clamped
	s.clampBear()
}
