package core

import "testing"

func TestInputFrameEdgesAndHeld(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	f.Hold(ActionLeft)

	if !f.Has(ActionConfirm) {
		t.Error("Confirm should be triggered")
	}
	if f.Has(ActionLeft) {
		t.Error("held Left is not an edge event")
	}
	if !f.IsHeld(ActionLeft) {
		t.Error("Left should be held")
	}
	if !f.IsHeld(ActionConfirm) {
		t.Error("a pressed action also counts as held")
	}
}

func TestInputFrameAxis(t *testing.T) {
	tests := []struct {
		name string
		held []Action
		want float64
	}{
		{"none", nil, 0},
		{"left", []Action{ActionLeft}, -1},
		{"right", []Action{ActionRight}, 1},
		{"both", []Action{ActionLeft, ActionRight}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tt.held {
				f.Hold(a)
			}
			if got := f.Axis(ActionLeft, ActionRight); got != tt.want {
				t.Errorf("Axis() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestInputFrameClearKeepsPointerPosition(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)
	f.Pointer = Pointer{X: 4, Y: 7, Pressed: true, Down: true}

	f.Clear()

	if f.Has(ActionPause) {
		t.Error("Clear should drop actions")
	}
	if f.Pointer.Pressed {
		t.Error("Clear should drop pointer edges")
	}
	if f.Pointer.X != 4 || f.Pointer.Y != 7 || !f.Pointer.Down {
		t.Errorf("Clear should keep pointer position and level, got %+v", f.Pointer)
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	clone := f.Clone()
	clone.Set(ActionDown)

	if f.Has(ActionDown) {
		t.Error("modifying the clone should not affect the original")
	}
	if !clone.Has(ActionUp) {
		t.Error("clone should carry original actions")
	}
}

func TestActionString(t *testing.T) {
	if ActionDebug.String() != "Debug" {
		t.Errorf("ActionDebug.String() = %q", ActionDebug.String())
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
