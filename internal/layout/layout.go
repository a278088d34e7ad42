// Package layout stores the hub geometry edited in debug mode: one
// rectangle per zone portal and the bear placement, all as ratios of the
// screen size. The file format is line-oriented key=value:
//
//	portal_jardin=0.06500,0.25000,0.11000,0.30000
//	bear=0.02100,0.11300,0.85000
package layout

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vovakirdan/gros-nounours/internal/core"
)

// PortalKeys lists the portal names in file and drawing order.
var PortalKeys = []string{"jardin", "chambre", "grenier", "cuisine"}

// Ratio is a rectangle expressed as fractions of the screen size.
type Ratio struct {
	Left, Top, Width, Height float64
}

// Clamp keeps the rectangle on screen with a minimum size.
func (r Ratio) Clamp() Ratio {
	r.Width = core.ClampF(r.Width, 0.02, 1)
	r.Height = core.ClampF(r.Height, 0.02, 1)
	r.Left = core.ClampF(r.Left, 0, 1-r.Width)
	r.Top = core.ClampF(r.Top, 0, 1-r.Height)
	return r
}

// Rect converts the ratios to cells for a screen of sw x sh.
func (r Ratio) Rect(sw, sh int) core.Rect {
	return core.NewRect(
		round(r.Left*float64(sw)),
		round(r.Top*float64(sh)),
		core.Max(1, round(r.Width*float64(sw))),
		core.Max(1, round(r.Height*float64(sh))),
	)
}

// Bear places the bear art. Its width follows from the art's aspect.
type Bear struct {
	Left, Top, HeightRatio float64
}

// Clamp keeps the bear on screen given its width as a screen ratio.
func (b Bear) Clamp(widthRatio float64) Bear {
	widthRatio = core.ClampF(widthRatio, 0, 0.99)
	b.HeightRatio = core.ClampF(b.HeightRatio, 0.1, 1)
	b.Left = core.ClampF(b.Left, 0, 1-widthRatio)
	b.Top = core.ClampF(b.Top, 0, 1-b.HeightRatio)
	return b
}

// WidthRatio returns the bear width as a share of the screen width for art
// of artW x artH cells drawn on a sw x sh screen.
func (b Bear) WidthRatio(artW, artH, sw, sh int) float64 {
	if artW <= 0 || artH <= 0 || sw <= 0 || sh <= 0 {
		return 0.2
	}
	aspect := float64(artW) / float64(artH)
	return b.HeightRatio * aspect * float64(sh) / float64(sw)
}

// Rect converts the bear placement to cells.
func (b Bear) Rect(artW, artH, sw, sh int) core.Rect {
	h := core.Max(1, round(b.HeightRatio*float64(sh)))
	w := core.Max(1, round(b.WidthRatio(artW, artH, sw, sh)*float64(sw)))
	return core.NewRect(round(b.Left*float64(sw)), round(b.Top*float64(sh)), w, h)
}

// Layout is the full hub layout.
type Layout struct {
	Portals map[string]Ratio
	Bear    Bear
}

// Default returns the built-in layout.
func Default() Layout {
	return Layout{
		Portals: map[string]Ratio{
			"jardin":  {Left: 0.065, Top: 0.25, Width: 0.11, Height: 0.30},
			"chambre": {Left: 0.225, Top: 0.25, Width: 0.11, Height: 0.30},
			"grenier": {Left: 0.395, Top: 0.25, Width: 0.11, Height: 0.30},
			"cuisine": {Left: 0.565, Top: 0.25, Width: 0.11, Height: 0.30},
		},
		Bear: Bear{Left: 0.021, Top: 0.113, HeightRatio: 0.85},
	}
}

// Portal returns the ratios for a portal key, falling back to the default.
func (l Layout) Portal(key string) Ratio {
	if r, ok := l.Portals[key]; ok {
		return r
	}
	return Default().Portals[key]
}

// SetPortal stores clamped ratios for a portal.
func (l *Layout) SetPortal(key string, r Ratio) {
	if l.Portals == nil {
		l.Portals = make(map[string]Ratio)
	}
	l.Portals[key] = r.Clamp()
}

// Load reads a layout file. A missing file yields the default layout.
func Load(path string) (Layout, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("layout: cannot open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	l, err := Parse(f)
	if err != nil {
		return l, fmt.Errorf("layout: cannot read %s: %w", path, err)
	}
	return l, nil
}

// Parse reads layout lines on top of the default layout.
// Unknown keys and malformed lines are skipped.
func Parse(r io.Reader) (Layout, error) {
	l := Default()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		nums, ok := parseFloats(value)
		if !ok {
			continue
		}

		switch {
		case strings.HasPrefix(key, "portal_"):
			name := strings.TrimPrefix(key, "portal_")
			if _, known := l.Portals[name]; !known || len(nums) != 4 {
				continue
			}
			l.Portals[name] = Ratio{Left: nums[0], Top: nums[1], Width: nums[2], Height: nums[3]}.Clamp()
		case key == "bear":
			if len(nums) != 3 {
				continue
			}
			l.Bear = Bear{Left: nums[0], Top: nums[1], HeightRatio: nums[2]}.Clamp(0)
		}
	}
	return l, sc.Err()
}

// Write emits the layout in file format.
func (l Layout) Write(w io.Writer) error {
	for _, key := range PortalKeys {
		r := l.Portal(key)
		if _, err := fmt.Fprintf(w, "portal_%s=%.5f,%.5f,%.5f,%.5f\n", key, r.Left, r.Top, r.Width, r.Height); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "bear=%.5f,%.5f,%.5f\n", l.Bear.Left, l.Bear.Top, l.Bear.HeightRatio)
	return err
}

// Save writes the layout to path, creating the parent directory.
func (l Layout) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("layout: cannot create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("layout: cannot create %s: %w", path, err)
	}
	if err := l.Write(f); err != nil {
		f.Close() //nolint:errcheck
		return fmt.Errorf("layout: cannot write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("layout: cannot write %s: %w", path, err)
	}
	return nil
}

func parseFloats(s string) ([]float64, bool) {
	parts := strings.Split(s, ",")
	nums := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
		nums = append(nums, v)
	}
	return nums, true
}

func round(v float64) int {
	return int(math.Round(v))
}
