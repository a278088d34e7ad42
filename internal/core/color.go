package core

// Color is the foreground color of a screen cell.
// Values map to ANSI 256-color codes in the terminal renderer.
type Color uint8

// Base colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	// ColorCount is the number of base colors; not a color itself.
	ColorCount
)

// Hub palette.
const (
	ColorBear       = ColorOrange
	ColorCoins      = ColorBrightYellow
	ColorPortal     = ColorWhite
	ColorPortalLit  = ColorBrightYellow // Focused or hovered
	ColorPortalDone = ColorGreen
	ColorTodo       = ColorRed
	ColorEditor     = ColorBrightMagenta // Debug overlay and dragged items
	ColorHint       = ColorGray
)
