package pousse

import "fmt"

// Tile is the content of one grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TileBox
	TileTarget
	TileBoxOnTarget
)

// hasBox reports whether the tile holds a box, on a target or not.
func (t Tile) hasBox() bool {
	return t == TileBox || t == TileBoxOnTarget
}

// free reports whether a box may be pushed onto the tile.
func (t Tile) free() bool {
	return t == TileEmpty || t == TileTarget
}

// defaultLevel is the single built-in 10x10 map.
// # wall, $ box, . target, * box on target, @ player start.
var defaultLevel = []string{
	"##########",
	"#@       #",
	"# ##   # #",
	"#  # $ # #",
	"#  #   # #",
	"#    #   #",
	"#    #  .#",
	"#        #",
	"#        #",
	"##########",
}

// Level is a parsed map template.
type Level struct {
	W, H           int
	Tiles          [][]Tile
	StartX, StartY int
}

// ParseLevel decodes a map. Rows must have equal length and exactly one
// player start on a non-wall cell.
func ParseLevel(rows []string) (Level, error) {
	if len(rows) == 0 {
		return Level{}, fmt.Errorf("pousse: empty level")
	}

	lvl := Level{W: len(rows[0]), H: len(rows), StartX: -1, StartY: -1}
	lvl.Tiles = make([][]Tile, lvl.H)
	for y, row := range rows {
		if len(row) != lvl.W {
			return Level{}, fmt.Errorf("pousse: row %d has width %d, expected %d", y, len(row), lvl.W)
		}
		lvl.Tiles[y] = make([]Tile, lvl.W)
		for x := 0; x < lvl.W; x++ {
			switch row[x] {
			case '#':
				lvl.Tiles[y][x] = TileWall
			case '$':
				lvl.Tiles[y][x] = TileBox
			case '.':
				lvl.Tiles[y][x] = TileTarget
			case '*':
				lvl.Tiles[y][x] = TileBoxOnTarget
			case ' ':
				lvl.Tiles[y][x] = TileEmpty
			case '@':
				if lvl.StartX >= 0 {
					return Level{}, fmt.Errorf("pousse: second player start at (%d,%d)", x, y)
				}
				lvl.StartX, lvl.StartY = x, y
			default:
				return Level{}, fmt.Errorf("pousse: unknown tile %q at (%d,%d)", row[x], x, y)
			}
		}
	}

	if lvl.StartX < 0 {
		return Level{}, fmt.Errorf("pousse: no player start")
	}
	return lvl, nil
}

// clone returns a deep copy of the template tiles.
func (l Level) clone() [][]Tile {
	return cloneTiles(l.Tiles)
}

func cloneTiles(tiles [][]Tile) [][]Tile {
	grid := make([][]Tile, len(tiles))
	for y := range tiles {
		grid[y] = append([]Tile(nil), tiles[y]...)
	}
	return grid
}

// MustParseLevel is ParseLevel for built-in maps.
func MustParseLevel(rows []string) Level {
	lvl, err := ParseLevel(rows)
	if err != nil {
		panic(err)
	}
	return lvl
}
