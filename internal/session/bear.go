package session

import (
	"unicode/utf8"

	"github.com/vovakirdan/gros-nounours/internal/core"
)

// bearArt is the hub mascot. Rows are padded to the same width.
var bearArt = padArt([]string{
	`   .--.      .--.   `,
	`  ( (  '-..-'  ) )  `,
	`   '.  o    o  .'   `,
	`    |    __    |    `,
	`    |   (__)   |    `,
	`   .'.  \__/  .'.   `,
	`  /   '------'   \  `,
	` |    (      )    | `,
	`  \    '----'    /  `,
	`   '--'      '--'   `,
})

var (
	bearWidth  = artWidth(bearArt)
	bearHeight = len(bearArt)
)

func padArt(rows []string) [][]rune {
	w := 0
	for _, r := range rows {
		w = core.Max(w, utf8.RuneCountInString(r))
	}
	out := make([][]rune, len(rows))
	for i, r := range rows {
		line := []rune(r)
		for len(line) < w {
			line = append(line, ' ')
		}
		out[i] = line
	}
	return out
}

func artWidth(art [][]rune) int {
	if len(art) == 0 {
		return 0
	}
	return len(art[0])
}

// drawBear scales the art into dst with nearest-neighbour sampling.
func drawBear(screen *core.Screen, dst core.Rect, c core.Color) {
	if dst.W <= 0 || dst.H <= 0 || bearWidth == 0 {
		return
	}
	for y := 0; y < dst.H; y++ {
		row := bearArt[y*bearHeight/dst.H]
		for x := 0; x < dst.W; x++ {
			r := row[x*bearWidth/dst.W]
			if r != ' ' {
				screen.SetColored(dst.X+x, dst.Y+y, r, c)
			}
		}
	}
}
