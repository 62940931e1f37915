package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"survivors-lab/internal/world"
)

type cell struct {
	r     rune
	color string // lipgloss colour, "" for the terminal default
}

var blank = cell{r: ' '}

// Screen is a terminal world.Renderer: commands are rasterised into a grid of
// coloured cells. Camera space maps onto the grid the same way it maps onto
// pixels.
type Screen struct {
	width, height int
	cells         [][]cell
}

func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

func (s *Screen) Width() int  { return s.width }
func (s *Screen) Height() int { return s.height }

func (s *Screen) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == s.width && height == s.height && s.cells != nil {
		return
	}
	s.width, s.height = width, height
	s.cells = make([][]cell, height)
	for y := range s.cells {
		s.cells[y] = make([]cell, width)
	}
	s.clear()
}

func (s *Screen) clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Cell returns the rune at column x, row y.
func (s *Screen) Cell(x, y int) rune {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.cells[y][x].r
}

func (s *Screen) BeginFrame() { s.clear() }

func (s *Screen) EndFrame() error { return nil }

func (s *Screen) Submit(cmd world.DrawCommand) {
	x0, y0, x1, y1 := s.span(cmd)
	color := hexColor(cmd.Tint)

	switch {
	case cmd.Kind == world.DrawRect:
		s.fill(x0, y0, x1, y1, cell{r: '█', color: color})
	case cmd.Kind == world.DrawCircle:
		s.fill(x0, y0, x1, y1, cell{r: '•', color: color})
	case cmd.Sheet == world.SheetBackground:
		s.grid(cmd, x0, y0, x1, y1)
	case cmd.Sheet == world.SheetDigits:
		mx, my := (x0+x1)/2, (y0+y1)/2
		s.fill(mx, my, mx+1, my+1, cell{r: rune('0' + cmd.Frame%10), color: color})
	default:
		s.fill(x0, y0, x1, y1, cell{r: spriteRune(cmd.Sheet), color: spriteColor(cmd)})
	}
}

// span returns the cells covered by cmd, at least one cell.
func (s *Screen) span(cmd world.DrawCommand) (x0, y0, x1, y1 int) {
	w, h := float64(s.width), float64(s.height)
	cx := (float64(cmd.Pos.X) + 1) / 2 * w
	cy := (1 - float64(cmd.Pos.Y)) / 2 * h
	hw := math.Abs(float64(cmd.Scale.X)) * w / 4
	hh := math.Abs(float64(cmd.Scale.Y)) * h / 4

	x0 = int(math.Round(cx - hw))
	x1 = int(math.Round(cx + hw))
	y0 = int(math.Round(cy - hh))
	y1 = int(math.Round(cy + hh))
	if x1 <= x0 {
		x0 = int(math.Floor(cx))
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y0 = int(math.Floor(cy))
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

func (s *Screen) fill(x0, y0, x1, y1 int, c cell) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, s.width), min(y1, s.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.cells[y][x] = c
		}
	}
}

// grid marks the tile corners of a tiled background, so the floor appears to
// move under the player.
func (s *Screen) grid(cmd world.DrawCommand, x0, y0, x1, y1 int) {
	if cmd.UV.ScaleX <= 0 || cmd.UV.ScaleY <= 0 {
		return
	}
	dot := cell{r: '·', color: "#3A3A44"}
	cols, rows := float64(x1-x0), float64(y1-y0)
	const marks = 4 // dots per tile edge

	prevU := -1
	for x := x0; x < x1; x++ {
		u := int(math.Floor((float64(cmd.UV.OffsetX) + float64(x-x0)/cols*float64(cmd.UV.ScaleX)) * marks))
		if u == prevU {
			continue
		}
		prevU = u
		prevV := -1
		for y := y0; y < y1; y++ {
			v := int(math.Floor((float64(cmd.UV.OffsetY) + float64(y-y0)/rows*float64(cmd.UV.ScaleY)) * marks))
			if v == prevV {
				continue
			}
			prevV = v
			if x >= 0 && y >= 0 && x < s.width && y < s.height {
				s.cells[y][x] = dot
			}
		}
	}
}

func spriteRune(id world.SheetID) rune {
	switch id {
	case world.SheetPlayer:
		return '@'
	case world.SheetEnemy:
		return 'x'
	case world.SheetGem:
		return '◆'
	default:
		return '#'
	}
}

var sheetColors = map[world.SheetID]world.RGBA{
	world.SheetPlayer: {0.3, 0.85, 0.5, 1},
	world.SheetEnemy:  {0.9, 0.3, 0.3, 1},
}

// spriteColor keeps the sheet's look and lets a non-white tint win.
func spriteColor(cmd world.DrawCommand) string {
	if cmd.Tint != world.White {
		return hexColor(cmd.Tint)
	}
	if c, ok := sheetColors[cmd.Sheet]; ok {
		return hexColor(c)
	}
	return hexColor(cmd.Tint)
}

func hexColor(c world.RGBA) string {
	to8 := func(f float32) int {
		return int(math.Round(float64(max(0, min(1, f)) * 255)))
	}
	return fmt.Sprintf("#%02X%02X%02X", to8(c.R), to8(c.G), to8(c.B))
}

// String renders the grid, grouping runs of one colour into one style.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height*2 + s.height)

	for y := range s.height {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.width {
			start := s.cells[y][x].color

			var run strings.Builder
			for x < s.width && s.cells[y][x].color == start {
				run.WriteRune(s.cells[y][x].r)
				x++
			}

			if start == "" {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(start)).Render(run.String()))
		}
	}
	return sb.String()
}
