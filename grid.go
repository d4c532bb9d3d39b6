package xwfill

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"crosswarped.com/xwfill/pkg/puzzle"
)

const blockedCell = '█'

// Grid is a 2D grid of runes.
//
// It represents a rendered fill: letters in fillable cells, blockedCell in
// blocked ones, and spaces where no assigned slot covers the cell.
type Grid struct {
	grid [][]rune
}

// LetterGrid renders an assignment onto the puzzle's structure. The
// assignment may be partial; uncovered fillable cells stay blank.
func LetterGrid(p *puzzle.Puzzle, a Assignment) Grid {
	g := make([][]rune, p.Height)
	for row := range p.Height {
		g[row] = make([]rune, p.Width)
		for col := range p.Width {
			if p.Fillable(row, col) {
				g[row][col] = ' '
			} else {
				g[row][col] = blockedCell
			}
		}
	}

	for slot, word := range a {
		for k, r := range word {
			row, col := slot.Cell(k)
			g[row][col] = r
		}
	}

	return Grid{grid: g}
}

func (g Grid) Width() int {
	return len(g.grid[0])
}

func (g Grid) Height() int {
	return len(g.grid)
}

func (g Grid) Get(x, y int) rune {
	return g.grid[y][x]
}

func (g Grid) Repr() string {
	lines := make([]string, g.Height())
	for y := range g.Height() {
		lines[y] = string(g.grid[y])
	}
	return strings.Join(lines, "\n")
}

func (g Grid) DebugString() string {
	return fmt.Sprintf("Grid{width: %d, height: %d, grid: %v}", g.Width(), g.Height(), g.grid)
}

// SavePNG writes the grid as an image: white cells with black borders for
// fillable squares, black for blocked ones, letters centered.
func (g Grid) SavePNG(path string) error {
	const (
		cellSize   = 100
		cellBorder = 2
	)

	img := image.NewRGBA(image.Rect(0, 0, g.Width()*cellSize, g.Height()*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for y := range g.Height() {
		for x := range g.Width() {
			r := g.Get(x, y)
			if r == blockedCell {
				continue
			}

			cell := image.Rect(
				x*cellSize+cellBorder, y*cellSize+cellBorder,
				(x+1)*cellSize-cellBorder, (y+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.NewUniform(color.White), image.Point{}, draw.Src)

			if r == ' ' {
				continue
			}

			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(color.Black),
				Face: face,
			}
			s := string(r)
			width := d.MeasureString(s)
			d.Dot = fixed.Point26_6{
				X: fixed.I(x*cellSize+cellSize/2) - width/2,
				Y: fixed.I(y*cellSize+cellSize/2) + fixed.I(face.Height/2),
			}
			d.DrawString(s)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("png.Encode: %w", err)
	}
	return nil
}
