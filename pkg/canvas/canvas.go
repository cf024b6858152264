package canvas

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rivo/uniseg"
)

// Draw errors. A failed draw leaves the canvas untouched; overflow during
// scene rasterisation indicates a layout bug in the caller, not bad input.
var (
	// ErrHorizontalOverflow means a row's grapheme count exceeds the space
	// remaining to the right of the draw origin.
	ErrHorizontalOverflow = errors.New("canvas: horizontal overflow")

	// ErrVerticalOverflow means the number of rows exceeds the space
	// remaining below the draw origin.
	ErrVerticalOverflow = errors.New("canvas: vertical overflow")
)

// Rect is an axis-aligned rectangle in cell coordinates.
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Right returns the exclusive right edge of the rectangle.
func (r Rect) Right() int {
	return r.Left + r.Width
}

// Bottom returns the exclusive bottom edge of the rectangle.
func (r Rect) Bottom() int {
	return r.Top + r.Height
}

// Contains reports whether other lies entirely within r.
func (r Rect) Contains(other Rect) bool {
	return other.Left >= r.Left && other.Right() <= r.Right() &&
		other.Top >= r.Top && other.Bottom() <= r.Bottom()
}

// String returns a human-readable representation of the Rect.
func (r Rect) String() string {
	return fmt.Sprintf("Rect[(%d, %d) %dx%d]", r.Left, r.Top, r.Width, r.Height)
}

// Canvas is a mutable grid of text cells, each holding one extended
// grapheme cluster. A freshly allocated canvas is filled with spaces.
type Canvas struct {
	bounds Rect
	cells  [][]string
}

// Surface is the drawing capability shared by Canvas and Region.
type Surface interface {
	// Bounds returns the drawable rectangle. For a Region the Left/Top are
	// parent-relative; drawing coordinates are always surface-relative.
	Bounds() Rect

	// Draw blits rows starting at the surface-relative origin (x, y).
	// Row i overwrites the cells starting at (x, y+i), one cell per
	// grapheme cluster. Draw validates the whole blit before writing:
	// on ErrHorizontalOverflow or ErrVerticalOverflow nothing is written.
	Draw(x, y int, rows []string) error
}

// New allocates a height x width canvas filled with spaces.
// It panics on negative or overflowing dimensions; sizing the canvas is
// the caller's responsibility and an absurd size is a programmer error.
func New(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("canvas: invalid size %dx%d", width, height))
	}
	if width > 0 && height > math.MaxInt/width {
		panic(fmt.Sprintf("canvas: size %dx%d overflows", width, height))
	}
	cells := make([][]string, height)
	for y := range cells {
		row := make([]string, width)
		for x := range row {
			row[x] = " "
		}
		cells[y] = row
	}
	return &Canvas{
		bounds: Rect{Left: 0, Top: 0, Width: width, Height: height},
		cells:  cells,
	}
}

// Bounds returns the full canvas rectangle.
func (c *Canvas) Bounds() Rect {
	return c.bounds
}

// Draw blits rows at (x, y). See Surface.Draw.
func (c *Canvas) Draw(x, y int, rows []string) error {
	return draw(c.bounds, c.cells, x, y, rows)
}

// Region returns a view of the rectangle [left, left+width) x
// [top, top+height) sharing the canvas storage. Draws through the region
// are rebased to its origin and bounded by its size. The requested
// rectangle must lie entirely within the canvas; a violation is a
// programmer error and panics.
func (c *Canvas) Region(left, top, width, height int) *Region {
	bounds := Rect{Left: left, Top: top, Width: width, Height: height}
	if width < 0 || height < 0 || !c.bounds.Contains(bounds) {
		panic(fmt.Sprintf("canvas: region %v outside canvas bounds %v", bounds, c.bounds))
	}
	return &Region{bounds: bounds, cells: c.cells}
}

// Content returns the canvas rows joined by a single newline, with no
// trailing newline. Every row contains exactly Width grapheme clusters.
func (c *Canvas) Content() string {
	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteString(cell)
		}
	}
	return sb.String()
}

// Region is a rectangular view into a parent canvas. It shares the parent
// storage; drawing through a region writes to the parent cells.
type Region struct {
	bounds Rect
	cells  [][]string
}

// Bounds returns the region rectangle in parent coordinates.
func (r *Region) Bounds() Rect {
	return r.bounds
}

// Draw blits rows at the region-relative origin (x, y). See Surface.Draw.
func (r *Region) Draw(x, y int, rows []string) error {
	return draw(r.bounds, r.cells, x, y, rows)
}

// draw validates a blit against bounds, then writes it cell by cell.
// Validation happens up front so a failed draw leaves cells untouched.
func draw(bounds Rect, cells [][]string, x, y int, rows []string) error {
	if x < 0 || y < 0 {
		panic(fmt.Sprintf("canvas: draw at negative origin (%d, %d)", x, y))
	}
	maxLen := 0
	for _, row := range rows {
		if n := uniseg.GraphemeClusterCount(row); n > maxLen {
			maxLen = n
		}
	}
	if maxLen > bounds.Width-x {
		return ErrHorizontalOverflow
	}
	if len(rows) > bounds.Height-y {
		return ErrVerticalOverflow
	}

	left := x + bounds.Left
	top := y + bounds.Top
	for i, row := range rows {
		gr := uniseg.NewGraphemes(row)
		for col := left; gr.Next(); col++ {
			cells[top+i][col] = gr.Str()
		}
	}
	return nil
}
