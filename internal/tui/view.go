// internal/tui/view.go
package tui

import (
	"github.com/bethropolis/worldedit/internal/theme"
	"github.com/bethropolis/worldedit/internal/types"
	"github.com/bethropolis/worldedit/internal/world"
	"github.com/chewxy/math32"
	"github.com/gdamore/tcell/v2"
)

const (
	minScale = 0.125
	maxScale = 64
	// Terminal cells are roughly twice as tall as wide, so one world unit
	// spans two columns for every row.
	cellAspect = 2
)

var pointGlyphs = map[world.Kind]rune{
	world.KindMarker:    'M',
	world.KindLight:     '*',
	world.KindTree:      'T',
	world.KindParticles: '%',
}

// View is a top-down projection of the XZ plane onto the terminal grid.
// Columns grow with X and rows grow with Z.
type View struct {
	center types.Vec3
	cursor types.Vec3
	// scale is world units per row.
	scale float32
}

// NewView creates a view centred on the origin.
func NewView(scale float32) *View {
	if scale <= 0 {
		scale = 1
	}
	return &View{scale: scale}
}

// Cursor is the world position under the keyboard cursor.
func (v *View) Cursor() types.Vec3 { return v.cursor }

// SetCursor moves the cursor to pos, ignoring height.
func (v *View) SetCursor(pos types.Vec3) {
	v.cursor = types.NewVec3(pos.X, 0, pos.Z)
}

// Scale is world units per row.
func (v *View) Scale() float32 { return v.scale }

// MoveCursor moves the cursor by a number of cells.
func (v *View) MoveCursor(dcol, drow int) {
	v.cursor.X += float32(dcol) * v.scale / cellAspect
	v.cursor.Z += float32(drow) * v.scale
}

// Zoom multiplies the scale by factor within fixed limits.
func (v *View) Zoom(factor float32) {
	v.scale = math32.Max(minScale, math32.Min(maxScale, v.scale*factor))
}

// CenterOnCursor scrolls so the cursor is in the middle of the view.
func (v *View) CenterOnCursor() { v.center = v.cursor }

// Follow scrolls the view just enough to keep the cursor visible.
func (v *View) Follow(width, height int) {
	col, row := v.WorldToCell(v.cursor, width, height)
	if col < 0 || col >= width {
		v.center.X = v.cursor.X
	}
	if row < 0 || row >= height {
		v.center.Z = v.cursor.Z
	}
}

// CellToWorld maps the centre of a cell to its ground-plane position.
func (v *View) CellToWorld(col, row, width, height int) types.Vec3 {
	x := v.center.X + float32(col-width/2)*v.scale/cellAspect
	z := v.center.Z + float32(row-height/2)*v.scale
	return types.NewVec3(x, 0, z)
}

// WorldToCell maps a world position to the cell containing it. The result
// may lie outside the view.
func (v *View) WorldToCell(p types.Vec3, width, height int) (col, row int) {
	col = width/2 + int(math32.Round((p.X-v.center.X)*cellAspect/v.scale))
	row = height/2 + int(math32.Round((p.Z-v.center.Z)/v.scale))
	return col, row
}

// Preview is an in-progress placement drawn over the scene.
type Preview struct {
	Points []types.Vec3
	Closed bool
}

// Draw renders the scene into the top height rows of the screen.
func (v *View) Draw(screen tcell.Screen, width, height int, w *world.World, th *theme.Theme, preview *Preview) {
	if width <= 0 || height <= 0 {
		return
	}
	def := th.GetStyle("Default")
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			screen.SetContent(x, y, ' ', nil, def)
		}
	}
	v.drawGrid(screen, width, height, th)

	for _, c := range w.Collections() {
		if !c.Loaded() {
			continue
		}
		for _, obj := range c.Objects() {
			v.drawObject(screen, width, height, obj, th)
		}
	}

	if preview != nil && len(preview.Points) > 0 {
		style := th.GetStyle("Placement")
		v.drawPolyline(screen, width, height, preview.Points, preview.Closed, '.', style)
		pointStyle := th.GetStyle("Placement.point")
		for _, p := range preview.Points {
			col, row := v.WorldToCell(p, width, height)
			setCell(screen, width, height, col, row, 'o', pointStyle)
		}
	}

	col, row := v.WorldToCell(v.cursor, width, height)
	setCell(screen, width, height, col, row, '+', th.GetStyle("Cursor"))
}

func (v *View) drawGrid(screen tcell.Screen, width, height int, th *theme.Theme) {
	gridStyle := th.GetStyle("Grid")
	axisStyle := th.GetStyle("Axis")
	// One grid dot every 10 world units, or coarser when zoomed out.
	step := float32(10)
	for step/v.scale < 4 {
		step *= 10
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			p := v.CellToWorld(col, row, width, height)
			onX := onLine(p.X, step, v.scale/cellAspect)
			onZ := onLine(p.Z, step, v.scale)
			axisX := math32.Abs(p.X) < v.scale/cellAspect/2
			axisZ := math32.Abs(p.Z) < v.scale/2
			switch {
			case axisX && axisZ:
				screen.SetContent(col, row, '┼', nil, axisStyle)
			case axisX:
				screen.SetContent(col, row, '│', nil, axisStyle)
			case axisZ:
				screen.SetContent(col, row, '─', nil, axisStyle)
			case onX && onZ:
				screen.SetContent(col, row, '·', nil, gridStyle)
			}
		}
	}
}

// onLine reports whether a cell of size cell starting at value contains a multiple of step.
func onLine(value, step, cell float32) bool {
	m := math32.Mod(value, step)
	if m < 0 {
		m += step
	}
	return m < cell/2 || step-m <= cell/2
}

func (v *View) drawObject(screen tcell.Screen, width, height int, obj world.Object, th *theme.Theme) {
	style := th.GetStyle("Object." + string(obj.Kind()))
	if obj.Selected() {
		style = style.Reverse(true)
	}
	switch o := obj.(type) {
	case world.PointList:
		glyph := '#'
		if !o.Closed() {
			glyph = '='
		}
		v.drawPolyline(screen, width, height, o.Points(), o.Closed(), glyph, style)
	case world.Positioned:
		glyph, ok := pointGlyphs[obj.Kind()]
		if !ok {
			glyph = '?'
		}
		col, row := v.WorldToCell(o.Position(), width, height)
		setCell(screen, width, height, col, row, glyph, style)
	}
}

func (v *View) drawPolyline(screen tcell.Screen, width, height int, points []types.Vec3, closed bool, glyph rune, style tcell.Style) {
	if len(points) == 1 {
		col, row := v.WorldToCell(points[0], width, height)
		setCell(screen, width, height, col, row, glyph, style)
		return
	}
	n := len(points)
	segments := n - 1
	if closed && n > 2 {
		segments = n
	}
	for i := 0; i < segments; i++ {
		c0, r0 := v.WorldToCell(points[i], width, height)
		c1, r1 := v.WorldToCell(points[(i+1)%n], width, height)
		drawLine(screen, width, height, c0, r0, c1, r1, glyph, style)
	}
}

// drawLine rasterises a segment with Bresenham's algorithm, clipped to the view.
func drawLine(screen tcell.Screen, width, height, x0, y0, x1, y1 int, glyph rune, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		setCell(screen, width, height, x0, y0, glyph, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func setCell(screen tcell.Screen, width, height, col, row int, r rune, style tcell.Style) {
	if col < 0 || row < 0 || col >= width || row >= height {
		return
	}
	screen.SetContent(col, row, r, nil, style)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
