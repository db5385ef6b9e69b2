package hop

import (
	"fmt"
	"math"

	"github.com/vovakirdan/mattress-hop/internal/core"
)

// Minimum terminal size that still shows the bed row and the character.
const (
	MinCols = 40
	MinRows = 12
)

// Restart button minimum cell size: label plus borders.
const (
	buttonLabel   = "Restart"
	buttonMinCols = len(buttonLabel) + 4
	buttonMinRows = 3
)

// viewport maps world units onto a terminal cell grid.
type viewport struct {
	cols, rows int
	sx, sy     float64 // cells per world unit
}

func newViewport(cols, rows int, worldW, worldH float64) viewport {
	return viewport{
		cols: cols,
		rows: rows,
		sx:   float64(cols) / worldW,
		sy:   float64(rows) / worldH,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// worldX returns the world x at the center of a cell column.
func (v viewport) worldX(col int) float64 {
	return (float64(col) + 0.5) / v.sx
}

func (v viewport) worldY(row int) float64 {
	return (float64(row) + 0.5) / v.sy
}

// cells converts a world rectangle to the cells it covers. Any non-empty
// rectangle covers at least one cell.
func (v viewport) cells(r core.RectF) core.Rect {
	x0, y0 := v.col(r.X), v.row(r.Y)
	x1, y1 := v.col(r.Right()), v.row(r.Bottom())
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// buttonCells returns the cell rectangle of the restart button, grown to fit
// its label. Rendering and click hit-testing share it.
func (v viewport) buttonCells(button core.RectF) core.Rect {
	r := v.cells(button)
	if r.W < buttonMinCols {
		r.X -= (buttonMinCols - r.W) / 2
		r.W = buttonMinCols
	}
	if r.H < buttonMinRows {
		r.Y -= (buttonMinRows - r.H) / 2
		r.H = buttonMinRows
	}
	return r
}

// Render draws the current round into dst, scaled to fill it.
func (r *Round) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinCols || dst.Height() < MinRows {
		renderTooSmall(dst)
		return
	}

	snap := r.Snapshot()
	vp := newViewport(dst.Width(), dst.Height(), snap.WorldW, snap.WorldH)

	renderRoom(dst, vp, snap)
	for _, b := range snap.Beds {
		renderBed(dst, vp, snap, b)
	}
	renderCharacter(dst, vp, snap.Character)

	switch snap.Phase {
	case PhaseIdle:
		renderTitle(dst)
	case PhaseRunning:
		dst.DrawTextCentered(0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)
	case PhaseGameOver:
		renderGameOver(dst, vp, snap)
	}
}

// ClickCell handles a mouse click at a terminal cell on a cols×rows screen.
// A click on the restart button during game over restarts the round.
func (r *Round) ClickCell(col, row, cols, rows int) bool {
	if r.phase != PhaseGameOver || cols < MinCols || rows < MinRows {
		return false
	}
	vp := newViewport(cols, rows, r.cfg.World.Width, r.cfg.World.Height)
	if !vp.buttonCells(r.restartButton()).Contains(col, row) {
		return false
	}
	return r.Restart()
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinCols, MinRows), core.ColorGray)
}

// renderRoom draws the bedroom behind the beds: floor band and rug, a night
// window, wall clock, picture frame, bookshelf and a dresser with a lamp.
func renderRoom(dst *core.Screen, vp viewport, snap Snapshot) {
	floorRow := vp.row(snap.FloorY)
	for y := floorRow; y < vp.rows; y++ {
		dst.DrawHLine(0, y, vp.cols, '▓', core.ColorWood)
	}
	dst.DrawHLine(0, floorRow, vp.cols, '▀', core.ColorBrown)

	rug := vp.cells(core.RectF{X: 400, Y: snap.WorldH - 46, W: 400, H: 12})
	dst.DrawHLine(rug.X, core.Max(rug.Y, floorRow+1), rug.W, '═', core.ColorMagenta)

	renderWindow(dst, vp, snap)
	renderClock(dst, vp, snap)

	frame := vp.cells(core.RectF{X: snap.WorldW - 280, Y: 50, W: 140, H: 110})
	dst.DrawBox(frame, core.ColorWood)
	inner := core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2)
	dst.DrawRect(inner, '░', core.ColorDarkGray)
	if inner.H > 1 {
		dst.DrawHLine(inner.X, inner.Bottom()-1, inner.W, '▄', core.ColorGreen)
	}

	renderBookshelf(dst, vp, snap)
	renderDresser(dst, vp, snap)
}

// fillWorld fills the cells covered by a world rectangle.
func fillWorld(dst *core.Screen, vp viewport, r core.RectF, ch rune, c core.Color) {
	dst.DrawRect(vp.cells(r), ch, c)
}

// renderWindow draws a curtained window on the upper wall with a crescent
// moon and a few stars.
func renderWindow(dst *core.Screen, vp viewport, snap Snapshot) {
	const winW, winH = 160, 140
	x := math.Floor(snap.WorldW/2 - winW/2)
	y := math.Floor(snap.WorldH * 0.18)

	fillWorld(dst, vp, core.RectF{X: x - 20, Y: y - 6, W: winW + 40, H: 8}, '▬', core.ColorDarkBrown)
	pane := vp.cells(core.RectF{X: x, Y: y, W: winW, H: winH})
	dst.DrawBox(pane, core.ColorBlue)
	if pane.W > 2 {
		dst.DrawVLine(pane.X+pane.W/2, pane.Y+1, pane.H-2, '│', core.ColorBlue)
	}
	fillWorld(dst, vp, core.RectF{X: x - 20, Y: y + 2, W: 18, H: winH + 8}, '▒', core.ColorDarkBrown)
	fillWorld(dst, vp, core.RectF{X: x + winW + 2, Y: y + 2, W: 18, H: winH + 8}, '▒', core.ColorDarkBrown)

	moon := vp.cells(core.RectF{X: x + math.Floor(winW*0.55), Y: y + 14, W: 20, H: 20})
	dst.SetColored(moon.X, moon.Y+1, '☾', core.ColorBrightYellow)

	stars := [...]core.Vec{{X: 18, Y: 28}, {X: 44, Y: 18}, {X: 22, Y: 54}, {X: 86, Y: 64}, {X: 108, Y: 78}}
	for _, st := range stars {
		col, row := vp.col(x+st.X), vp.row(y+st.Y)
		if dst.Get(col, row) == ' ' {
			dst.SetColored(col, row, '·', core.ColorCyan)
		}
	}
}

// renderClock draws a pendulum clock on the left wall.
func renderClock(dst *core.Screen, vp viewport, snap Snapshot) {
	x, y := 60.0, math.Floor(snap.WorldH/2)-80
	body := vp.cells(core.RectF{X: x, Y: y, W: 60, H: 60})
	dst.DrawBox(body, core.ColorBrown)
	center := vp.cells(core.RectF{X: x + 28, Y: y + 28, W: 4, H: 4})
	dst.SetColored(center.X, center.Y, '┘', core.ColorCream)
	pendulum := vp.cells(core.RectF{X: x + 26, Y: y + 60, W: 8, H: 40})
	dst.DrawVLine(pendulum.X, body.Bottom(), core.Max(1, pendulum.Bottom()-body.Bottom()), '│', core.ColorBrown)
	dst.SetColored(pendulum.X, core.Max(pendulum.Bottom(), body.Bottom()), '●', core.ColorYellow)
}

// bookColors cycles across the books on the shelf.
var bookColors = [...]core.Color{
	core.ColorBrightRed,
	core.ColorBlue,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorOrange,
}

// renderBookshelf draws a three-shelf bookcase standing on the floor at the
// right edge. The upper two shelves hold books.
func renderBookshelf(dst *core.Screen, vp viewport, snap Snapshot) {
	const shelfW, shelfH = 200, 160
	x := math.Max(30, snap.WorldW-shelfW-40)
	y := snap.FloorY - shelfH

	dst.DrawBox(vp.cells(core.RectF{X: x, Y: y, W: shelfW, H: shelfH}), core.ColorBrown)
	for _, dy := range []float64{56, 112} {
		fillWorld(dst, vp, core.RectF{X: x, Y: y + dy, W: shelfW, H: 6}, '─', core.ColorBrown)
	}

	bx := x + 6
	for i, c := range bookColors {
		bw := float64(14 + (i%3)*4)
		by := y + 12
		if i >= 4 {
			by = y + 70
		}
		fillWorld(dst, vp, core.RectF{X: bx, Y: by, W: bw, H: 46}, '▐', c)
		bx += bw + 6
	}
}

// renderDresser draws a three-drawer dresser on the left with a lit lamp
// standing on it.
func renderDresser(dst *core.Screen, vp viewport, snap Snapshot) {
	const drX, drW, drH = 40, 120, 120
	y := snap.FloorY - drH

	body := vp.cells(core.RectF{X: drX, Y: y, W: drW, H: drH})
	dst.DrawRect(body, '▒', core.ColorWood)
	for _, dy := range []float64{20, 56, 92} {
		knob := vp.cells(core.RectF{X: drX + drW/2 - 6, Y: y + dy, W: 12, H: 8})
		dst.SetColored(knob.X, knob.Y, '○', core.ColorYellow)
	}

	mid := float64(drX + drW/2)
	fillWorld(dst, vp, core.RectF{X: mid - 4, Y: y - 16, W: 8, H: 16}, '│', core.ColorDarkBrown)
	fillWorld(dst, vp, core.RectF{X: mid - 22, Y: y - 40, W: 44, H: 26}, '▲', core.ColorOrange)
	glow := vp.cells(core.RectF{X: mid - 16, Y: y - 36, W: 32, H: 18})
	dst.SetColored(glow.X+glow.W/2, glow.Y, '✦', core.ColorBrightYellow)
}

// bedShade picks the fill rune for a bed at the given opacity.
func bedShade(alpha float64) rune {
	switch {
	case alpha >= 0.75:
		return '█'
	case alpha >= 0.5:
		return '▓'
	case alpha >= 0.25:
		return '▒'
	default:
		return '░'
	}
}

// renderBed draws legs, headboard, blanket and pillow. Removed beds fade
// through lighter shades in gray and disappear at alpha 0.
func renderBed(dst *core.Screen, vp viewport, snap Snapshot, b BedView) {
	if !b.Visible() {
		return
	}

	shade := bedShade(b.Alpha)
	blanket, pillow, wood := core.ColorRed, core.ColorCream, core.ColorDarkBrown
	if !b.Active {
		blanket, pillow, wood = core.ColorGray, core.ColorGray, core.ColorDarkGray
	}

	body := vp.cells(b.Rect())
	floorRow := vp.row(snap.FloorY)

	// Legs under both ends, down to the floor.
	for y := body.Bottom(); y < floorRow; y++ {
		dst.SetColored(body.X+1, y, shade, wood)
		dst.SetColored(body.Right()-2, y, shade, wood)
	}

	dst.DrawRect(body, shade, blanket)

	// Headboard on the left rises one row above the mattress.
	dst.DrawVLine(body.X, body.Y-1, body.H+1, shade, wood)
	dst.SetColored(body.Right()-1, body.Y, shade, wood)

	pw := core.Max(2, body.W/5)
	dst.DrawHLine(body.Right()-1-pw, body.Y, pw, shade, pillow)
}

// renderCharacter samples the sprite nearest-neighbour into the cells
// covered by the character. Tilt shears the sampling around the center.
func renderCharacter(dst *core.Screen, vp viewport, c CharacterView) {
	bounds := c.Rect()
	box := vp.cells(bounds)
	left, top := bounds.X, bounds.Y

	for row := box.Y - 1; row <= box.Bottom(); row++ {
		wy := vp.worldY(row)
		v := int(math.Floor((wy - top) / c.H * spriteSize))
		for col := box.X - 1; col <= box.Right(); col++ {
			wx := vp.worldX(col) - c.Tilt*(wy-c.Y)
			u := int(math.Floor((wx - left) / c.W * spriteSize))
			px := spritePixel(c.Frame, u, v)
			if px == 0 {
				continue
			}
			dst.SetColored(col, row, '█', spritePalette[px])
		}
	}
}

func renderTitle(dst *core.Screen) {
	y := dst.Height()/2 - 4
	dst.DrawTextCentered(y, "M A T T R E S S   H O P", core.ColorBrightYellow)
	dst.DrawTextCentered(y+2, "Bounce from bed to bed. Don't fall!", core.ColorWhite)
	dst.DrawTextCentered(y+4, "Press SPACE or ENTER to start", core.ColorBrightWhite)
}

// renderGameOver dims the frame and draws the result panel with the
// restart button.
func renderGameOver(dst *core.Screen, vp viewport, snap Snapshot) {
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			cell := dst.GetCell(x, y)
			if cell.Rune != ' ' {
				dst.SetColored(x, y, cell.Rune, core.ColorDarkGray)
			}
		}
	}

	mid := vp.row(snap.WorldH / 2)
	dst.DrawTextCentered(mid-4, "Game Over", core.ColorBrightRed)
	dst.DrawTextCentered(mid-2, fmt.Sprintf("Final score: %d", snap.FinalScore), core.ColorBrightWhite)

	btn := vp.buttonCells(snap.RestartButton)
	dst.DrawRect(btn, ' ', core.ColorDefault)
	dst.DrawBox(btn, core.ColorBrightYellow)
	labelX := btn.X + (btn.W-len(buttonLabel))/2
	dst.DrawTextColored(labelX, btn.Y+btn.H/2, buttonLabel, core.ColorBrightYellow)
	dst.DrawTextCentered(btn.Bottom(), "click or press R", core.ColorGray)
}
