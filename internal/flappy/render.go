package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	FlyerChar     = '●'
	FlyerBeakChar = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
)

// Render draws the current session state to the screen.
func (s *Session) Render(dst *core.Screen) {
	Draw(dst, s.Snapshot())
}

// Draw rasterizes a snapshot onto a cell screen, stretching the field to
// fill it.
func Draw(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.FieldW <= 0 || snap.FieldH <= 0 {
		return
	}

	p := projection{
		sx: float64(dst.Width()) / float64(snap.FieldW),
		sy: float64(dst.Height()) / float64(snap.FieldH),
	}
	bounds := core.NewRect(0, 0, dst.Width(), dst.Height())

	for _, o := range snap.Obstacles {
		drawObstacle(dst, p, bounds, o)
	}
	drawFlyer(dst, p, snap.Flyer)

	dst.DrawTextColored(1, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)

	if snap.Terminal {
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Final Score: %d", snap.Score),
			"Press Space to restart")
	}
}

// projection maps field coordinates to screen cells.
type projection struct {
	sx, sy float64
}

func (p projection) col(x float64) int { return int(math.Floor(x * p.sx)) }
func (p projection) row(y float64) int { return int(math.Floor(y * p.sy)) }

// drawObstacle renders the two solid sections around the gap.
func drawObstacle(dst *core.Screen, p projection, bounds core.Rect, o ObstacleView) {
	x0 := p.col(o.X)
	x1 := int(math.Ceil((o.X + o.Width) * p.sx))
	w := max(x1-x0, 1)

	gapTop := p.row(o.GapTop)
	gapBottom := core.Clamp(int(math.Ceil(o.GapBottom*p.sy)), 0, dst.Height())

	top := core.NewRect(x0, 0, w, gapTop)
	bottom := core.NewRect(x0, gapBottom, w, dst.Height()-gapBottom)

	if clipped := top.Clip(bounds); !clipped.Empty() {
		dst.DrawRect(clipped, PipeChar, core.ColorGreen)
		dst.DrawHLine(x0, gapTop-1, w, PipeCapTop, core.ColorBrightGreen)
	}
	if clipped := bottom.Clip(bounds); !clipped.Empty() {
		dst.DrawRect(clipped, PipeChar, core.ColorGreen)
		dst.DrawHLine(x0, gapBottom, w, PipeCapBottom, core.ColorBrightGreen)
	}
}

// drawFlyer renders the flyer as a short horizontal body with a beak.
func drawFlyer(dst *core.Screen, p projection, f FlyerView) {
	cx := p.col(f.X)
	cy := core.Clamp(p.row(f.Y), 0, dst.Height()-1)
	half := max(int(f.Radius*p.sx)/2, 0)

	for dx := -half; dx < half; dx++ {
		dst.SetColored(cx+dx, cy, FlyerChar, core.ColorYellow)
	}
	dst.SetColored(cx+half, cy, FlyerBeakChar, core.ColorBrightYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := 4 + len(lines)
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightRed)
	for i, l := range lines {
		dst.DrawTextColored(box.X+(boxW-len(l))/2, box.Y+3+i, l, core.ColorBrightWhite)
	}
}
