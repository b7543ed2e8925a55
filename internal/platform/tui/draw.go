package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/sim"
)

// courtGeometry carries the court dimensions needed to project
// simulation coordinates onto terminal cells.
type courtGeometry struct {
	W, H    float64 // court size in simulation units
	PaddleH float64 // unbuffed paddle height in simulation units
}

// viewport maps court coordinates to a rectangle of screen cells.
// The court has its origin at the center with Y pointing up; the
// screen has its origin at the top-left with Y pointing down.
type viewport struct {
	left, top int
	w, h      int
	scaleX    float64
	scaleY    float64
	geom      courtGeometry
}

// fitViewport computes the largest court viewport that fits the screen,
// leaving room for the border, the score line and the status line.
func fitViewport(screenW, screenH int, geom courtGeometry) viewport {
	w := screenW - 2  // border columns
	h := screenH - 4  // border rows + score line + status line
	if w < 10 {
		w = 10
	}
	if h < 6 {
		h = 6
	}
	return viewport{
		left:   1,
		top:    2,
		w:      w,
		h:      h,
		scaleX: float64(w) / geom.W,
		scaleY: float64(h) / geom.H,
		geom:   geom,
	}
}

// cellX maps a court X coordinate to a screen column inside the viewport.
func (v viewport) cellX(x float64) int {
	c := v.left + int((x+v.geom.W/2)*v.scaleX)
	return core.Clamp(c, v.left, v.left+v.w-1)
}

// cellY maps a court Y coordinate to a screen row inside the viewport.
func (v viewport) cellY(y float64) int {
	c := v.top + int((v.geom.H/2-y)*v.scaleY)
	return core.Clamp(c, v.top, v.top+v.h-1)
}

// drawMatch projects a simulation snapshot onto the screen buffer.
func drawMatch(s *core.Screen, snap sim.Snapshot, geom courtGeometry) {
	s.Clear()
	v := fitViewport(s.Width(), s.Height(), geom)

	// Court border
	s.DrawBox(core.Rect{X: v.left - 1, Y: v.top - 1, W: v.w + 2, H: v.h + 2})

	// Net down the middle of the court
	netX := v.cellX(0)
	for y := v.top; y < v.top+v.h; y += 2 {
		s.SetColored(netX, y, ':', core.ColorGray)
	}

	drawPowerUp(s, v, snap)
	drawPaddle(s, v, snap.LeftY, snap.LeftScale, v.left, core.ColorBrightGreen)
	drawPaddle(s, v, snap.RightY, snap.RightScale, v.left+v.w-1, core.ColorBrightRed)

	// Ball last so it is never hidden
	s.SetColored(v.cellX(snap.BallX), v.cellY(snap.BallY), '●', core.ColorBrightWhite)

	drawScore(s, v, snap)
	drawStatus(s, v, snap)
}

// drawPaddle renders one paddle as a vertical bar. Buffed paddles are
// taller and highlighted.
func drawPaddle(s *core.Screen, v viewport, y, scale float64, col int, color core.Color) {
	if scale > 1.0 {
		color = core.ColorBrightYellow
	}
	cells := int(v.geom.PaddleH*scale*v.scaleY + 0.5)
	if cells < 1 {
		cells = 1
	}
	center := v.cellY(y)
	for i := 0; i < cells; i++ {
		s.SetColored(col, center-cells/2+i, '█', color)
	}
}

// drawPowerUp renders the power-up, if one is on the court.
func drawPowerUp(s *core.Screen, v viewport, snap sim.Snapshot) {
	if !snap.PowerUpPresent {
		return
	}
	s.SetColored(v.cellX(snap.PowerUpX), v.cellY(snap.PowerUpY), '◆', core.ColorYellow)
}

// drawScore renders the score line above the court.
func drawScore(s *core.Screen, v viewport, snap sim.Snapshot) {
	score := fmt.Sprintf("%d  :  %d", snap.LeftScore, snap.RightScore)
	s.DrawTextCentered(0, score)
}

// drawStatus renders overlays and the controls hint.
func drawStatus(s *core.Screen, v viewport, snap sim.Snapshot) {
	midRow := v.top + v.h/2

	switch {
	case snap.GameOver:
		winner := "LEFT"
		if snap.Winner == core.SideRight {
			winner = "RIGHT"
		}
		s.DrawTextCentered(midRow-1, fmt.Sprintf("  %s WINS  ", winner))
		s.DrawTextCentered(midRow+1, "  R: play again   Q: quit  ")
	case snap.Paused:
		s.DrawTextCentered(midRow, "  PAUSED  ")
	}

	hint := "W/S: move  |  P: pause  |  Q: quit"
	s.DrawText(v.left, v.top+v.h+1, hint)
}
