package game

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/board"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const hudHeight = 2

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.m == nil {
		return
	}

	rows, cols := g.m.Rows(), g.m.Cols()
	if dst.Width() < cols || dst.Height() < rows+hudHeight+1 {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	offX := (dst.Width() - cols) / 2
	offY := hudHeight

	g.renderMap(dst, offX, offY)
	g.renderSnake(dst, offX, offY)
	g.renderInfo(dst, offY+rows)

	switch {
	case g.status == StatusFull:
		g.renderOverlay(dst, "Board filled!", fmt.Sprintf("%d steps, press R", g.snake.Steps()))
	case g.status == StatusDead:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.status == StatusStepLimit:
		g.renderOverlay(dst, "Step limit reached", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press Space to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake | %s", g.SolverName())
	if g.m != nil {
		hud += fmt.Sprintf(" | Length: %d/%d  Steps: %d", g.snake.Len(), g.m.Capacity(), g.snake.Steps())
	}
	dst.DrawTextColored(0, 0, hud, core.ColorInfo)
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

func (g *Game) renderMap(dst *core.Screen, offX, offY int) {
	for r := range g.m.Rows() {
		for c := range g.m.Cols() {
			switch t := g.m.Point(core.P(r, c)); t {
			case board.PointWall:
				dst.SetCell(offX+c, offY+r, t.Rune(), core.ColorWall)
			case board.PointFood:
				dst.SetCell(offX+c, offY+r, t.Rune(), core.ColorFood)
			}
		}
	}
}

func (g *Game) renderSnake(dst *core.Screen, offX, offY int) {
	bodies := g.snake.Bodies()
	for i, p := range bodies {
		color := core.ColorBody
		switch {
		case g.snake.Dead():
			color = core.ColorDead
		case i == 0:
			color = core.ColorHead
		}
		// A dead head may sit on a wall.
		if i == 0 && !g.m.IsInside(p) {
			continue
		}
		dst.SetCell(offX+p.Col, offY+p.Row, g.snake.Shape(i).Rune(), color)
	}
}

func (g *Game) renderInfo(dst *core.Screen, y int) {
	info := fmt.Sprintf(" Status: %s", g.status)
	if g.paused {
		info += " (paused)"
	}
	color := core.ColorInfo
	if g.status == StatusDead || g.status == StatusStepLimit {
		color = core.ColorWarn
	}
	dst.DrawTextColored(0, y, info, color)
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorInfo)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
