package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/ageofpanda/common"
	"github.com/milk9111/ageofpanda/system"
	"github.com/milk9111/ageofpanda/world"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// Parallax divisors, far to near.
const (
	mountainsDivisor  = 16
	lighthouseDivisor = 6
	seaDivisor        = 4
)

// Renderer draws a GameState. It never writes to the state.
type Renderer struct {
	face text.Face
}

func NewRenderer() *Renderer {
	return &Renderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (r *Renderer) Draw(screen *ebiten.Image, g *world.GameState, cam *Camera) {
	r.drawBackground(screen, g)

	if m, err := g.Map(); err == nil {
		view := cam.View(screenHeight)
		r.drawObstacles(screen, m, cam, &view)
		r.drawTraps(screen, g, m, cam, &view)
	}

	r.drawPlayer(screen, g, cam)
	r.drawHearts(screen, g)
	r.drawGameOver(screen, g)
}

func (r *Renderer) drawBackground(screen *ebiten.Image, g *world.GameState) {
	t := g.Tuning
	p := &g.Player
	screen.Fill(colornames.Lightskyblue)

	// Mountains: a repeating row of peaks.
	period := 80.0
	off := math.Mod(p.X/mountainsDivisor, period)
	peak := colornames.Slategray
	if g.MountainsFrames.Index == 1 {
		peak = colornames.Lightslategray
	}
	for x := -off - period; x < screenWidth+period; x += period {
		for step := 0.0; step < 5; step++ {
			w := float32(period - step*16)
			h := float32(12)
			vector.FillRect(screen, float32(x+step*8), float32(t.Ground-40-step*12), w, h, peak, false)
		}
	}

	// Lighthouse with a blinking lamp.
	lx := float32(screenWidth - 60 - math.Mod(p.X/lighthouseDivisor, screenWidth+40))
	if lx < -20 {
		lx += screenWidth + 40
	}
	vector.FillRect(screen, lx, float32(t.Ground-70), 10, 62, colornames.Whitesmoke, false)
	vector.FillRect(screen, lx, float32(t.Ground-50), 10, 6, colornames.Firebrick, false)
	lamp := colornames.Dimgray
	if g.LighthouseFrames.Index == 1 {
		lamp = colornames.Gold
	}
	vector.FillRect(screen, lx-2, float32(t.Ground-78), 14, 8, lamp, false)

	// Sea
	seaY := float32(t.Ground - 12)
	vector.FillRect(screen, 0, seaY, screenWidth, 12, colornames.Steelblue, false)
	waveOff := float32(math.Mod(p.X/seaDivisor, 16))
	for x := -waveOff; x < screenWidth; x += 16 {
		vector.FillRect(screen, x, seaY, 6, 1, colornames.Aliceblue, false)
	}

	// Ground
	groundY := float32(t.Ground + t.FootOffset)
	grass := colornames.Forestgreen
	if g.GroundFrames.Index == 1 {
		grass = colornames.Seagreen
	}
	vector.FillRect(screen, 0, groundY-8, screenWidth, 8, colornames.Sandybrown, false)
	vector.FillRect(screen, 0, groundY, screenWidth, screenHeight-groundY, grass, false)
}

func obstacleColor(durability uint8) color.Color {
	switch durability {
	case 2:
		return colornames.Steelblue
	case 1:
		return colornames.Goldenrod
	default:
		return colornames.Firebrick
	}
}

func (r *Renderer) drawObstacles(screen *ebiten.Image, m *world.Map, cam *Camera, view *Rect) {
	for _, o := range m.Obstacles {
		if o == nil || !o.Active {
			continue
		}
		box := RectFromBounds(o.XLeft, o.YTop, o.XRight, o.YBottom)
		if !view.Intersects(&box) {
			continue
		}
		x := float32(cam.ScreenX(o.XLeft))
		vector.FillRect(screen, x, box.Y, box.Width, box.Height, obstacleColor(o.Durability), false)
		vector.StrokeRect(screen, x, box.Y, box.Width, box.Height, 1, colornames.Darkslategray, false)
	}
}

func (r *Renderer) drawTraps(screen *ebiten.Image, g *world.GameState, m *world.Map, cam *Camera, view *Rect) {
	clr := colornames.Limegreen
	if g.TrapFrames.Index == 1 {
		clr = colornames.Greenyellow
	}
	for _, trap := range m.Traps {
		if trap == nil || !trap.Active {
			continue
		}
		box := RectFromBounds(trap.XLeft, trap.YTop, trap.XRight, trap.YBottom)
		if !view.Intersects(&box) {
			continue
		}
		x := float32(cam.ScreenX(trap.XLeft))
		// Drawn as a low pool so the shrunk hitbox reads correctly.
		vector.FillRect(screen, x, box.Y+box.Height/2, box.Width, box.Height/2, clr, false)
	}
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, g *world.GameState, cam *Camera) {
	p := &g.Player
	t := g.Tuning

	// Shadows are hidden while on or above a box.
	if !p.OnObstacle && !p.AboveObstacle {
		w := float32(18)
		switch {
		case p.OnGround:
			w = 10
		case p.AlmostGround:
			w = 14
		}
		cx := float32(cam.ScreenX(p.X) + t.PlayerWidth/2)
		vector.FillRect(screen, cx-w/2, float32(t.Ground+7), w, 3, color.RGBA{A: 80}, false)
	}

	if p.Invincible && (g.Tick/4)%2 == 1 {
		return
	}

	w := t.SpriteWidth(p.WalkFrame())
	x := float32(cam.ScreenX(p.X))
	y := float32(p.Y + t.FootOffset - t.PlayerHeight)
	clr := colornames.White
	switch {
	case p.IsKicking:
		clr = colornames.Orange
	case !p.Supported() && p.AlmostGround:
		clr = colornames.Khaki
	case !p.Supported():
		clr = colornames.Lightyellow
	case p.WalkFrame()%2 == 1:
		clr = colornames.Whitesmoke
	}
	vector.FillRect(screen, x, y, float32(w), float32(t.PlayerHeight), clr, false)

	// Eye on the facing side, and the foot out while kicking.
	eyeX := x + float32(w) - 8
	footX := x + float32(w)
	if p.Direction == world.Left {
		eyeX = x + 4
		footX = x - 6
	}
	vector.FillRect(screen, eyeX, y+6, 4, 4, colornames.Black, false)
	if p.IsKicking && p.KickFrame > 0 {
		vector.FillRect(screen, footX, y+float32(t.PlayerHeight)-10, 6, 4, colornames.Black, false)
	}
}

func (r *Renderer) drawHearts(screen *ebiten.Image, g *world.GameState) {
	for i := 0; i < g.Tuning.MaxHealth; i++ {
		x := float32(4 + i*10)
		size := float32(8)
		clr := colornames.Dimgray
		if i < g.Player.Health {
			clr = colornames.Crimson
			if g.HeartFrames.Index == 1 {
				size = 7
			}
		}
		vector.FillRect(screen, x, 4, size, size, clr, false)
	}
}

func (r *Renderer) drawGameOver(screen *ebiten.Image, g *world.GameState) {
	frame := g.GameOverFrame()
	if frame < 0 {
		return
	}
	alpha := uint8(200 - frame*50)
	vector.FillRect(screen, 0, 0, screenWidth, screenHeight, color.RGBA{A: alpha}, false)

	msg := "GAME OVER"
	w, h := text.Measure(msg, r.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((screenWidth-w)/2, (screenHeight-h)/2)
	op.ColorScale.ScaleWithColor(colornames.White)
	op.ColorScale.ScaleAlpha(float32(common.Lerp(1, 0.25, float64(frame)/3)))
	text.Draw(screen, msg, r.face, op)
}

// DrawDebug outlines the collision boxes and prints the player state.
func (r *Renderer) DrawDebug(screen *ebiten.Image, g *world.GameState, cam *Camera, fps float64) {
	p := &g.Player
	t := g.Tuning

	left, top, right, bottom := system.PlayerBody(p, t)
	x := float32(cam.ScreenX(left))
	vector.StrokeRect(screen, x, float32(top), float32(right-left), float32(bottom-top), 1, colornames.Red, false)

	if m, err := g.Map(); err == nil {
		for _, trap := range m.Traps {
			if trap == nil || !trap.Active {
				continue
			}
			b := common.Shrink(trap.Box(), t.TrapMargin)
			vector.StrokeRect(screen, float32(cam.ScreenX(b.L)), float32(b.B), float32(b.R-b.L), float32(b.T-b.B), 1, color.RGBA{R: 255, A: 200}, false)
		}
		if tx := m.TransitionX; tx > 0 {
			vector.StrokeLine(screen, float32(cam.ScreenX(tx)), 0, float32(cam.ScreenX(tx)), screenHeight, 1, colornames.Magenta, false)
		}
	}

	msg := fmt.Sprintf("tick %d fps %.1f map %d\nx %.1f y %.1f vx %.2f vy %.2f\n%s jump=%v kick=%v inv=%v hp=%d",
		g.Tick, fps, g.CurrentMap, p.X, p.Y, p.VX, p.VY, p.State, p.IsJumping, p.IsKicking, p.Invincible, p.Health)
	ebitenutil.DebugPrintAt(screen, msg, 4, 16)
}
