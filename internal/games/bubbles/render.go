package bubbles

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/bubble-trouble/internal/core"
)

// Visual characters for rendering
const (
	BubbleChar  = '█'
	ShooterChar = '█'
	BarrelChar  = '▲'
	BulletChar  = '•'
	HeartChar   = '♥'
)

// Shooter sprite size in world units, matching the hit circle placement.
const (
	shooterBodyHeight = 20
	barrelLength      = 10
)

// Minimum terminal size to draw the field.
const (
	minScreenW = 30
	minScreenH = 12
)

// viewport maps world coordinates to screen cells.
// The field is drawn inside a border below the HUD row.
type viewport struct {
	left, top float64 // Cell of world origin
	sx, sy    float64 // Cells per world unit
}

func newViewport(screenW, screenH int, f Field) viewport {
	innerW := float64(screenW - 2)
	innerH := float64(screenH - 3)
	return viewport{
		left: 1,
		top:  2,
		sx:   innerW / f.W,
		sy:   innerH / f.H,
	}
}

func (v viewport) x(wx float64) float64 { return v.left + wx*v.sx }
func (v viewport) y(wy float64) float64 { return v.top + wy*v.sy }

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("need %dx%d", minScreenW, minScreenH))
		return
	}

	s := g.session
	vp := newViewport(w, h, s.field)

	g.drawHUD(dst)
	dst.DrawBox(core.NewRect(0, 1, w, h-1))

	for _, b := range s.Bubbles {
		rx := math.Max(b.Radius*vp.sx, 0.6)
		ry := math.Max(b.Radius*vp.sy, 0.6)
		dst.DrawEllipse(vp.x(b.X), vp.y(b.Y), rx, ry, BubbleChar, core.ColorCyan)
	}

	drawShooter(dst, vp, s)

	for _, b := range s.Bullets {
		dst.SetColored(int(vp.x(b.X)), int(vp.y(b.Y)), BulletChar, core.ColorBrightYellow)
	}

	switch {
	case s.Phase == PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Your score: %d", s.Score))
	case len(s.Bubbles) == 0:
		drawCenteredMessage(dst, "FIELD CLEARED", fmt.Sprintf("Score: %d  |  Press Q to quit", s.Score))
	}
}

// drawHUD renders score, health and wave on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	s := g.session

	scoreText := fmt.Sprintf(" Score: %d ", s.Score)
	dst.DrawTextColored(2, 0, scoreText, core.ColorBrightWhite)

	if g.cfg.Waves.Enabled {
		waveText := fmt.Sprintf(" Wave: %d ", s.Wave)
		dst.DrawTextColored(2+len(scoreText)+1, 0, waveText, core.ColorGray)
	}

	hearts := strings.Repeat(string(HeartChar), max(s.Health, 0))
	healthText := fmt.Sprintf(" Health: %s ", hearts)
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(healthText)-2, 0, healthText, core.ColorBrightRed)
}

// drawShooter renders the body below the barrel, as wide as the clamp allows.
func drawShooter(dst *core.Screen, vp viewport, s *Session) {
	sh := s.Shooter

	x0 := int(math.Floor(vp.x(sh.X - sh.HalfWidth)))
	x1 := int(math.Ceil(vp.x(sh.X + sh.HalfWidth)))
	y0 := int(math.Floor(vp.y(sh.Y)))
	y1 := max(int(math.Ceil(vp.y(sh.Y+shooterBodyHeight))), y0+1)
	dst.DrawRect(core.NewRect(x0, y0, max(x1-x0, 1), y1-y0), ShooterChar, core.ColorRed)

	bx := int(vp.x(sh.X))
	by := int(math.Floor(vp.y(sh.Y - barrelLength)))
	if by >= y0 {
		by = y0 - 1
	}
	dst.SetColored(bx, by, BarrelChar, core.ColorBrightRed)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
