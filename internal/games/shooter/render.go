package shooter

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Minimum terminal size for a playable field.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// hudRows is the number of rows above the playfield.
const hudRows = 2

// Visual characters for rendering
const (
	PlayerChar    = '▓'
	PlayerNose    = '▲'
	EnemyChar     = '▒'
	BossChar      = '█'
	BulletChar    = '•'
	SpreadChar    = '*'
	HealChar      = '+'
	LaserChar     = '┃'
	DebrisChar    = '*'
	SmokeChar     = '░'
	StarChar      = '.'
	BarFullChar   = '█'
	BarEmptyChar  = '░'
	starsPerField = 24
)

// Band is the color band of a health bar.
type Band int

const (
	BandGreen Band = iota
	BandYellow
	BandRed
)

// HPBand picks the health bar color: above 60% green, above 30% yellow,
// otherwise red.
func HPBand(hp, maxHP int) Band {
	if maxHP <= 0 {
		return BandRed
	}
	pct := hp * 100 / maxHP
	switch {
	case pct > 60:
		return BandGreen
	case pct > 30:
		return BandYellow
	default:
		return BandRed
	}
}

// Color maps a band to a terminal color.
func (b Band) Color() core.Color {
	switch b {
	case BandGreen:
		return core.ColorGreen
	case BandYellow:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

// field maps logical viewport coordinates onto screen cells.
type field struct {
	top    int
	w, h   int
	sx, sy float64
}

func newField(dst *core.Screen, vw, vh int) field {
	f := field{top: hudRows, w: dst.Width(), h: dst.Height() - hudRows}
	f.sx = float64(f.w) / float64(vw)
	f.sy = float64(f.h) / float64(vh)
	return f
}

// cells converts a logical box to a cell box (at least one cell).
func (f field) cells(r core.Rect) core.Rect {
	x0 := int(math.Floor(float64(r.X) * f.sx))
	y0 := int(math.Floor(float64(r.Y) * f.sy))
	x1 := int(math.Ceil(float64(r.Right()) * f.sx))
	y1 := int(math.Ceil(float64(r.Bottom()) * f.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0+f.top, x1-x0, y1-y0)
}

func (f field) point(x, y float64) (int, int) {
	return int(math.Floor(x * f.sx)), int(math.Floor(y*f.sy)) + f.top
}

func (f field) inside(x, y int) bool {
	return x >= 0 && x < f.w && y >= f.top && y < f.top+f.h
}

func (f field) fill(dst *core.Screen, r core.Rect, ch rune, c core.Color) {
	c0 := f.cells(r)
	for y := c0.Y; y < c0.Bottom(); y++ {
		for x := c0.X; x < c0.Right(); x++ {
			if f.inside(x, y) {
				dst.SetColored(x, y, ch, c)
			}
		}
	}
}

func (f field) set(dst *core.Screen, x, y int, ch rune, c core.Color) {
	if f.inside(x, y) {
		dst.SetColored(x, y, ch, c)
	}
}

// Render draws the round into dst, scaling the logical viewport to fit.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall || dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	v := g.View()
	f := newField(dst, v.Width, v.Height)

	renderBackground(dst, f, v)
	renderEntities(dst, f, v)
	renderPlayer(dst, f, v.Player)
	renderExplosions(dst, f, v.Explosions)
	if v.Boss != nil {
		renderBossBar(dst, f, *v.Boss)
	}
	renderHUD(dst, v)
	renderOverlay(dst, v)
}

func renderBackground(dst *core.Screen, f field, v View) {
	shift := int(float64(v.BackgroundY) * f.sy)
	for i := range starsPerField {
		x := (i*37 + 11) % f.w
		y := (i*53 + 7 + shift) % f.h
		f.set(dst, x, y+f.top, StarChar, core.ColorGray)
	}
}

func renderEntities(dst *core.Screen, f field, v View) {
	for _, e := range v.Entities {
		switch e.Kind {
		case KindEnemy:
			f.fill(dst, e.Rect, EnemyChar, core.ColorRed)
		case KindBoss:
			f.fill(dst, e.Rect, BossChar, core.ColorPurple)
		case KindBullet:
			x, y := f.point(float64(e.Rect.CenterX()), float64(e.Rect.CenterY()))
			f.set(dst, x, y, BulletChar, core.ColorBrightCyan)
		case KindSpreadItem:
			x, y := f.point(float64(e.Rect.CenterX()), float64(e.Rect.CenterY()))
			f.set(dst, x, y, SpreadChar, core.ColorYellow)
		case KindHealItem:
			x, y := f.point(float64(e.Rect.CenterX()), float64(e.Rect.CenterY()))
			f.set(dst, x, y, HealChar, core.ColorGreen)
		case KindLaser:
			f.fill(dst, e.Rect, LaserChar, core.ColorOrange)
		}
	}
}

func renderPlayer(dst *core.Screen, f field, p PlayerView) {
	c := core.ColorCyan
	if p.Dimmed {
		c = core.ColorGray
	}
	f.fill(dst, p.Rect, PlayerChar, c)
	x, y := f.point(float64(p.Rect.CenterX()), float64(p.Rect.Y))
	f.set(dst, x, y, PlayerNose, core.ColorBrightWhite)
}

func renderExplosions(dst *core.Screen, f field, explosions []ExplosionView) {
	for _, e := range explosions {
		for _, s := range e.Smoke {
			if s.Alpha > 0 {
				x, y := f.point(s.X, s.Y)
				f.set(dst, x, y, SmokeChar, core.ColorGray)
			}
		}
		for _, d := range e.Debris {
			if d.Alpha > 0 {
				x, y := f.point(d.X, d.Y)
				f.set(dst, x, y, DebrisChar, core.ColorOrange)
			}
		}
	}
}

func renderBossBar(dst *core.Screen, f field, b BossView) {
	c := f.cells(b.Rect)
	width := core.Max(c.W, 6)
	x0 := c.CenterX() - width/2
	y := c.Y - 1
	if y < f.top {
		y = f.top
	}
	filled := 0
	if b.MaxHP > 0 {
		filled = width * b.HP / b.MaxHP
	}
	for i := range width {
		ch := BarEmptyChar
		if i < filled {
			ch = BarFullChar
		}
		f.set(dst, x0+i, y, ch, core.ColorRed)
	}
}

// HPBar renders a text health bar of the given width.
func HPBar(hp, maxHP, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if maxHP > 0 {
		filled = core.Clamp(width*hp/maxHP, 0, width)
	}
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = BarFullChar
		} else {
			bar[i] = BarEmptyChar
		}
	}
	return string(bar)
}

func renderHUD(dst *core.Screen, v View) {
	left := fmt.Sprintf("Score: %d  Best: %d  Stage: %d", v.Score, v.Best, v.Stage)
	dst.DrawText(1, 0, left)

	var right string
	switch {
	case v.LaserOn:
		right = "LASER!"
	case v.Player.SpreadActive:
		right = fmt.Sprintf("SPREAD %ds", (v.Player.SpreadTicks+59)/60)
	case v.Boss == nil:
		right = fmt.Sprintf("Boss at %d", v.NextBoss)
	}
	if right != "" {
		dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorBrightYellow)
	}

	label := "HP "
	dst.DrawText(1, 1, label)
	barW := core.Min(20, dst.Width()/3)
	band := HPBand(v.Player.HP, v.Player.MaxHP)
	dst.DrawTextColored(1+len(label), 1, HPBar(v.Player.HP, v.Player.MaxHP, barW), band.Color())
	dst.DrawText(2+len(label)+barW, 1, fmt.Sprintf("%d/%d", v.Player.HP, v.Player.MaxHP))
	if v.Player.LowHealth && v.Player.Dimmed {
		dst.DrawTextColored(dst.Width()-9, 1, "LOW HP!", core.ColorBrightRed)
	}
}

func renderOverlay(dst *core.Screen, v View) {
	switch v.State {
	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Best: %d", v.Score, core.Max(v.Score, v.Best))
		drawCenteredBox(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
