package desktop

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

const (
	starCount    = 60
	hpBarWidth   = 200
	hpBarHeight  = 16
	bossBarWidth = 300
)

var (
	colorSpace    = rgba(8, 8, 24)
	colorBarBack  = rgba(100, 0, 0)
	colorLaser    = rgba(255, 40, 40)
	colorSmoke    = rgba(90, 90, 90)
	colorOverlay  = color.RGBA{A: 0xb0}
	colorBossBody = rgba(140, 40, 160)
)

// kindColor is the fill used when a kind has no sprite.
func kindColor(k shooter.Kind) color.Color {
	switch k {
	case shooter.KindPlayer:
		return colornames.Deepskyblue
	case shooter.KindEnemy:
		return colornames.Orangered
	case shooter.KindBoss:
		return colorBossBody
	case shooter.KindBullet:
		return colornames.Yellow
	case shooter.KindSpreadItem:
		return colornames.Cyan
	case shooter.KindHealItem:
		return colornames.Limegreen
	case shooter.KindLaser:
		return colorLaser
	default:
		return colornames.White
	}
}

// bandColor maps a health band to a bar fill.
func bandColor(b shooter.Band) color.Color {
	switch b {
	case shooter.BandGreen:
		return colornames.Lime
	case shooter.BandYellow:
		return colornames.Gold
	default:
		return colornames.Red
	}
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// drawSprite stretches img over r.
func drawSprite(dst, img *ebiten.Image, r core.Rect, alpha float32) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W)/float64(b.Dx()), float64(r.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(img, op)
}

func drawView(dst *ebiten.Image, v shooter.View, sprites *Sprites) {
	drawBackground(dst, v, sprites)

	for _, e := range v.Entities {
		if img := sprites.For(e.Kind); img != nil {
			drawSprite(dst, img, e.Rect, 1)
			continue
		}
		fillRect(dst, e.Rect, kindColor(e.Kind))
	}

	drawPlayer(dst, v.Player, sprites)
	drawExplosions(dst, v.Explosions)
	if v.Boss != nil {
		drawBossBar(dst, v, *v.Boss)
	}
	drawHUD(dst, v)

	if v.State == shooter.StatePaused {
		vector.DrawFilledRect(dst, 0, 0, float32(v.Width), float32(v.Height), colorOverlay, false)
		ebitenutil.DebugPrintAt(dst, "PAUSED - press P", v.Width/2-48, v.Height/2)
	}
}

func drawBackground(dst *ebiten.Image, v shooter.View, sprites *Sprites) {
	if sprites != nil && sprites.background != nil {
		// Two stacked copies scroll down and wrap.
		r := core.NewRect(0, v.BackgroundY, v.Width, v.Height)
		drawSprite(dst, sprites.background, r, 1)
		drawSprite(dst, sprites.background, r.Translate(0, -v.Height), 1)
		return
	}
	dst.Fill(colorSpace)
	if v.Height <= 0 || v.Width <= 0 {
		return
	}
	for i := range starCount {
		x := (i*131 + 17) % v.Width
		y := (i*197 + 29 + v.BackgroundY) % v.Height
		vector.DrawFilledRect(dst, float32(x), float32(y), 2, 2, colornames.Lightgray, false)
	}
}

func drawPlayer(dst *ebiten.Image, p shooter.PlayerView, sprites *Sprites) {
	alpha := float32(1)
	if p.Dimmed {
		alpha = 0.35
	}
	if img := sprites.For(shooter.KindPlayer); img != nil {
		drawSprite(dst, img, p.Rect, alpha)
	} else {
		fillRect(dst, p.Rect, withAlpha(colornames.Deepskyblue, uint8(255*alpha)))
	}
	if p.SpreadActive {
		vector.StrokeRect(dst, float32(p.Rect.X-2), float32(p.Rect.Y-2), float32(p.Rect.W+4), float32(p.Rect.H+4), 1, colornames.Cyan, false)
	}
}

func drawExplosions(dst *ebiten.Image, explosions []shooter.ExplosionView) {
	for _, e := range explosions {
		if e.Boss && e.Flash > 0 {
			vector.DrawFilledCircle(dst, float32(e.X), float32(e.Y), float32(e.Flash), withAlpha(colornames.White, 0x60), true)
		}
		for _, s := range e.Smoke {
			vector.DrawFilledCircle(dst, float32(s.X), float32(s.Y), float32(s.Size), withAlpha(colorSmoke, clampAlpha(s.Alpha)), true)
		}
		for _, d := range e.Debris {
			vector.DrawFilledRect(dst, float32(d.X), float32(d.Y), float32(d.Size), float32(d.Size), withAlpha(colornames.Orange, clampAlpha(d.Alpha)), false)
		}
	}
}

// withAlpha returns c with a straight (non-premultiplied) alpha.
func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

func clampAlpha(a int) uint8 {
	return uint8(core.Clamp(a, 0, 255)) //#nosec G115
}

func drawBossBar(dst *ebiten.Image, v shooter.View, b shooter.BossView) {
	x := float32(v.Width-bossBarWidth) / 2
	var y float32 = 40
	vector.DrawFilledRect(dst, x, y, bossBarWidth, 12, colorBarBack, false)
	if b.MaxHP > 0 {
		w := float32(bossBarWidth) * float32(b.HP) / float32(b.MaxHP)
		vector.DrawFilledRect(dst, x, y, w, 12, colornames.Purple, false)
	}
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("BOSS %d/%d", b.HP, b.MaxHP), int(x), int(y)+14)
}

func drawHUD(dst *ebiten.Image, v shooter.View) {
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score: %d  Best: %d  Stage: %d", v.Score, v.Best, v.Stage), 10, 10)

	p := v.Player
	var y float32 = 30
	vector.DrawFilledRect(dst, 10, y, hpBarWidth, hpBarHeight, colorBarBack, false)
	if p.MaxHP > 0 {
		w := float32(hpBarWidth) * float32(p.HP) / float32(p.MaxHP)
		vector.DrawFilledRect(dst, 10, y, w, hpBarHeight, bandColor(shooter.HPBand(p.HP, p.MaxHP)), false)
	}
	vector.StrokeRect(dst, 10, y, hpBarWidth, hpBarHeight, 1, colornames.White, false)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%d/%d", p.HP, p.MaxHP), 16+hpBarWidth, int(y))

	status := ""
	switch {
	case p.LowHealth:
		status = "LOW HP!"
	case v.LaserOn:
		status = "LASER!"
	case p.SpreadActive:
		status = fmt.Sprintf("SPREAD %ds", p.SpreadTicks/60)
	}
	if status != "" {
		ebitenutil.DebugPrintAt(dst, status, 10, int(y)+hpBarHeight+4)
	}
}

func drawGameOver(dst *ebiten.Image, v shooter.View, score int, newBest bool) {
	vector.DrawFilledRect(dst, 0, 0, float32(v.Width), float32(v.Height), colorOverlay, false)
	cx, cy := v.Width/2, v.Height/2
	ebitenutil.DebugPrintAt(dst, "GAME OVER", cx-27, cy-30)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("Score: %d", score), cx-30, cy-10)
	if newBest {
		ebitenutil.DebugPrintAt(dst, "NEW BEST!", cx-27, cy+6)
	}
	ebitenutil.DebugPrintAt(dst, "R retry   Q quit", cx-48, cy+26)
}
