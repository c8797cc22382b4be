// Package desktop runs rounds in an 800x600 window with ebiten, drawing
// sprites when they are available and plain shapes when they are not.
package desktop

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/session"
)

// Viewer is a round that exposes a presentation copy of itself.
type Viewer interface {
	View() shooter.View
}

// Sounds reacts to round events. audio.Manager implements it.
type Sounds interface {
	HandleEvents(events []core.Event)
	StartRound() int
	Close()
}

// Options configures the window.
type Options struct {
	AssetDir string
	Sounds   Sounds
	Logger   *log.Logger
	Title    string
	// Scale multiplies the window size; the logical size stays 800x600.
	Scale float64
}

// Game adapts a session to ebiten.Game.
type Game struct {
	session *session.Session
	viewer  Viewer
	sounds  Sounds
	sprites *Sprites
	logger  *log.Logger
	rt      core.RuntimeConfig
	started bool
}

// New wraps s. The session's round must implement Viewer.
func New(s *session.Session, rt core.RuntimeConfig, opts Options) (*Game, error) {
	viewer, ok := s.Game().(Viewer)
	if !ok {
		return nil, fmt.Errorf("desktop: mode %q has no view", s.Game().ID())
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		session: s,
		viewer:  viewer,
		sounds:  opts.Sounds,
		sprites: LoadSprites(opts.AssetDir, logger),
		logger:  logger,
		rt:      rt,
	}, nil
}

// Run opens the window and blocks until it is closed.
func Run(s *session.Session, rt core.RuntimeConfig, opts Options) error {
	g, err := New(s, rt, opts)
	if err != nil {
		return err
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	title := opts.Title
	if title == "" {
		title = s.Game().Title()
	}

	ebiten.SetWindowSize(int(float64(rt.ScreenW)*scale), int(float64(rt.ScreenH)*scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if rt.TickRate > 0 {
		ebiten.SetTPS(rt.TickRate)
	}

	defer func() {
		if g.sounds != nil {
			g.sounds.Close()
		}
	}()
	return ebiten.RunGame(g)
}

func (g *Game) start() {
	if g.started {
		return
	}
	g.started = true
	g.session.Start(g.rt)
	if g.sounds != nil {
		g.sounds.StartRound()
	}
}

// Update advances one tick.
func (g *Game) Update() error {
	g.start()

	if quitPressed(inpututil.IsKeyJustPressed) {
		g.session.Decide(session.DecisionQuit)
		return ebiten.Termination
	}

	if _, over := g.session.GameOver(); over {
		if retryPressed(inpututil.IsKeyJustPressed) {
			g.session.Decide(session.DecisionRetry)
			if g.sounds != nil {
				g.sounds.StartRound()
			}
		}
		return nil
	}

	res := g.session.Step(readFrame(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed))
	if g.sounds != nil && len(res.Events) > 0 {
		g.sounds.HandleEvents(res.Events)
	}
	return nil
}

// Draw renders the current view.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.started {
		return
	}
	v := g.viewer.View()
	score, over := g.session.GameOver()
	drawView(screen, v, g.sprites)
	if over {
		drawGameOver(screen, v, score, g.session.NewBest())
	}
}

// Layout keeps the logical viewport regardless of window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.started {
		if v := g.viewer.View(); v.Width > 0 && v.Height > 0 {
			return v.Width, v.Height
		}
	}
	return g.rt.ScreenW, g.rt.ScreenH
}

type keyFunc func(ebiten.Key) bool

func anyKey(f keyFunc, keys ...ebiten.Key) bool {
	for _, k := range keys {
		if f(k) {
			return true
		}
	}
	return false
}

// readFrame builds one tick of input: held directions, edge actions.
func readFrame(pressed, justPressed keyFunc) core.InputFrame {
	in := core.NewInputFrame()
	if anyKey(pressed, ebiten.KeyArrowUp, ebiten.KeyW) {
		in.Set(core.ActionUp)
	}
	if anyKey(pressed, ebiten.KeyArrowDown, ebiten.KeyS) {
		in.Set(core.ActionDown)
	}
	if anyKey(pressed, ebiten.KeyArrowLeft, ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if anyKey(pressed, ebiten.KeyArrowRight, ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if anyKey(justPressed, ebiten.KeySpace) {
		in.Set(core.ActionFire)
	}
	if anyKey(justPressed, ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	return in
}

func quitPressed(justPressed keyFunc) bool {
	return anyKey(justPressed, ebiten.KeyEscape, ebiten.KeyQ)
}

func retryPressed(justPressed keyFunc) bool {
	return anyKey(justPressed, ebiten.KeyR, ebiten.KeyEnter, ebiten.KeySpace)
}

// rgba is a shorthand for opaque colors not in colornames.
func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
