package desktop

import (
	_ "image/png"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

// spriteFiles are looked up in the asset dir. Kinds without a file, or
// whose file fails to load, are drawn as colored rectangles.
var spriteFiles = map[shooter.Kind]string{
	shooter.KindPlayer: "Pesawat.png",
	shooter.KindEnemy:  "Musuh.png",
	shooter.KindBoss:   "Boss.png",
}

const backgroundFile = "bgGame.png"

// Sprites holds whatever images could be loaded.
type Sprites struct {
	kinds      map[shooter.Kind]*ebiten.Image
	background *ebiten.Image
}

// LoadSprites reads the sprite files from dir. An empty dir loads nothing.
func LoadSprites(dir string, logger *log.Logger) *Sprites {
	s := &Sprites{kinds: make(map[shooter.Kind]*ebiten.Image)}
	if dir == "" {
		return s
	}
	for kind, name := range spriteFiles {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, name))
		if err != nil {
			logger.Debug("sprite unavailable, drawing rectangles", "kind", kind, "err", err)
			continue
		}
		s.kinds[kind] = img
	}
	if img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, backgroundFile)); err == nil {
		s.background = img
	} else {
		logger.Debug("background unavailable, drawing stars", "err", err)
	}
	return s
}

// For returns the sprite of kind, or nil.
func (s *Sprites) For(kind shooter.Kind) *ebiten.Image {
	if s == nil {
		return nil
	}
	return s.kinds[kind]
}
