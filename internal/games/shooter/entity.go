package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Kind tags every spatial entity so collision and rendering can switch on
// it instead of inspecting concrete types.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindBoss
	KindBullet
	KindSpreadItem
	KindHealItem
	KindLaser
	KindExplosion
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBoss:
		return "boss"
	case KindBullet:
		return "bullet"
	case KindSpreadItem:
		return "spread_item"
	case KindHealItem:
		return "heal_item"
	case KindLaser:
		return "laser"
	case KindExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Hostile reports whether the kind damages the player on contact.
func (k Kind) Hostile() bool {
	return k == KindEnemy || k == KindBoss || k == KindLaser
}

// Entity is the shape shared by everything on the playfield.
type Entity struct {
	Kind  Kind
	Rect  core.Rect
	Alive bool
}

// BossHandle refers to a boss by arena slot. It stops resolving once the
// slot is freed or reused, which is how lasers notice their boss is gone.
type BossHandle struct {
	Slot int
	Gen  uint32
}

// NoBoss is the zero handle; it never resolves.
var NoBoss = BossHandle{Slot: -1}
