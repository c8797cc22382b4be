package core

// EventKind identifies something noteworthy that happened during a tick.
// Hosts use events to trigger sounds and screen effects; the simulation
// never depends on them being consumed.
type EventKind int

const (
	EventShot EventKind = iota
	EventEnemyDestroyed
	EventBossSpawned
	EventBossHit
	EventBossDestroyed
	EventPlayerHit
	EventLaserHit
	EventLaserOn
	EventLaserOff
	EventHeal
	EventSpread
	EventGameOver
)

// String returns a short name for logs.
func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventBossSpawned:
		return "boss_spawned"
	case EventBossHit:
		return "boss_hit"
	case EventBossDestroyed:
		return "boss_destroyed"
	case EventPlayerHit:
		return "player_hit"
	case EventLaserHit:
		return "laser_hit"
	case EventLaserOn:
		return "laser_on"
	case EventLaserOff:
		return "laser_off"
	case EventHeal:
		return "heal"
	case EventSpread:
		return "spread"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single occurrence with an optional location in game space.
type Event struct {
	Kind EventKind
	X, Y int
}
