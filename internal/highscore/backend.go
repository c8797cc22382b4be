// Package highscore keeps the single best score shown to the player.
// Storage problems never reach the game: unreadable stores read as zero
// and failed writes are logged and dropped.
package highscore

//go:generate go tool mockgen -destination=./mocks/backend_mock.go -package=mocks . Backend

// Backend is a place the best score can live.
type Backend interface {
	// Load returns the stored best. A store that does not exist yet
	// returns 0 and no error.
	Load() (int, error)
	// Save stores score as the new best.
	Save(score int) error
}
