package highscore

import "github.com/vovakirdan/tui-shooter/internal/storage"

// SQLiteBackend keeps the best score of one mode in the scores database.
type SQLiteBackend struct {
	store  *storage.Store
	gameID string
}

// NewSQLiteBackend binds a store to a mode id.
func NewSQLiteBackend(store *storage.Store, gameID string) *SQLiteBackend {
	return &SQLiteBackend{store: store, gameID: gameID}
}

// Load returns the best stored score or best recorded run.
func (b *SQLiteBackend) Load() (int, error) {
	return b.store.HighScore(b.gameID)
}

// Save stores score as the mode's best.
func (b *SQLiteBackend) Save(score int) error {
	return b.store.SaveBest(b.gameID, score)
}
