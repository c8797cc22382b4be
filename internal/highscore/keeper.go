package highscore

import (
	"io"

	"github.com/charmbracelet/log"
)

// Keeper reads and records the best score without ever failing.
type Keeper struct {
	backend Backend
	logger  *log.Logger
}

// NewKeeper wraps backend. A nil logger discards warnings.
func NewKeeper(backend Backend, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Keeper{backend: backend, logger: logger}
}

// Load returns the stored best, or 0 when it cannot be read.
func (k *Keeper) Load() int {
	if k == nil || k.backend == nil {
		return 0
	}
	score, err := k.backend.Load()
	if err != nil {
		k.logger.Warn("high score unreadable, starting from zero", "err", err)
		return 0
	}
	return score
}

// Record saves score if it beats the stored best and reports whether it
// did. The stored value is re-read so concurrent sessions never lower it.
func (k *Keeper) Record(score int) bool {
	if k == nil || k.backend == nil {
		return false
	}
	if score <= k.Load() {
		return false
	}
	if err := k.backend.Save(score); err != nil {
		k.logger.Warn("high score not saved", "score", score, "err", err)
		return false
	}
	k.logger.Debug("new high score", "score", score)
	return true
}
