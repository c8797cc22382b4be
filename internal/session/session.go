// Package session wraps one player's sequence of rounds: it carries the
// best score across rounds, records finished runs and hands the host a
// retry-or-quit decision when a round ends.
package session

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// Decision is the host's answer to a finished round.
type Decision int

const (
	DecisionRetry Decision = iota
	DecisionQuit
)

func (d Decision) String() string {
	switch d {
	case DecisionRetry:
		return "retry"
	case DecisionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// BestScoreKeeper reads and records the best score. Implementations never
// fail; highscore.Keeper is the production one.
type BestScoreKeeper interface {
	Load() int
	Record(score int) bool
}

// RunLedger stores one row per finished round.
type RunLedger interface {
	SaveRun(gameID, runID string, score int) (int64, error)
}

// bestScoreSetter is implemented by rounds that display the best score.
type bestScoreSetter interface {
	SetBestScore(best int)
}

// Option configures a Session.
type Option func(*Session)

// WithKeeper sets the best score keeper.
func WithKeeper(k BestScoreKeeper) Option {
	return func(s *Session) { s.keeper = k }
}

// WithLedger sets where finished runs are written.
func WithLedger(l RunLedger) Option {
	return func(s *Session) { s.ledger = l }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeeder sets how each round's seed is chosen. The default keeps the
// runtime seed for the first round and advances it by one per retry.
func WithSeeder(f func(round int, base int64) int64) Option {
	return func(s *Session) { s.seeder = f }
}

// Session drives rounds of a single game for one player.
type Session struct {
	game    registry.Game
	keeper  BestScoreKeeper
	ledger  RunLedger
	logger  *log.Logger
	seeder  func(round int, base int64) int64
	runtime core.RuntimeConfig

	best     int
	round    int
	runID    string
	over     bool
	final    int
	recorded bool
	newBest  bool
}

// New wraps game. Call Start before the first Step.
func New(game registry.Game, opts ...Option) *Session {
	s := &Session{
		game:   game,
		logger: log.New(io.Discard),
		seeder: func(round int, base int64) int64 { return base + int64(round) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the best score and begins the first round.
func (s *Session) Start(rt core.RuntimeConfig) {
	s.runtime = rt.Normalized()
	if s.keeper != nil {
		s.best = s.keeper.Load()
	}
	s.round = 0
	s.begin()
}

func (s *Session) begin() {
	rt := s.runtime
	rt.Seed = s.seeder(s.round, s.runtime.Seed)

	s.runID = uuid.NewString()
	s.over = false
	s.final = 0
	s.recorded = false
	s.newBest = false

	if setter, ok := s.game.(bestScoreSetter); ok {
		setter.SetBestScore(s.best)
	}
	s.game.Reset(rt)
	s.logger.Debug("round started", "game", s.game.ID(), "run", s.runID, "round", s.round, "seed", rt.Seed)
}

// Step advances the current round. Restart pressed on a finished round
// is treated as DecisionRetry.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.over {
		if in.Has(core.ActionRestart) {
			s.Decide(DecisionRetry)
			return core.StepResult{State: s.game.State()}
		}
		return core.StepResult{State: s.game.State()}
	}

	res := s.game.Step(in)
	if res.State.GameOver {
		s.finish(res.State.Score)
	}
	return res
}

// finish runs exactly once per round.
func (s *Session) finish(score int) {
	s.over = true
	s.final = score
	if s.recorded {
		return
	}
	s.recorded = true

	if s.keeper != nil && s.keeper.Record(score) {
		s.newBest = true
	}
	if score > s.best {
		s.best = score
		s.newBest = true
	}
	if setter, ok := s.game.(bestScoreSetter); ok {
		setter.SetBestScore(s.best)
	}

	if s.ledger != nil && score > 0 {
		if _, err := s.ledger.SaveRun(s.game.ID(), s.runID, score); err != nil {
			s.logger.Warn("run not saved", "game", s.game.ID(), "run", s.runID, "err", err)
		}
	}
	s.logger.Info("round over", "game", s.game.ID(), "run", s.runID, "score", score, "best", s.best)
}

// GameOver reports the final score once the round has ended.
func (s *Session) GameOver() (score int, over bool) {
	return s.final, s.over
}

// Decide applies the host's answer to a finished round and reports
// whether the session continues. Retry on a running round is ignored.
func (s *Session) Decide(d Decision) bool {
	switch d {
	case DecisionRetry:
		if !s.over {
			return true
		}
		s.round++
		s.begin()
		return true
	default:
		return false
	}
}

// Best returns the best score known to the session.
func (s *Session) Best() int { return s.best }

// NewBest reports whether the finished round set a new best.
func (s *Session) NewBest() bool { return s.newBest }

// RunID returns the id of the current round.
func (s *Session) RunID() string { return s.runID }

// Round returns the zero-based round number.
func (s *Session) Round() int { return s.round }

// Game returns the wrapped round.
func (s *Session) Game() registry.Game { return s.game }

// Runtime returns the runtime config of the session.
func (s *Session) Runtime() core.RuntimeConfig { return s.runtime }

// Resize changes the screen size. A running round restarts at the new
// size; a finished round keeps its result on screen.
func (s *Session) Resize(w, h int) {
	s.runtime.ScreenW = w
	s.runtime.ScreenH = h
	if !s.over {
		s.begin()
	}
}
