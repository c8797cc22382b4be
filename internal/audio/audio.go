// Package audio plays sound effects for round events and rotates the
// background music between rounds. Missing files fall back to
// synthesized tones; a missing audio device falls back to silence.
package audio

import (
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// SampleRate is the output rate of every sink.
const SampleRate = beep.SampleRate(44100)

// Effect is a sound effect.
type Effect int

const (
	EffectNone Effect = iota
	EffectShoot
	EffectExplosion
	EffectBossExplosion
	EffectHeal
	EffectSpread
	EffectHurt
	EffectLaser
	EffectGameOver
)

var effectNames = map[Effect]string{
	EffectShoot:         "shoot",
	EffectExplosion:     "explosion",
	EffectBossExplosion: "boss_explosion",
	EffectHeal:          "heal",
	EffectSpread:        "spread",
	EffectHurt:          "hurt",
	EffectLaser:         "laser",
	EffectGameOver:      "game_over",
}

func (e Effect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return "none"
}

// effectFiles are the file names looked up in the asset dir.
var effectFiles = map[Effect]string{
	EffectShoot:         "shoot.wav",
	EffectBossExplosion: "boss_explosion.wav",
	EffectHeal:          "heal.wav",
	EffectGameOver:      "GameOverfx.wav",
}

var effectVolumes = map[Effect]float64{
	EffectShoot:         0.4,
	EffectExplosion:     0.5,
	EffectBossExplosion: 0.9,
	EffectHeal:          0.5,
	EffectSpread:        0.5,
	EffectHurt:          0.6,
	EffectLaser:         0.4,
	EffectGameOver:      0.8,
}

// EffectFor maps a round event to the effect it triggers.
func EffectFor(ev core.Event) Effect {
	switch ev.Kind {
	case core.EventShot:
		return EffectShoot
	case core.EventEnemyDestroyed:
		return EffectExplosion
	case core.EventBossDestroyed:
		return EffectBossExplosion
	case core.EventHeal:
		return EffectHeal
	case core.EventSpread:
		return EffectSpread
	case core.EventPlayerHit, core.EventLaserHit:
		return EffectHurt
	case core.EventLaserOn:
		return EffectLaser
	case core.EventGameOver:
		return EffectGameOver
	default:
		return EffectNone
	}
}

// Sink receives streams to play.
type Sink interface {
	Play(s beep.Streamer)
	Clear()
}

// Silent discards everything.
type Silent struct{}

func (Silent) Play(beep.Streamer) {}
func (Silent) Clear() {}

var speakerOnce sync.Once

// Speaker plays through the default audio device via a shared mixer.
type Speaker struct {
	mixer *beep.Mixer
}

// NewSpeaker opens the audio device. The device can only be opened once
// per process; later calls reuse it.
func NewSpeaker() (*Speaker, error) {
	var err error
	mixer := &beep.Mixer{}
	speakerOnce.Do(func() {
		err = speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond))
	})
	if err != nil {
		return nil, err
	}
	speaker.Play(mixer)
	return &Speaker{mixer: mixer}, nil
}

func (s *Speaker) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *Speaker) Clear() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

// Options configures a Manager.
type Options struct {
	// AssetDir holds the effect and music files. Empty means synthesized
	// audio only.
	AssetDir string
	Tracks   []string
	Muted    bool
	Logger   *log.Logger
}

// Manager turns round events into sound and owns the music rotation.
type Manager struct {
	sink     Sink
	logger   *log.Logger
	assetDir string
	playlist *Playlist
	effects  map[Effect]*beep.Buffer
	music    *beep.Ctrl
	closer   io.Closer
	track    int
}

// NewManager builds a manager on sink, or on the speaker when sink is
// nil. A speaker that cannot open degrades to Silent.
func NewManager(sink Sink, opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Muted {
		sink = Silent{}
	}
	if sink == nil {
		sp, err := NewSpeaker()
		if err != nil {
			logger.Debug("audio device unavailable, running silent", "err", err)
			sink = Silent{}
		} else {
			sink = sp
		}
	}

	m := &Manager{
		sink:     sink,
		logger:   logger,
		assetDir: opts.AssetDir,
		playlist: NewPlaylist(opts.Tracks...),
		effects:  make(map[Effect]*beep.Buffer),
		track:    -1,
	}
	m.loadEffects()
	return m
}

func (m *Manager) loadEffects() {
	if m.assetDir == "" {
		return
	}
	for e, name := range effectFiles {
		buf, err := loadBuffer(filepath.Join(m.assetDir, name), SampleRate)
		if err != nil {
			m.logger.Debug("effect file unavailable, using synthesized tone", "effect", e, "err", err)
			continue
		}
		m.effects[e] = buf
	}
}

// Play starts one effect.
func (m *Manager) Play(e Effect) {
	if e == EffectNone {
		return
	}
	var s beep.Streamer
	if buf, ok := m.effects[e]; ok {
		s = buf.Streamer(0, buf.Len())
	} else {
		s = synthEffect(e, SampleRate)
	}
	m.sink.Play(withVolume(s, effectVolumes[e]))
}

// HandleEvents plays each distinct effect of one tick once.
func (m *Manager) HandleEvents(events []core.Event) {
	var seen [EffectGameOver + 1]bool
	for _, ev := range events {
		e := EffectFor(ev)
		if e == EffectNone || seen[e] {
			continue
		}
		seen[e] = true
		m.Play(e)
		if e == EffectGameOver {
			m.StopMusic()
		}
	}
}

// StartRound stops the current music and starts the next track of the
// rotation. The track index is returned.
func (m *Manager) StartRound() int {
	m.StopMusic()
	name, index := m.playlist.Advance()
	m.track = index

	var s beep.Streamer
	if m.assetDir != "" {
		if loop, closer, err := m.openTrack(filepath.Join(m.assetDir, name)); err == nil {
			s = loop
			m.closer = closer
		} else {
			m.logger.Debug("music file unavailable, using synthesized theme", "track", name, "err", err)
		}
	}
	if s == nil {
		s = newTheme(index, SampleRate)
	}

	m.music = &beep.Ctrl{Streamer: withVolume(s, 0.5)}
	m.sink.Play(m.music)
	return index
}

func (m *Manager) openTrack(path string) (beep.Streamer, io.Closer, error) {
	s, format, err := decodeFile(path)
	if err != nil {
		return nil, nil, err
	}
	return resampled(beep.Loop(-1, s), format.SampleRate, SampleRate), s, nil
}

// StopMusic silences the background track.
func (m *Manager) StopMusic() {
	if m.music != nil {
		ctrl := m.music
		// A nil streamer makes the mixer drop the control.
		speakerSafe(m.sink, func() { ctrl.Streamer = nil })
		m.music = nil
	}
	if m.closer != nil {
		m.closer.Close()
		m.closer = nil
	}
}

// Track returns the index of the playing track, or -1.
func (m *Manager) Track() int {
	if m.music == nil {
		return -1
	}
	return m.track
}

// Close stops everything.
func (m *Manager) Close() {
	m.StopMusic()
	m.sink.Clear()
}

// speakerSafe runs f under the speaker lock when the sink is the device.
func speakerSafe(sink Sink, f func()) {
	if _, ok := sink.(*Speaker); ok {
		speaker.Lock()
		defer speaker.Unlock()
	}
	f()
}
