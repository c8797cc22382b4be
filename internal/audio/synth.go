package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a finite oscillator with an optional linear pitch slide.
type tone struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	total    int
	pos      int
	phase    float64
	noise    uint32
}

// NewTone returns a streamer that sweeps from one frequency to another
// over d and then ends.
func NewTone(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &tone{from: from, to: to, wave: wave, rate: rate, total: rate.N(d), noise: 0x9e3779b9}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}
		progress := float64(o.pos) / float64(o.total)
		freq := o.from + (o.to-o.from)*progress

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			o.noise ^= o.noise << 13
			o.noise ^= o.noise >> 17
			o.noise ^= o.noise << 5
			v = float64(o.noise)/float64(math.MaxUint32)*2 - 1
		}

		// Linear fade out keeps the tail click free.
		v *= 1 - progress

		samples[i][0] = v
		samples[i][1] = v
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

// withVolume scales s linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// synthEffect builds the stand-in for a missing effect file.
func synthEffect(e Effect, rate beep.SampleRate) beep.Streamer {
	switch e {
	case EffectShoot:
		return NewTone(1200, 600, 80*time.Millisecond, WaveSquare, rate)
	case EffectExplosion:
		return NewTone(0, 0, 180*time.Millisecond, WaveNoise, rate)
	case EffectBossExplosion:
		return beep.Mix(
			withVolume(NewTone(0, 0, 900*time.Millisecond, WaveNoise, rate), 0.5),
			withVolume(NewTone(90, 40, 900*time.Millisecond, WaveSine, rate), 0.5),
		)
	case EffectHeal:
		return beep.Seq(
			NewTone(660, 660, 90*time.Millisecond, WaveSine, rate),
			NewTone(990, 990, 140*time.Millisecond, WaveSine, rate),
		)
	case EffectSpread:
		return NewTone(440, 1320, 200*time.Millisecond, WaveSine, rate)
	case EffectHurt:
		return NewTone(220, 110, 150*time.Millisecond, WaveSaw, rate)
	case EffectLaser:
		return NewTone(300, 300, 250*time.Millisecond, WaveSaw, rate)
	case EffectGameOver:
		return beep.Seq(
			NewTone(392, 392, 250*time.Millisecond, WaveSquare, rate),
			NewTone(330, 330, 250*time.Millisecond, WaveSquare, rate),
			NewTone(262, 196, 600*time.Millisecond, WaveSquare, rate),
		)
	default:
		return beep.Silence(0)
	}
}

// theme is an endless synthesized background loop: a bass pulse under
// an arpeggio, one pattern per track index.
type theme struct {
	rate  beep.SampleRate
	notes []float64
	step  int
	pos   int
}

var themeNotes = [][]float64{
	{110, 165, 220, 165},
	{98, 147, 196, 247},
	{131, 196, 262, 196, 175, 262},
}

func newTheme(index int, rate beep.SampleRate) beep.Streamer {
	return &theme{rate: rate, notes: themeNotes[index%len(themeNotes)], step: rate.N(250 * time.Millisecond)}
}

func (t *theme) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := t.notes[(t.pos/t.step)%len(t.notes)]
		sec := float64(t.pos) / float64(t.rate)
		within := float64(t.pos%t.step) / float64(t.step)

		bass := 0.5 * math.Sin(2*math.Pi*t.notes[0]/2*sec)
		lead := 0.3 * math.Sin(2*math.Pi*note*2*sec) * (1 - within)
		v := 0.25 * (bass + lead)

		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *theme) Err() error { return nil }
