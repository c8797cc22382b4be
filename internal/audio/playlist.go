package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// DefaultTracks are the background tracks looked up in the asset dir.
var DefaultTracks = []string{"BGmusik.mp3", "BGmusik2.mp3", "BGmusik3.mp3"}

// Playlist rotates through background tracks, one per round.
type Playlist struct {
	tracks []string
	next   int
}

// NewPlaylist returns a playlist over tracks, starting at the first.
func NewPlaylist(tracks ...string) *Playlist {
	if len(tracks) == 0 {
		tracks = DefaultTracks
	}
	return &Playlist{tracks: append([]string(nil), tracks...)}
}

// Advance returns the track for the next round and its index.
func (p *Playlist) Advance() (track string, index int) {
	index = p.next
	p.next = (p.next + 1) % len(p.tracks)
	return p.tracks[index], index
}

// Peek returns the index Advance will return next.
func (p *Playlist) Peek() int { return p.next }

// Len returns the number of tracks.
func (p *Playlist) Len() int { return len(p.tracks) }

// decodeFile opens an mp3 or wav file by extension.
func decodeFile(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		s      beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		s, format, err = mp3.Decode(f)
	case ".wav":
		s, format, err = wav.Decode(f)
	default:
		err = fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	return s, format, nil
}

// loadBuffer decodes a whole file into memory at the output rate.
func loadBuffer(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	s, format, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	out := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(out)
	buf.Append(resampled(s, format.SampleRate, rate))
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", path, err)
	}
	return buf, nil
}

func resampled(s beep.Streamer, from, to beep.SampleRate) beep.Streamer {
	if from == to {
		return s
	}
	return beep.Resample(4, from, to, s)
}
