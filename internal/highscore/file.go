package highscore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultFileName is the conventional file name of the file backend.
const DefaultFileName = "highscore.txt"

// FileBackend stores the best score as a single decimal integer in a
// text file.
type FileBackend struct {
	Path string
}

// NewFileBackend returns a backend for path, expanding a leading ~.
func NewFileBackend(path string) *FileBackend {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &FileBackend{Path: path}
}

// Load reads the stored score.
func (b *FileBackend) Load() (int, error) {
	data, err := os.ReadFile(b.Path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", b.Path, err)
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("highscore: corrupt file %s: %w", b.Path, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("highscore: corrupt file %s: negative score %d", b.Path, score)
	}
	return score, nil
}

// Save writes score through a temp file so a crash never leaves a
// half-written file behind.
func (b *FileBackend) Save(score int) error {
	dir := filepath.Dir(b.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("highscore: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: cannot write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: cannot close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), b.Path); err != nil {
		return fmt.Errorf("highscore: cannot replace %s: %w", b.Path, err)
	}
	return nil
}
