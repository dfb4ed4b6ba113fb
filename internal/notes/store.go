package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Store appends quick notes as plain-text files named by creation time.
// Same-second collisions overwrite, which is acceptable for voice notes.
type Store struct {
	Dir string

	now func() time.Time
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir, now: time.Now}
}

// Add writes text to a new timestamped file and returns its path.
// The notes directory is created on first use.
func (s *Store) Add(text string) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create notes dir: %w", err)
	}

	name := filepath.Join(s.Dir, s.now().Format("note_20060102_150405.txt"))
	if err := os.WriteFile(name, []byte(text+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("write note: %w", err)
	}

	return name, nil
}
