package hotconfig

import (
	"os"
	"time"
)

// Stamp identifies one observed on-disk state of a tracked file. Two stamps
// compare equal when neither the modification time nor the size moved.
type Stamp struct {
	ModTime time.Time
	Size    int64
}

// Equal reports whether both stamps describe the same file state.
func (s Stamp) Equal(other Stamp) bool {
	return s.ModTime.Equal(other.ModTime) && s.Size == other.Size
}

// Source abstracts the filesystem behind the store so tests can inject a
// fake file set instead of touching the real disk.
type Source interface {
	Stat(path string) (Stamp, error)
	ReadFile(path string) ([]byte, error)
}

// OSSource reads from the real filesystem. It is the default Source.
type OSSource struct{}

func (OSSource) Stat(path string) (Stamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Stamp{}, err
	}
	return Stamp{ModTime: info.ModTime(), Size: info.Size()}, nil
}

func (OSSource) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
