package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Local stores uploaded file content on disk under a base directory and
// hands back the generated file name as the opaque reference.
type Local struct {
	dir string
}

// NewLocal ensures the base directory exists and returns a Local store.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

// Save writes the content to a uuid-named file, keeping the original
// extension, and returns the file name.
func (l *Local) Save(name string, content io.Reader) (string, error) {
	ref := uuid.New().String() + filepath.Ext(name)

	f, err := os.Create(filepath.Join(l.dir, ref))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return ref, nil
}
