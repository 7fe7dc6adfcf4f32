package repos

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Document is the durable home of one entity kind's collection: a single
// serialized JSON array that is always read and written whole.
type Document interface {
	Kind() string
	// Load returns the raw document, creating an empty collection if absent.
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

var emptyCollection = []byte("[]")

// FileDocument keeps the collection in <dir>/<kind>.json.
type FileDocument struct {
	kind string
	path string
}

func NewFileDocument(dir, kind string) *FileDocument {
	return &FileDocument{kind: kind, path: filepath.Join(dir, kind+".json")}
}

func (d *FileDocument) Kind() string { return d.kind }
func (d *FileDocument) Path() string { return d.path }

func (d *FileDocument) Load(_ context.Context) ([]byte, error) {
	b, err := os.ReadFile(d.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := d.write(emptyCollection); err != nil {
			return nil, err
		}
		return emptyCollection, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", d.path, err)
	}
	return b, nil
}

func (d *FileDocument) Save(_ context.Context, data []byte) error {
	return d.write(data)
}

// write replaces the file through a temp file + rename in the same directory.
func (d *FileDocument) write(data []byte) error {
	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp := d.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, d.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", d.path, err)
	}
	return nil
}
