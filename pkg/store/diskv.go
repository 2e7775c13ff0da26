package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

const tempDirName = ".tmp"

// Diskv stores each key as a file under a base directory.
type Diskv struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskv creates a diskv-backed Blob rooted at basePath.
func NewDiskv(basePath string) (*Diskv, error) {
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Diskv{d: diskv.New(diskv.Options{
		BasePath: basePath,
		TempDir:  filepath.Join(basePath, tempDirName),
	}), basePath: basePath}, nil
}

// Read always goes to disk so writes from other processes are seen.
func (p *Diskv) Read(key string) ([]byte, error) {
	rc, err := p.d.ReadStream(key, true)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer rc.Close()

	val, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (p *Diskv) Write(key string, value []byte) error {
	return p.d.Write(key, value)
}

// Close is a no-op; diskv holds no open handles between calls.
func (p *Diskv) Close() error {
	return nil
}

func (p *Diskv) Name() string {
	return BackendDiskv
}

func (p *Diskv) Location() string {
	return p.basePath
}

// BasePath is the directory holding the key files.
func (p *Diskv) BasePath() string {
	return p.basePath
}
