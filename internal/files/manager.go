package files

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Manager owns the location of the data file and the raw I/O against it.
type Manager struct {
	path string
}

// NewManager constructs a Manager for the data file at path. If path is empty,
// it falls back to DefaultDataFile.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		path = DefaultDataFile
	}
	path, err := NormalizePath(path)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	return &Manager{path: abs}, nil
}

// Path returns the absolute path to the data file.
func (m *Manager) Path() string {
	return m.path
}

// Read returns the full contents of the data file. A missing file is not an
// error: it reads as empty content.
func (m *Manager) Read() ([]byte, error) {
	if m == nil {
		return nil, errors.New("files.Manager is nil")
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read data file: %w", err)
	}
	return data, nil
}

// Write replaces the data file with data. The content is written to a temp
// file in the same directory and renamed over the target, so the file is
// either fully old or fully new.
func (m *Manager) Write(data []byte) (err error) {
	if m == nil {
		return errors.New("files.Manager is nil")
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".pushups-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		// Only fails with ErrNotExist once the rename went through.
		if rmErr := os.Remove(temp.Name()); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			err = multierr.Append(err, rmErr)
		}
	}()

	if _, err := temp.Write(data); err != nil {
		return multierr.Combine(fmt.Errorf("write temp file: %w", err), temp.Close())
	}
	if err := temp.Sync(); err != nil {
		return multierr.Combine(fmt.Errorf("sync temp file: %w", err), temp.Close())
	}
	if err := temp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	mode := os.FileMode(filePermissions)
	if info, statErr := os.Stat(m.path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(temp.Name(), m.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}
