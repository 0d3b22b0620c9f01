package workout

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/faizmokh/pushups/internal/files"
)

// Writer persists the full record history, replacing whatever was stored.
type Writer struct {
	manager *files.Manager
}

// NewWriter wires the dependencies required to overwrite the data file.
func NewWriter(manager *files.Manager) *Writer {
	return &Writer{manager: manager}
}

// Save serializes records as a compact JSON array and overwrites the data file.
func (w *Writer) Save(ctx context.Context, records []Record) error {
	if w == nil || w.manager == nil {
		return errors.New("writer not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if records == nil {
		records = []Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return &WriteError{Path: w.manager.Path(), Err: err}
	}
	if err := w.manager.Write(data); err != nil {
		return &WriteError{Path: w.manager.Path(), Err: err}
	}
	return nil
}
