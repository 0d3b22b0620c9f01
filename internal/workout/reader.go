package workout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/faizmokh/pushups/internal/files"
)

// Reader loads the stored record history.
type Reader struct {
	manager *files.Manager
}

// NewReader wires a reader using the shared files.Manager.
func NewReader(manager *files.Manager) *Reader {
	return &Reader{manager: manager}
}

// Load returns every stored record in file order. A missing or empty file
// yields an empty slice.
func (r *Reader) Load(ctx context.Context) ([]Record, error) {
	if r == nil || r.manager == nil {
		return nil, errors.New("reader not initialized with file manager")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := r.manager.Read()
	if err != nil {
		return nil, err
	}
	return decodeRecords(r.manager.Path(), data)
}

func decodeRecords(path string, data []byte) ([]Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []Record{}, nil
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if records == nil {
		// A literal null decodes to a nil slice.
		records = []Record{}
	}
	return records, nil
}
