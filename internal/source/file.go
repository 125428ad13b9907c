package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"txboard/internal/core"
)

// FileSource reads the dataset document from a local JSON file.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(ctx context.Context) (core.Dataset, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return core.Dataset{}, fmt.Errorf("open dataset file: %w", err)
	}
	defer f.Close()

	ds, err := decodeDocument(f)
	if err != nil {
		return core.Dataset{}, fmt.Errorf("read dataset file %s: %w", s.path, err)
	}

	slog.InfoContext(ctx, "Dataset loaded from file",
		"path", s.path,
		"customers", len(ds.Customers),
		"transactions", len(ds.Transactions))
	return ds, nil
}
