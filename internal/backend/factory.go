package backend

import (
	"fmt"
	"log/slog"

	"txboard/internal/config"
	"txboard/internal/source"
	"txboard/internal/storage"
)

// Result holds the constructed dataset source and an optional cleanup
// function for the resources behind it.
type Result struct {
	Source  source.Source
	Cleanup func() error
}

// Factory builds dataset sources from configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// CreateSource builds the dataset source selected by cfg.DataBackend.
func (f *Factory) CreateSource(cfg *config.Config) (*Result, error) {
	switch cfg.DataBackend {
	case "file":
		f.logger.Info("Initialized file backend", "path", cfg.DataFile)
		return &Result{Source: source.NewFileSource(cfg.DataFile)}, nil

	case "http":
		f.logger.Info("Initialized http backend", "url", cfg.DataURL)
		return &Result{Source: source.NewHTTPSource(cfg.DataURL)}, nil

	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite repository: %w", err)
		}
		f.logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Source: repo, Cleanup: repo.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported data backend: %s", cfg.DataBackend)
	}
}
