package store

import (
	"fmt"

	"go.uber.org/zap"
)

// BackendType selects the Documents backend.
type BackendType string

const (
	MemoryBackend BackendType = "memory"
	SQLiteBackend BackendType = "sqlite"
	RedisBackend  BackendType = "redis"
)

// IsValid reports whether the backend type is known.
func (bt BackendType) IsValid() bool {
	switch bt {
	case MemoryBackend, SQLiteBackend, RedisBackend:
		return true
	default:
		return false
	}
}

// BackendConfig holds the settings needed to open a backend.
type BackendConfig struct {
	Type       BackendType
	SQLitePath string
	RedisURL   string
}

// Open creates the configured Documents backend and wraps it in a
// DocumentStore.
func Open(cfg BackendConfig, logger *zap.Logger) (*DocumentStore, error) {
	if !cfg.Type.IsValid() {
		return nil, fmt.Errorf("invalid store backend: %q", cfg.Type)
	}

	var docs Documents
	switch cfg.Type {
	case MemoryBackend:
		docs = NewMemoryDocuments()
	case SQLiteBackend:
		s, err := NewSQLiteDocuments(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		docs = s
	case RedisBackend:
		r, err := NewRedisDocuments(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("open redis backend: %w", err)
		}
		docs = r
	}

	logger.Info("store_backend_initialized",
		zap.String("backend", string(cfg.Type)),
	)
	return New(docs), nil
}
