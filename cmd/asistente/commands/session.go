// Package commands holds the cobra subcommands of the asistente CLI.
package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/castellanodev/asistente/internal/analytics"
	"github.com/castellanodev/asistente/internal/assistant"
	"github.com/castellanodev/asistente/internal/logger"
	"github.com/castellanodev/asistente/internal/models"
	"github.com/castellanodev/asistente/internal/store"
	"github.com/castellanodev/asistente/internal/tips"
)

// storeFlags are the backend options shared by all subcommands.
type storeFlags struct {
	backend  string
	dbPath   string
	redisURL string
	tipsFile string
	debug    bool
}

func (f *storeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.backend, "backend", "sqlite", "Store backend: memory, sqlite or redis")
	cmd.Flags().StringVar(&f.dbPath, "db-path", "asistente.db", "SQLite database path")
	cmd.Flags().StringVar(&f.redisURL, "redis-url", "redis://localhost:6379/0", "Redis connection URL")
	cmd.Flags().StringVar(&f.tipsFile, "tips-file", "", "YAML file overriding the built-in tips")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "Enable debug logging")
}

// session wires a full interpreter against a local backend.
type session struct {
	interpreter *assistant.Interpreter
	store       store.Store
	logger      *zap.Logger
}

func newSession(f *storeFlags) (*session, error) {
	zapLogger, err := logger.NewDevelopmentLogger(f.debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	st, err := store.Open(store.BackendConfig{
		Type:       store.BackendType(f.backend),
		SQLitePath: f.dbPath,
		RedisURL:   f.redisURL,
	}, zapLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	tipProvider := tips.NewProvider()
	if f.tipsFile != "" {
		if err := tipProvider.LoadFile(f.tipsFile); err != nil {
			_ = st.Close()
			return nil, fmt.Errorf("failed to load tips file: %w", err)
		}
	}

	it := assistant.New(st, analytics.NewService(st), tipProvider, zapLogger)
	return &session{interpreter: it, store: st, logger: zapLogger}, nil
}

func (s *session) close() {
	if err := s.store.Close(); err != nil {
		s.logger.Warn("failed_to_close_store", zap.Error(err))
	}
	_ = logger.Sync(s.logger)
}

// printMessages writes the replies the way the web chat renders them, with
// chart payloads flattened to label/value lines.
func printMessages(w io.Writer, messages []models.Message) {
	for _, m := range messages {
		fmt.Fprintln(w, m.Text)
		if m.Chart != nil {
			printChart(w, m.Chart)
		}
		fmt.Fprintln(w)
	}
}

func printChart(w io.Writer, chart *models.ChartData) {
	switch chart.Kind {
	case models.ChartExpense:
		for _, p := range chart.Expense {
			fmt.Fprintf(w, "  %s: %.2f\n", p.Label, p.Amount)
		}
	case models.ChartWellness:
		for _, p := range chart.Wellness {
			fmt.Fprintf(w, "  %s: %d\n", p.Label, p.Value)
		}
	}
}
