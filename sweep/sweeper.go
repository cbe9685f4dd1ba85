package sweep

import "log/slog"

// Sweeper runs the matrix generators and batch pricers with a specific
// logger for fallback diagnostics. The zero value logs to slog.Default().
type Sweeper struct {
	Logger *slog.Logger
}

func New(logger *slog.Logger) *Sweeper {
	return &Sweeper{Logger: logger}
}

func (s *Sweeper) logger() *slog.Logger {
	if s == nil || s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

var defaultSweeper = &Sweeper{}
