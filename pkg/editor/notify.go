package editor

import (
	"log/slog"

	"github.com/caarlosandree/editor-pdf/pkg/core"
)

// LogNotifier surfaces notices through a structured logger. It is the
// default Notifier when the embedding application supplies nothing richer.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier wraps logger; a nil logger falls back to slog.Default.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(msg string) {
	n.logger.Info("notice", "kind", "success", "message", msg)
}

func (n *LogNotifier) Error(msg string) {
	n.logger.Warn("notice", "kind", "error", "message", msg)
}

var _ core.Notifier = (*LogNotifier)(nil)
