package notify

import (
	"context"

	"go.uber.org/zap"
)

// Log is the in-process channel: state changes land in the structured log
// even when no external channel is configured.
type Log struct {
	Logger *zap.Logger
}

func NewLog(logger *zap.Logger) *Log {
	return &Log{Logger: logger}
}

func (l *Log) Send(ctx context.Context, title, text string) error {
	l.Logger.Info("status_change",
		zap.String("title", title),
		zap.String("text", text),
	)
	return nil
}
