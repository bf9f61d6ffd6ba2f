package core

import (
	"context"

	"github.com/huangsam/repochurn/internal/contract"
	"github.com/sirupsen/logrus"
)

// Context keys for per-task values
type contextKey string

const taskLoggerKey contextKey = "taskLogger"

// withTaskLogger stores a logger carrying the task's fields in the context
func withTaskLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, taskLoggerKey, entry)
}

// taskLogger returns the task logger from context, or the process logger
func taskLogger(ctx context.Context) *logrus.Entry {
	if entry, ok := ctx.Value(taskLoggerKey).(*logrus.Entry); ok && entry != nil {
		return entry
	}
	return logrus.NewEntry(contract.Log())
}
