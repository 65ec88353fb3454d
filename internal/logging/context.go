package logging

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// With creates a child logger with additional fields and returns a new context
func With(ctx context.Context, fields map[string]any) context.Context {
	logger := FromContext(ctx)
	childCtx := logger.With()

	for k, v := range fields {
		childCtx = childCtx.Interface(k, v)
	}

	childLogger := childCtx.Logger()
	return WithContext(ctx, childLogger)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithContainerID creates a child logger with a container_id field
func WithContainerID(ctx context.Context, containerID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("container_id", containerID).Logger()
	return WithContext(ctx, childLogger)
}

// WithWindow creates a child logger with the native handle and class of a window
func WithWindow(ctx context.Context, handle uint64, className string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().
		Str("handle", "0x"+strconv.FormatUint(handle, 16)).
		Str("class", className).
		Logger()
	return WithContext(ctx, childLogger)
}
