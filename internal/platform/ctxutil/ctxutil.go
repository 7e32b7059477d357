// Copyright (c) 2026 TSAK. All rights reserved.
// Author: it@tsak.or.kr

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/tsakorea/tsak-api/internal/platform/ctxkey"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Media Resolution

// WithBaseURL returns a new context carrying the request's public base URL
// (e.g. "https://api.tsak.or.kr").
func WithBaseURL(ctx context.Context, base string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyBaseURL, base)
}

// GetBaseURL retrieves the request's public base URL from the context.
// Returns an empty string when the request context carries none, in which
// case stored media paths are served as-is.
func GetBaseURL(ctx context.Context) string {
	base, _ := ctx.Value(ctxkey.KeyBaseURL).(string)
	return base
}
