// Package ctxkey defines typed context keys shared by middleware and the
// response helpers.
package ctxkey

type key string

const (
	// KeyRequestID holds the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyLogger holds the per-request *slog.Logger.
	KeyLogger key = "logger"
)
