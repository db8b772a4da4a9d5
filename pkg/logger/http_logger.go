package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/fx"
	"gopkg.in/natefinch/lumberjack.v2"
)

// HTTPLogger writes one access-log line per request to a rotating file.
// When HTTP_LOG_FILE is unset it discards everything.
type HTTPLogger struct {
	mu     sync.Mutex
	out    io.Writer
	closer io.Closer
}

// NewHTTPLogger creates an access logger from HTTP_LOG_FILE
func NewHTTPLogger() *HTTPLogger {
	path := os.Getenv("HTTP_LOG_FILE")
	if path == "" {
		return &HTTPLogger{out: io.Discard}
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	}
	return &HTTPLogger{out: w, closer: w}
}

// NewHTTPLoggerWriter creates an access logger writing to w
func NewHTTPLoggerWriter(w io.Writer) *HTTPLogger {
	return &HTTPLogger{out: w}
}

// LogRequest appends a combined-style access line
func (h *HTTPLogger) LogRequest(ip, method, uri string, status int, latency time.Duration, userAgent, requestID string) {
	if h == nil {
		return
	}

	line := fmt.Sprintf("%s %s %s %s %d %s %q %s\n",
		time.Now().UTC().Format(time.RFC3339),
		ip, method, uri, status, latency.Round(time.Microsecond), userAgent, requestID)

	h.mu.Lock()
	defer h.mu.Unlock()
	_, _ = io.WriteString(h.out, line)
}

// Close releases the underlying file, if any
func (h *HTTPLogger) Close() error {
	if h == nil || h.closer == nil {
		return nil
	}
	return h.closer.Close()
}

// RegisterHTTPLoggerLifecycle closes the access log on shutdown
func RegisterHTTPLoggerLifecycle(lc fx.Lifecycle, h *HTTPLogger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return h.Close()
		},
	})
}
