// Package logging builds the process logger and the HTTP access log.
package logging

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// New returns a slog.Logger writing text or JSON records at level to w.
// Unknown levels fall back to info and unknown formats to text.
func New(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func ParseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// captureWriter records the status and size of a response.
type captureWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	n, err := cw.ResponseWriter.Write(b)
	cw.bytes += n
	return n, err
}

// AccessLog logs one record per request. Requests slower than slow are
// logged at warn; slow <= 0 disables that.
func AccessLog(log *slog.Logger, slow time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			next.ServeHTTP(cw, r)

			elapsed := time.Since(start)
			level := slog.LevelInfo
			if cw.status >= http.StatusInternalServerError || (slow > 0 && elapsed >= slow) {
				level = slog.LevelWarn
			}
			log.LogAttrs(r.Context(), level, "request done",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", cw.status),
				slog.Int("bytes", cw.bytes),
				slog.Duration("elapsed", elapsed),
				slog.Bool("htmx", r.Header.Get("HX-Request") == "true"),
			)
		})
	}
}
