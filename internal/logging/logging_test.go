package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/csg33k/semogye/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		if got := logging.ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_Format(t *testing.T) {
	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("hello", "k", 1)
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("json handler wrote %q: %v", buf.String(), err)
	}
	if rec["msg"] != "hello" {
		t.Errorf("msg = %v", rec["msg"])
	}

	buf.Reset()
	logging.New("warn", "text", &buf).Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info record written at warn level: %q", buf.String())
	}
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New("debug", "json", &buf)
	h := logging.AccessLog(log, 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/salary?salary=1", nil)
	req.Header.Set("HX-Request", "true")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("access log %q: %v", buf.String(), err)
	}
	if rec["path"] != "/salary" || rec["method"] != "GET" || rec["status"] != float64(418) ||
		rec["bytes"] != float64(15) || rec["htmx"] != true {
		t.Errorf("record = %v", rec)
	}
}

func TestAccessLog_ServerErrorIsWarn(t *testing.T) {
	var buf bytes.Buffer
	h := logging.AccessLog(logging.New("info", "text", &buf), 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Errorf("log = %q", buf.String())
	}
}
