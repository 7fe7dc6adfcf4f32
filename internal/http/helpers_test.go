package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"medcatalog/internal/config"
	"medcatalog/internal/http/handlers"
	"medcatalog/internal/repos"
)

const adminPassword = "test-secret"

type testApp struct {
	app    *fiber.App
	stores *repos.Stores
	cfg    config.Config
}

// listingsFile is where the file backend keeps listings for this app.
func (a *testApp) listingsFile() string { return filepath.Join(a.cfg.DataDir, repos.KindListings+".json") }

func newTestApp(t *testing.T, mutate ...func(*config.Config)) *testApp {
	t.Helper()
	cfg := config.Defaults()
	cfg.AdminPassword = adminPassword
	cfg.DataDir = t.TempDir()
	cfg.StaticDir = "../../web/static"
	cfg.TemplatesDir = "../../web/templates"
	for _, m := range mutate {
		m(&cfg)
	}
	stores, err := repos.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open stores: %v", err)
	}
	t.Cleanup(func() { _ = stores.Close() })

	engine := html.New(cfg.TemplatesDir, ".html")
	app := handlers.NewApp(cfg, handlers.NewDeps(stores, cfg), engine)
	return &testApp{app: app, stores: stores, cfg: cfg}
}

// do sends a request; password "" sends no credential header.
func (a *testApp) do(t *testing.T, method, path, body, password string) (*http.Response, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if password != "" {
		req.Header.Set(handlers.HeaderAdminPassword, password)
	}
	resp, err := a.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	b, _ := io.ReadAll(resp.Body)
	return resp, b
}

type errorBody struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

func decodeInto(t *testing.T, b []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("decode %s: %v", b, err)
	}
}

type logEntry struct {
	Level  string         `json:"level"`
	Action string         `json:"action"`
	Status int            `json:"status"`
	Fields map[string]any `json:"fields"`
}

type lockedBuf struct {
	b  *bytes.Buffer
	mu *sync.Mutex
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func captureLogs(t *testing.T, fn func()) []logEntry {
	t.Helper()
	var buf bytes.Buffer
	var mu sync.Mutex
	oldW := log.Writer()
	oldFlags := log.Flags()
	log.SetOutput(&lockedBuf{b: &buf, mu: &mu})
	log.SetFlags(0)
	defer func() {
		log.SetOutput(oldW)
		log.SetFlags(oldFlags)
	}()

	fn()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var e logEntry
		if err := json.Unmarshal([]byte(strings.TrimSpace(line)), &e); err == nil && e.Action != "" {
			entries = append(entries, e)
		}
	}
	return entries
}

func hasAction(entries []logEntry, action string) bool {
	_, ok := findAction(entries, action)
	return ok
}

func findAction(entries []logEntry, action string) (logEntry, bool) {
	for _, e := range entries {
		if e.Action == action {
			return e, true
		}
	}
	return logEntry{}, false
}
