package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// WikiServer is a canned-page stand-in for the wiki origin. Unknown paths
// return 404 so tests can drive upstream failures per page.
type WikiServer struct {
	Server *httptest.Server

	mu    sync.Mutex
	pages map[string]string
	hits  map[string]int
}

// NewWikiServer starts the fake origin and closes it on test cleanup.
func NewWikiServer(t *testing.T) *WikiServer {
	t.Helper()

	ws := &WikiServer{
		pages: make(map[string]string),
		hits:  make(map[string]int),
	}
	ws.Server = httptest.NewServer(http.HandlerFunc(ws.serve))
	t.Cleanup(ws.Server.Close)
	return ws
}

func (ws *WikiServer) serve(w http.ResponseWriter, r *http.Request) {
	ws.mu.Lock()
	ws.hits[r.URL.Path]++
	page, ok := ws.pages[r.URL.Path]
	ws.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// SetPage registers the HTML served for a path.
func (ws *WikiServer) SetPage(path, html string) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.pages[path] = html
}

// Hits reports how many requests a path has received.
func (ws *WikiServer) Hits(path string) int {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.hits[path]
}

// URL is the fake origin's base URL.
func (ws *WikiServer) URL() string {
	return ws.Server.URL
}
