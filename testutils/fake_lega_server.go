package testutils

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

//go:embed legadata
var legadata embed.FS

// StrategyWrite records one call to the fake write endpoint.
type StrategyWrite struct {
	PlayerID string
	Body     map[string]any
}

// FakeLegaServer serves the embedded league fixtures and records strategy
// writes. Set FailWrites or FailFetches to make the respective endpoints
// report failure.
type FakeLegaServer struct {
	s *httptest.Server

	mu          sync.Mutex
	writes      []StrategyWrite
	failWrites  bool
	failFetches bool
}

func NewFakeLegaServer() *FakeLegaServer {
	f := &FakeLegaServer{}

	r := chi.NewRouter()
	r.Route("/v1/leagues/{leagueID}", func(r chi.Router) {
		r.Get("/players/owned", f.ownedHandler)
		r.Get("/players/free", f.freeHandler)
		r.Get("/membership", f.membershipHandler)
		r.Put("/players/{playerID}/strategy", f.strategyHandler)
	})

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeLegaServer) Close() {
	f.s.Close()
}

func (f *FakeLegaServer) URL() string {
	return f.s.URL
}

func (f *FakeLegaServer) FailWrites(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWrites = fail
}

func (f *FakeLegaServer) FailFetches(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failFetches = fail
}

// Writes returns a copy of every strategy write received so far.
func (f *FakeLegaServer) Writes() []StrategyWrite {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]StrategyWrite(nil), f.writes...)
}

func (f *FakeLegaServer) ownedHandler(w http.ResponseWriter, r *http.Request) {
	f.serveCollection(w, "owned.json")
}

func (f *FakeLegaServer) freeHandler(w http.ResponseWriter, r *http.Request) {
	f.serveCollection(w, "free.json")
}

func (f *FakeLegaServer) serveCollection(w http.ResponseWriter, name string) {
	f.mu.Lock()
	fail := f.failFetches
	f.mu.Unlock()

	if fail {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success": false, "message": "league temporarily unavailable"}`))
		return
	}
	serveFile(w, name)
}

func (f *FakeLegaServer) membershipHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"success": true, "data": {"role": "member"}}`))
}

func (f *FakeLegaServer) strategyHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	fail := f.failWrites
	if !fail {
		f.writes = append(f.writes, StrategyWrite{
			PlayerID: chi.URLParam(r, "playerID"),
			Body:     parsed,
		})
	}
	f.mu.Unlock()

	if fail {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success": false, "message": "write rejected"}`))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"success": true}`))
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := legadata.ReadFile(fmt.Sprintf("legadata/%s", name))
	if err != nil {
		log.Printf("error reading legadata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
