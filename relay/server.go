// Package relay bridges the browser app to a running game instance through
// the Script Extender's file drop. The game-side script writes a party
// snapshot to a JSON file; the relay polls it and serves the last snapshot
// over local HTTP. Script execution goes the other way: the relay writes a
// command file and waits for a correlated result file.
package relay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	syncFileName   = "party_sync.json"
	cmdFileName    = "tav_cmd.json"
	resultFileName = "tav_result.json"
)

// Server serves the party-sync relay endpoints. Poll and exec intervals are
// fields so tests can shrink them.
type Server struct {
	syncFile   string
	cmdFile    string
	resultFile string

	PollInterval time.Duration
	ExecTimeout  time.Duration
	ExecPoll     time.Duration

	mu           sync.Mutex
	party        json.RawMessage
	lastModified time.Time
	execMu       sync.Mutex
}

// NewServer creates a relay watching the Script Extender directory.
func NewServer(seDir string) *Server {
	return &Server{
		syncFile:     filepath.Join(seDir, syncFileName),
		cmdFile:      filepath.Join(seDir, cmdFileName),
		resultFile:   filepath.Join(seDir, resultFileName),
		PollInterval: 2 * time.Second,
		ExecTimeout:  10 * time.Second,
		ExecPoll:     200 * time.Millisecond,
	}
}

// PollSyncFile re-reads the party snapshot when the sync file's mtime has
// changed. A file that is missing or momentarily malformed (the game may
// still be writing it) leaves the previous snapshot in place.
func (s *Server) PollSyncFile() {
	info, err := os.Stat(s.syncFile)
	if err != nil {
		return // not yet written, normal before the first in-game dump
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !info.ModTime().After(s.lastModified) && s.party != nil {
		return
	}

	data, err := os.ReadFile(s.syncFile)
	if err != nil || !json.Valid(data) {
		return
	}

	s.lastModified = info.ModTime()
	s.party = data
	log.Printf("INFO: sync file updated (%d bytes)", len(data))
}

// Run polls the sync file on the configured interval and serves HTTP on
// addr. It blocks until the listener fails.
func (s *Server) Run(addr string) error {
	go func() {
		s.PollSyncFile()
		for range time.Tick(s.PollInterval) {
			s.PollSyncFile()
		}
	}()

	log.Printf("INFO: party sync relay listening on %s", addr)
	log.Printf("INFO: watching %s", s.syncFile)
	return http.ListenAndServe(addr, s.Handler())
}

// Handler returns the relay's HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/party-sync", s.handlePartySync)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/exec", s.handleExec)
	return withCORS(mux)
}

// withCORS sets the permissive CORS headers the browser app needs (it is
// served from a file:// or dev origin) and short-circuits preflights.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodOptions {
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handlePartySync(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	party := s.party
	s.mu.Unlock()

	if party == nil {
		writeError(w, http.StatusNotFound,
			"No party data yet. Run the party dump script in the Script Extender console, then retry.")
		return
	}
	w.Write(party)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	hasData := s.party != nil
	s.mu.Unlock()

	json.NewEncoder(w).Encode(map[string]any{"ok": true, "hasData": hasData})
}

type execRequest struct {
	Script string `json:"script"`
}

type execResult struct {
	ID     string          `json:"id"`
	Output json.RawMessage `json:"output"`
	Error  string          `json:"error,omitempty"`
}

// handleExec writes the submitted script to the command file under a fresh
// correlation id and polls for a result file carrying the same id. The
// game-side bridge polls for commands on its own schedule, so a quiet game
// simply times out here with a 504.
func (s *Server) handleExec(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	var req execRequest
	if err := json.Unmarshal(body, &req); err != nil || req.Script == "" {
		writeError(w, http.StatusBadRequest, `expected {"script": "..."}`)
		return
	}

	// One in-flight command at a time; the bridge has a single command file.
	s.execMu.Lock()
	defer s.execMu.Unlock()

	id := uuid.NewString()
	cmd, _ := json.Marshal(map[string]string{"id": id, "script": req.Script})
	if err := writeFileAtomic(s.cmdFile, cmd); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to write command file: %v", err))
		return
	}

	result, err := s.awaitResult(id)
	if err != nil {
		writeError(w, http.StatusGatewayTimeout,
			"timed out waiting for the game to pick up the command")
		return
	}
	json.NewEncoder(w).Encode(result)
}

var errExecTimeout = errors.New("exec result timeout")

func (s *Server) awaitResult(id string) (*execResult, error) {
	deadline := time.Now().Add(s.ExecTimeout)
	for time.Now().Before(deadline) {
		data, err := os.ReadFile(s.resultFile)
		if err == nil {
			var result execResult
			if json.Unmarshal(data, &result) == nil && result.ID == id {
				return &result, nil
			}
		}
		time.Sleep(s.ExecPoll)
	}
	return nil, errExecTimeout
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
