package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hanoi-lite/hanoi"
	"hanoi-lite/tape"
)

type HTTPHandler struct {
	ledger Service
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHTTPHandler(ledgerService Service) *HTTPHandler {
	return &HTTPHandler{ledger: ledgerService}
}

func (h *HTTPHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/solves/recent", h.handleRecent)
	mux.HandleFunc("/api/solves/", h.handleTape)
	mux.HandleFunc("/api/solves", h.handleUpload)
}

func (h *HTTPHandler) handleRecent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	limit := parseLimit(r.URL.Query().Get("limit"))
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	items, err := h.ledger.ListRecent(ctx, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query recent solves failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": items,
	})
}

// handleTape serves GET /api/solves/{id}/tape.
func (h *HTTPHandler) handleTape(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	path := strings.TrimPrefix(r.URL.Path, "/api/solves/")
	solveID, ok := strings.CutSuffix(path, "/tape")
	solveID = strings.TrimSpace(strings.TrimSuffix(solveID, "/"))
	if !ok || solveID == "" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	blob, err := h.ledger.GetTape(ctx, solveID)
	if errors.Is(err, ErrNotFound) {
		writeError(w, http.StatusNotFound, "solve not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query tape failed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(blob)
}

// handleUpload verifies an externally produced tape and stores it.
func (h *HTTPHandler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var uploaded tape.SolveTape
	if err := json.NewDecoder(r.Body).Decode(&uploaded); err != nil {
		writeError(w, http.StatusBadRequest, "invalid tape json")
		return
	}
	if err := tape.Verify(&uploaded); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	blob, err := json.Marshal(tape.ToWireSolveTape(&uploaded))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encode tape failed")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	err = h.ledger.RecordSolve(ctx, SolveRecord{
		SolveID:   uploaded.SolveID,
		Label:     uploaded.Label,
		Disks:     uploaded.Disks,
		Moves:     hanoi.TotalMoves(uploaded.Disks),
		CreatedAt: time.Now().UTC(),
		Tape:      blob,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "store tape failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"solve_id": uploaded.SolveID,
	})
}

func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
