package http

import (
	"encoding/json"
	"log"
	"net/http"

	"loan-optimizer/repository"
)

type RunsHandler struct {
	repo repository.RunRepository
}

func NewRunsHandler(repo repository.RunRepository) *RunsHandler {
	return &RunsHandler{repo: repo}
}

// ListRuns devuelve el historial de corridas del optimizador, la más
// reciente primero.
func (h *RunsHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	runs, err := h.repo.List()
	if err != nil {
		log.Printf("Error listing optimization runs: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(runs)
}
