package http

import (
	"encoding/json"
	"log"
	"net/http"

	"loan-optimizer/domain"
	"loan-optimizer/service"
)

type SimulationHandler struct {
	service *service.SimulationService
}

func NewSimulationHandler(service *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{service: service}
}

// Simulate corre un único candidato de pago adelantado y devuelve la serie
// mensual completa.
func (h *SimulationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Simulate(req.Loans, req.Config, req.EarlyPayment)
	if err != nil {
		if service.IsInvalidInput(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Error simulating candidate: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
