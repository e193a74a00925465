package http

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"loan-optimizer/domain"
	"loan-optimizer/service"
)

type OptimizerHandler struct {
	service *service.OptimizerService
}

func NewOptimizerHandler(service *service.OptimizerService) *OptimizerHandler {
	return &OptimizerHandler{service: service}
}

func (h *OptimizerHandler) OptimizeEarlyPayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.OptimizationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.OptimizeEarlyPayment(input)
	if err != nil {
		if service.IsInvalidInput(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Error optimizing early payment: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Codificar JSON en buffer primero para evitar escribir header si falla
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(result); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
