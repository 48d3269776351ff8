package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"aqarBack/internal/models"
	"aqarBack/internal/services"
)

type PredictionHandler struct {
	Service *services.PredictionService
}

func (h *PredictionHandler) PredictPrice(w http.ResponseWriter, r *http.Request) {
	var req models.PredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.City == "" || req.SquareMeter <= 0 {
		http.Error(w, "City and square_meter are required", http.StatusBadRequest)
		return
	}
	if req.PropertyType != models.PropertyTypeApartment && req.PropertyType != models.PropertyTypeVilla {
		http.Error(w, "Invalid property type", http.StatusBadRequest)
		return
	}

	result, err := h.Service.EstimatePrice(r.Context(), req)
	if err != nil {
		log.Printf("PredictPrice error: %v", err)
		http.Error(w, "Failed to estimate price", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
