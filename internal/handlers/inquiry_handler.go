package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"aqarBack/internal/models"
	"aqarBack/internal/services"
)

type InquiryHandler struct {
	Service         *services.InquiryService
	PropertyService *services.PropertyService
}

func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var inquiry models.Inquiry
	if err := json.NewDecoder(r.Body).Decode(&inquiry); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if inquiry.Message == "" {
		http.Error(w, "Message is required", http.StatusBadRequest)
		return
	}

	inquiry.UserID = contextUserID(r)

	created, err := h.Service.CreateInquiry(r.Context(), inquiry)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		if isForeignKeyConstraintError(err) {
			http.Error(w, "Property or user does not exist", http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to create inquiry", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// GetInquiriesByPropertyID lists inquiries on a listing, visible only to the
// listing owner and admins.
func (h *InquiryHandler) GetInquiriesByPropertyID(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := pathID(w, r, ":property_id")
	if !ok {
		return
	}

	property, err := h.PropertyService.GetPropertyByID(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch property", http.StatusInternalServerError)
		return
	}
	if property.UserID != contextUserID(r) && !contextIsAdmin(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	inquiries, err := h.Service.GetInquiriesByPropertyID(r.Context(), propertyID)
	if err != nil {
		http.Error(w, "Failed to fetch inquiries", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(inquiries)
}

func (h *InquiryHandler) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ":id")
	if !ok {
		return
	}

	if err := h.Service.DeleteInquiry(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrInquiryNotFound) {
			http.Error(w, "Inquiry not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete inquiry", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
