package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"aqarBack/internal/models"
	"aqarBack/internal/services"
)

type PropertyHandler struct {
	Service *services.PropertyService
}

func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var property models.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if property.Name == "" || property.City == "" {
		http.Error(w, "Name and city are required", http.StatusBadRequest)
		return
	}
	if property.PropertyType != models.PropertyTypeApartment && property.PropertyType != models.PropertyTypeVilla {
		http.Error(w, "Invalid property type", http.StatusBadRequest)
		return
	}

	property.UserID = contextUserID(r)

	created, err := h.Service.CreateProperty(r.Context(), property)
	if err != nil {
		if errors.Is(err, models.ErrDuplicatePropertyName) {
			http.Error(w, "You already have a listing with this name", http.StatusConflict)
			return
		}
		if isForeignKeyConstraintError(err) {
			http.Error(w, "Owner does not exist", http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to create property", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func (h *PropertyHandler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ":id")
	if !ok {
		return
	}

	property, err := h.Service.GetPropertyByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch property", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(property)
}

func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ":id")
	if !ok {
		return
	}

	existing, err := h.Service.GetPropertyByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch property", http.StatusInternalServerError)
		return
	}
	if existing.UserID != contextUserID(r) && !contextIsAdmin(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var upd models.PropertyUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if upd.PropertyType != nil && *upd.PropertyType != models.PropertyTypeApartment && *upd.PropertyType != models.PropertyTypeVilla {
		http.Error(w, "Invalid property type", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateProperty(r.Context(), id, upd)
	if err != nil {
		if errors.Is(err, models.ErrDuplicatePropertyName) {
			http.Error(w, "You already have a listing with this name", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to update property", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}

func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ":id")
	if !ok {
		return
	}

	existing, err := h.Service.GetPropertyByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch property", http.StatusInternalServerError)
		return
	}
	if existing.UserID != contextUserID(r) && !contextIsAdmin(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := h.Service.DeleteProperty(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete property", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PropertyHandler) ApproveProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ":id")
	if !ok {
		return
	}

	if err := h.Service.ApproveProperty(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to approve property", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *PropertyHandler) GetApprovedProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.Service.GetApprovedProperties(r.Context())
	if err != nil {
		log.Printf("GetApprovedProperties error: %v", err)
		http.Error(w, "Failed to fetch properties", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(properties)
}

func (h *PropertyHandler) GetNonApprovedProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.Service.GetNonApprovedProperties(r.Context())
	if err != nil {
		log.Printf("GetNonApprovedProperties error: %v", err)
		http.Error(w, "Failed to fetch properties", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(properties)
}

func (h *PropertyHandler) GetPropertiesByType(w http.ResponseWriter, r *http.Request) {
	propertyType := r.URL.Query().Get(":type")
	if propertyType != models.PropertyTypeApartment && propertyType != models.PropertyTypeVilla {
		http.Error(w, "Invalid property type", http.StatusBadRequest)
		return
	}

	properties, err := h.Service.GetPropertiesByType(r.Context(), propertyType)
	if err != nil {
		log.Printf("GetPropertiesByType error: %v", err)
		http.Error(w, "Failed to fetch properties", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(properties)
}

func (h *PropertyHandler) GetPropertiesByLocation(w http.ResponseWriter, r *http.Request) {
	propertyType := r.URL.Query().Get(":type")
	city := r.URL.Query().Get(":city")
	if propertyType != models.PropertyTypeApartment && propertyType != models.PropertyTypeVilla {
		http.Error(w, "Invalid property type", http.StatusBadRequest)
		return
	}
	if city == "" {
		http.Error(w, "Missing city", http.StatusBadRequest)
		return
	}

	properties, err := h.Service.GetPropertiesByLocation(r.Context(), propertyType, city)
	if err != nil {
		log.Printf("GetPropertiesByLocation error: %v", err)
		http.Error(w, "Failed to fetch properties", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(properties)
}

func (h *PropertyHandler) GetPropertiesByUserID(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, ":user_id")
	if !ok {
		return
	}

	properties, err := h.Service.GetPropertiesByUserID(r.Context(), userID)
	if err != nil {
		log.Printf("GetPropertiesByUserID error: %v", err)
		http.Error(w, "Failed to fetch properties", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(properties)
}

// GetPropertiesDynamic is the public browse feed: every filter is optional and
// an authenticated caller's own listings are excluded.
func (h *PropertyHandler) GetPropertiesDynamic(w http.ResponseWriter, r *http.Request) {
	filter, err := parsePropertyFilter(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	filter.ExcludeUserID = optionalUserID(r)

	properties, err := h.Service.GetPropertiesDynamic(r.Context(), filter)
	if err != nil {
		log.Printf("GetPropertiesDynamic error: %v", err)
		http.Error(w, "Failed to fetch properties", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(properties)
}

func (h *PropertyHandler) GetPropertyModels(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ":id")
	if !ok {
		return
	}

	propertyModels, err := h.Service.GetPropertyModels(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch property models", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(propertyModels)
}

// parsePropertyFilter reads the optional query parameters of the dynamic
// search. Malformed numerics and inverted ranges are rejected here; the sort
// key is passed through untouched since unknown values mean natural order.
func parsePropertyFilter(r *http.Request) (models.PropertyFilter, error) {
	var filter models.PropertyFilter
	q := r.URL.Query()

	if v := q.Get("is_rent"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return models.PropertyFilter{}, errors.New("invalid is_rent")
		}
		filter.IsRent = &b
	}
	filter.City = q.Get("city")
	filter.PropertyType = q.Get("property_type")

	if v := q.Get("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return models.PropertyFilter{}, errors.New("invalid min_price")
		}
		filter.MinPrice = &f
	}
	if v := q.Get("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return models.PropertyFilter{}, errors.New("invalid max_price")
		}
		filter.MaxPrice = &f
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return models.PropertyFilter{}, errors.New("min_price exceeds max_price")
	}

	if v := q.Get("min_year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return models.PropertyFilter{}, errors.New("invalid min_year")
		}
		filter.MinYear = &n
	}
	if v := q.Get("max_year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return models.PropertyFilter{}, errors.New("invalid max_year")
		}
		filter.MaxYear = &n
	}
	if filter.MinYear != nil && filter.MaxYear != nil && *filter.MinYear > *filter.MaxYear {
		return models.PropertyFilter{}, errors.New("min_year exceeds max_year")
	}

	if v := q.Get("furnished"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return models.PropertyFilter{}, errors.New("invalid furnished")
		}
		filter.Furnished = &b
	}

	filter.SortBy = q.Get("sort_by")

	return filter, nil
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	idStr := r.URL.Query().Get(name)
	if idStr == "" {
		http.Error(w, "Missing id", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
