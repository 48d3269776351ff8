package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"aqarBack/internal/models"
	"aqarBack/internal/repositories"
	"aqarBack/internal/services"
	"aqarBack/utils"
)

const maxUploadSize = 10 << 20 // 10 MiB per request

// ImageHandler uploads listing media to object storage and records the
// resulting URLs. The listing only ever references media by URL.
type ImageHandler struct {
	ImageRepo       *repositories.PropertyImageRepository
	ModelRepo       *repositories.PropertyModelRepository
	PropertyService *services.PropertyService
}

func (h *ImageHandler) UploadPropertyImages(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := pathID(w, r, ":id")
	if !ok {
		return
	}

	if _, ok := h.authorizeOwner(w, r, propertyID); !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		http.Error(w, "No images supplied", http.StatusBadRequest)
		return
	}

	uploaded := []models.PropertyImage{}
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			http.Error(w, "Failed to read uploaded file", http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			http.Error(w, "Failed to read uploaded file", http.StatusBadRequest)
			return
		}

		fileName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(header.Filename))
		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "image/jpeg"
		}

		url, err := utils.UploadFileToS3(data, fileName, fmt.Sprintf("properties/%d", propertyID), contentType)
		if err != nil {
			log.Printf("UploadPropertyImages upload error: %v", err)
			http.Error(w, "Failed to upload image", http.StatusInternalServerError)
			return
		}

		image, err := h.ImageRepo.AddImage(r.Context(), models.PropertyImage{PropertyID: propertyID, ImageURL: url})
		if err != nil {
			if isForeignKeyConstraintError(err) {
				http.Error(w, "Property does not exist", http.StatusBadRequest)
				return
			}
			http.Error(w, "Failed to store image", http.StatusInternalServerError)
			return
		}
		uploaded = append(uploaded, image)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(uploaded)
}

func (h *ImageHandler) DeletePropertyImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ":id")
	if !ok {
		return
	}

	image, err := h.ImageRepo.GetImageByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrImageNotFound) {
			http.Error(w, "Image not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch image", http.StatusInternalServerError)
		return
	}

	if _, ok := h.authorizeOwner(w, r, image.PropertyID); !ok {
		return
	}

	if err := h.ImageRepo.DeleteImage(r.Context(), id); err != nil {
		http.Error(w, "Failed to delete image", http.StatusInternalServerError)
		return
	}
	if err := utils.DeleteFileFromS3(image.ImageURL); err != nil {
		// The DB row is gone; a stray object is an acceptable leak to log.
		log.Printf("DeletePropertyImage storage cleanup error: %v", err)
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ImageHandler) UploadPropertyModel(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := pathID(w, r, ":id")
	if !ok {
		return
	}

	if _, ok := h.authorizeOwner(w, r, propertyID); !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	headers := r.MultipartForm.File["model"]
	if len(headers) == 0 {
		http.Error(w, "No model supplied", http.StatusBadRequest)
		return
	}
	header := headers[0]

	file, err := header.Open()
	if err != nil {
		http.Error(w, "Failed to read uploaded file", http.StatusBadRequest)
		return
	}
	data, err := io.ReadAll(file)
	file.Close()
	if err != nil {
		http.Error(w, "Failed to read uploaded file", http.StatusBadRequest)
		return
	}

	fileName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := utils.UploadFileToS3(data, fileName, fmt.Sprintf("models/%d", propertyID), contentType)
	if err != nil {
		log.Printf("UploadPropertyModel upload error: %v", err)
		http.Error(w, "Failed to upload model", http.StatusInternalServerError)
		return
	}

	model, err := h.ModelRepo.AddModel(r.Context(), models.PropertyModel{PropertyID: propertyID, ModelURL: url})
	if err != nil {
		if isForeignKeyConstraintError(err) {
			http.Error(w, "Property does not exist", http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to store model", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(model)
}

func (h *ImageHandler) DeletePropertyModel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, ":id")
	if !ok {
		return
	}

	model, err := h.ModelRepo.GetModelByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrModelNotFound) {
			http.Error(w, "Model not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch model", http.StatusInternalServerError)
		return
	}

	if _, ok := h.authorizeOwner(w, r, model.PropertyID); !ok {
		return
	}

	if err := h.ModelRepo.DeleteModel(r.Context(), id); err != nil {
		http.Error(w, "Failed to delete model", http.StatusInternalServerError)
		return
	}
	if err := utils.DeleteFileFromS3(model.ModelURL); err != nil {
		log.Printf("DeletePropertyModel storage cleanup error: %v", err)
	}

	w.WriteHeader(http.StatusNoContent)
}

// authorizeOwner loads the property and verifies the caller owns it or is an
// admin, writing the error response itself when the check fails.
func (h *ImageHandler) authorizeOwner(w http.ResponseWriter, r *http.Request, propertyID int) (models.Property, bool) {
	property, err := h.PropertyService.GetPropertyByID(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, models.ErrPropertyNotFound) {
			http.Error(w, "Property not found", http.StatusNotFound)
			return models.Property{}, false
		}
		http.Error(w, "Failed to fetch property", http.StatusInternalServerError)
		return models.Property{}, false
	}
	if property.UserID != contextUserID(r) && !contextIsAdmin(r) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return models.Property{}, false
	}
	return property, true
}
