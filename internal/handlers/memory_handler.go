package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"kin-backend/internal/middleware"
	"kin-backend/internal/models"
	"kin-backend/internal/services"

	"github.com/gorilla/mux"
)

type MemoryHandler struct {
	Service *services.MemoryService
}

func NewMemoryHandler(service *services.MemoryService) *MemoryHandler {
	return &MemoryHandler{Service: service}
}

// Add appends a memory to the parent relation. Accepts JSON, or a multipart
// form with a "data" JSON field and up to 3 "photos" files. Responds with
// the refreshed parent relation.
func (h *MemoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	var req models.AddMemoryRequest
	var photos [][]byte

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
			http.Error(w, "Invalid multipart form", http.StatusBadRequest)
			return
		}
		if err := json.Unmarshal([]byte(r.FormValue("data")), &req); err != nil {
			http.Error(w, "Invalid data field", http.StatusBadRequest)
			return
		}
		for _, header := range r.MultipartForm.File["photos"] {
			blob, err := readFilePart(header)
			if err != nil {
				http.Error(w, "Failed to read photo", http.StatusBadRequest)
				return
			}
			photos = append(photos, blob)
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}

	relation, err := h.Service.AddMemory(r.Context(), mux.Vars(r)["id"], userID, req, photos)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, relation)
}

func (h *MemoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	var req models.UpdateMemoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	relation, err := h.Service.UpdateMemory(r.Context(), vars["id"], userID, vars["memoryId"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, relation)
}

func (h *MemoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	relation, err := h.Service.DeleteMemory(r.Context(), vars["id"], userID, vars["memoryId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, relation)
}

// AddPhoto uploads one more photo onto an existing memory from a multipart
// "photo" file. The fourth photo is rejected.
func (h *MemoryHandler) AddPhoto(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}
	photo, err := readOptionalPhoto(r)
	if err != nil || photo == nil {
		http.Error(w, "Photo file is required", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	relation, err := h.Service.AddMemoryPhoto(r.Context(), vars["id"], userID, vars["memoryId"], photo)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, relation)
}
