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

type RelationHandler struct {
	Relations *services.RelationService
	Settings  *services.SettingsService
}

func NewRelationHandler(relations *services.RelationService, settings *services.SettingsService) *RelationHandler {
	return &RelationHandler{Relations: relations, Settings: settings}
}

// List returns the user's relations as a flat sequence
func (h *RelationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	relations, err := h.Relations.ListRelations(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if relations == nil {
		relations = []models.Relation{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"relations": relations})
}

// Tree returns the category-grouped view the main screen renders: buckets in
// fixed order, hidden types filtered out, and an add-affordance flag per type.
func (h *RelationHandler) Tree(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	relations, err := h.Relations.ListRelations(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	settings, err := h.Settings.GetSettings(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	visible := make([]models.Relation, 0, len(relations))
	for _, rel := range relations {
		if models.IsTypeVisible(rel.Type, settings) {
			visible = append(visible, rel)
		}
	}

	canAdd := make(map[models.RelationType]bool, len(models.AllRelationTypes))
	for _, t := range models.AllRelationTypes {
		canAdd[t] = models.ShouldShowAddAffordance(t, relations)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"groups": models.GroupByCategory(visible),
		"canAdd": canAdd,
	})
}

// Create accepts either a JSON body or a multipart form with a "data" JSON
// field and an optional staged "photo" file
func (h *RelationHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	var req models.CreateRelationRequest
	var photo []byte

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
			http.Error(w, "Invalid multipart form", http.StatusBadRequest)
			return
		}
		if err := json.Unmarshal([]byte(r.FormValue("data")), &req); err != nil {
			http.Error(w, "Invalid data field", http.StatusBadRequest)
			return
		}
		var err error
		photo, err = readOptionalPhoto(r)
		if err != nil {
			http.Error(w, "Failed to read photo", http.StatusBadRequest)
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}

	relation, err := h.Relations.CreateRelation(r.Context(), userID, req, photo)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, relation)
}

func (h *RelationHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	relation, err := h.Relations.GetRelation(r.Context(), mux.Vars(r)["id"], userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, relation)
}

func (h *RelationHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	var req models.UpdateRelationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	relation, err := h.Relations.UpdateRelation(r.Context(), mux.Vars(r)["id"], userID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, relation)
}

// UpdatePhoto replaces the portrait from a multipart "photo" file
func (h *RelationHandler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
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

	relation, err := h.Relations.UpdateRelationPhoto(r.Context(), mux.Vars(r)["id"], userID, photo)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, relation)
}

func (h *RelationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	if err := h.Relations.DeleteRelation(r.Context(), mux.Vars(r)["id"], userID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// GetTypes returns the enum metadata the add screens render from
func (h *RelationHandler) GetTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"types":           models.AllRelationTypes,
		"labels":          models.RelationLabels,
		"multipleAllowed": models.MultipleAllowedTypes,
		"categories":      models.RelationCategories,
		"suggestedTags":   models.SuggestedMemoryTags,
	})
}

func (h *RelationHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	relation, err := h.Relations.AddNote(r.Context(), mux.Vars(r)["id"], userID, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, relation)
}

func (h *RelationHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	relation, err := h.Relations.UpdateNote(r.Context(), vars["id"], userID, vars["noteId"], req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, relation)
}

func (h *RelationHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "User ID not found in context", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	relation, err := h.Relations.DeleteNote(r.Context(), vars["id"], userID, vars["noteId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, relation)
}
