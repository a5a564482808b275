package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"kin-backend/internal/apperrors"
	"kin-backend/internal/services"
)

// maxPhotoUploadBytes caps a single photo part. The client compresses images
// before upload; anything larger is rejected outright.
const maxPhotoUploadBytes = 10 << 20

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto status codes and renders the
// message the client shows in its alert modal
func writeError(w http.ResponseWriter, err error) {
	var validation *apperrors.ValidationError
	var notFound *apperrors.NotFoundError
	var storageErr *apperrors.StorageError

	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": validation.Message})
	case errors.As(err, &notFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.As(err, &storageErr):
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "Fotoğraf yüklenirken bir hata oluştu"})
	case errors.Is(err, services.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "E-posta veya şifre hatalı"})
	default:
		log.Printf("Internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Bir hata oluştu"})
	}
}

// readFilePart reads one uploaded file into memory
func readFilePart(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxPhotoUploadBytes))
}

// readOptionalPhoto returns the bytes of the "photo" form file, or nil when
// the part is absent
func readOptionalPhoto(r *http.Request) ([]byte, error) {
	if r.MultipartForm == nil || len(r.MultipartForm.File["photo"]) == 0 {
		return nil, nil
	}
	return readFilePart(r.MultipartForm.File["photo"][0])
}
