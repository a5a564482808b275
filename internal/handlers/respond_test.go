package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"kin-backend/internal/apperrors"
	"kin-backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			"validation maps to 400",
			apperrors.NewValidation("firstName", "ad boş olamaz"),
			http.StatusBadRequest,
			"ad boş olamaz",
		},
		{
			"not found maps to 404",
			apperrors.NewNotFound("relation", "rel-1"),
			http.StatusNotFound,
			"relation not found: rel-1",
		},
		{
			"storage maps to 502 with generic message",
			apperrors.NewStorage("upload", errors.New("bucket down")),
			http.StatusBadGateway,
			"Fotoğraf yüklenirken bir hata oluştu",
		},
		{
			"bad credentials map to 401",
			services.ErrInvalidCredentials,
			http.StatusUnauthorized,
			"E-posta veya şifre hatalı",
		},
		{
			"unknown errors map to 500 without leaking detail",
			errors.New("pq: connection refused"),
			http.StatusInternalServerError,
			"Bir hata oluştu",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.wantMsg, body["error"])
		})
	}
}

func TestWriteErrorUnwrapsWrappedErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := errors.Join(errors.New("context"), apperrors.NewNotFound("memory", "m1"))
	writeError(rec, wrapped)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
