package http

import (
	"net/http"
	"time"

	"kin-backend/internal/handlers"
	"kin-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires every API route. All /api routes except auth require a
// valid bearer token.
func NewRouter(
	authHandler *handlers.AuthHandler,
	relationHandler *handlers.RelationHandler,
	memoryHandler *handlers.MemoryHandler,
	settingsHandler *handlers.SettingsHandler,
	profileHandler *handlers.ProfileHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	photoDir string,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.Metrics)

	r.HandleFunc("/health", healthHandler.Check).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Locally stored photos are served straight from disk; with the s3
	// backend the client fetches from the bucket's public URL instead.
	if photoDir != "" {
		r.PathPrefix("/photos/").Handler(
			http.StripPrefix("/photos/", http.FileServer(http.Dir(photoDir))))
	}

	authLimiter := middleware.NewRateLimiter(20, time.Minute)
	authRoutes := r.PathPrefix("/api/auth").Subrouter()
	authRoutes.Use(authLimiter.Middleware)
	authRoutes.HandleFunc("/register", authHandler.Register).Methods("POST")
	authRoutes.HandleFunc("/login", authHandler.Login).Methods("POST")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware.Handler)

	api.HandleFunc("/profile", profileHandler.Get).Methods("GET")
	api.HandleFunc("/profile", profileHandler.Update).Methods("PUT")
	api.HandleFunc("/profile/photo", profileHandler.UpdatePhoto).Methods("PUT")

	api.HandleFunc("/relations", relationHandler.List).Methods("GET")
	api.HandleFunc("/relations", relationHandler.Create).Methods("POST")
	api.HandleFunc("/relations/tree", relationHandler.Tree).Methods("GET")
	api.HandleFunc("/relations/types", relationHandler.GetTypes).Methods("GET")
	api.HandleFunc("/relations/{id}", relationHandler.Get).Methods("GET")
	api.HandleFunc("/relations/{id}", relationHandler.Update).Methods("PUT")
	api.HandleFunc("/relations/{id}", relationHandler.Delete).Methods("DELETE")
	api.HandleFunc("/relations/{id}/photo", relationHandler.UpdatePhoto).Methods("PUT")

	api.HandleFunc("/relations/{id}/notes", relationHandler.AddNote).Methods("POST")
	api.HandleFunc("/relations/{id}/notes/{noteId}", relationHandler.UpdateNote).Methods("PUT")
	api.HandleFunc("/relations/{id}/notes/{noteId}", relationHandler.DeleteNote).Methods("DELETE")

	api.HandleFunc("/relations/{id}/memories", memoryHandler.Add).Methods("POST")
	api.HandleFunc("/relations/{id}/memories/{memoryId}", memoryHandler.Update).Methods("PUT")
	api.HandleFunc("/relations/{id}/memories/{memoryId}", memoryHandler.Delete).Methods("DELETE")
	api.HandleFunc("/relations/{id}/memories/{memoryId}/photos", memoryHandler.AddPhoto).Methods("POST")

	api.HandleFunc("/settings/relations", settingsHandler.Get).Methods("GET")
	api.HandleFunc("/settings/relations", settingsHandler.Update).Methods("PUT")

	return r
}
