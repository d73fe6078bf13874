// Package api provides the HTTP API server and handlers for the spot service.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/riverandeye/spotserver/internal/http/response"
	"github.com/riverandeye/spotserver/internal/service"
	"github.com/riverandeye/spotserver/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	userService      *service.UserService
	placeService     *service.PlaceService
	playlistService  *service.PlaylistService
	adminService     *service.AdminService
	recommendService *service.RecommendService
	validator        *validation.Validator
	router           *chi.Mux
	logger           *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(userService *service.UserService, placeService *service.PlaceService, playlistService *service.PlaylistService, adminService *service.AdminService, recommendService *service.RecommendService, logger *slog.Logger) *Server {
	s := &Server{
		userService:      userService,
		placeService:     placeService,
		playlistService:  playlistService,
		adminService:     adminService,
		recommendService: recommendService,
		validator:        validation.New(),
		router:           chi.NewRouter(),
		logger:           logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))

	// The mobile and back-office clients are served from other origins.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	// API v1.
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", s.handleCreateUser)
			r.Get("/", s.handleListUsers)
			r.Post("/batch", s.handleFindUsersByIDs)
			r.Get("/{uid}", s.handleGetUser)
			r.Patch("/{uid}", s.handleUpdateUser)
			r.Delete("/{uid}", s.handleDeleteUser)
			r.Get("/{uid}/playlists", s.handleGetUserPlaylists)
		})

		r.Route("/places", func(r chi.Router) {
			r.Post("/", s.handleCreatePlace)
			r.Get("/", s.handleListPlaces)
			r.Post("/batch", s.handleFindPlacesByIDs)
			r.Get("/{id}", s.handleGetPlace)
			r.Patch("/{id}", s.handleUpdatePlace)
			r.Delete("/{id}", s.handleDeletePlace)
		})

		r.Route("/playlists", func(r chi.Router) {
			r.Post("/", s.handleCreatePlaylist)
			r.Get("/", s.handleListPlaylists)
			r.Post("/batch", s.handleFindPlaylistsByIDs)
			r.Get("/{id}", s.handleGetPlaylist)
			r.Patch("/{id}", s.handleUpdatePlaylist)
			r.Delete("/{id}", s.handleDeletePlaylist)
			r.Get("/{id}/places", s.handleGetPlaylistPlaces)
			r.Post("/{id}/places", s.handleAddPlaceToPlaylist)
			r.Delete("/{id}/places/{placeID}", s.handleRemovePlaceFromPlaylist)
		})

		r.Route("/admins", func(r chi.Router) {
			r.Post("/", s.handleCreateAdmin)
			r.Get("/", s.handleListAdmins)
			r.Get("/{uid}", s.handleGetAdmin)
			r.Patch("/{uid}", s.handleUpdateAdmin)
			r.Delete("/{uid}", s.handleDeleteAdmin)
			r.Post("/{uid}/login", s.handleRecordAdminLogin)
		})

		r.Route("/recommend", func(r chi.Router) {
			r.Post("/", s.handleRecommend)
			r.Post("/search", s.handleSearchPlaces)
		})
	})
}

// handleHealthCheck returns service health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	response.Success(w, map[string]string{"status": "ok"}, s.logger)
}
