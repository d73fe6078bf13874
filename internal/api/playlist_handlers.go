package api

import (
	"encoding/json/v2"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/riverandeye/spotserver/internal/domain"
	"github.com/riverandeye/spotserver/internal/http/response"
	"github.com/riverandeye/spotserver/internal/store"
)

// CreatePlaylistRequest represents the request body for creating a playlist.
type CreatePlaylistRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Owner       string `json:"owner" validate:"required"`
	Type        string `json:"type" validate:"omitempty,oneof=user official featured"`
	IsVisible   bool   `json:"is_visible"`
}

// AddPlaceRequest represents the request body for adding a place to a playlist.
type AddPlaceRequest struct {
	PlaceID string `json:"place_id" validate:"required"`
}

// handleCreatePlaylist creates a new playlist and links it to its owner.
func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreatePlaylistRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	playlist, err := s.playlistService.CreatePlaylist(ctx, &domain.Playlist{
		Name:        req.Name,
		Description: req.Description,
		Owner:       req.Owner,
		Type:        domain.PlaylistType(req.Type),
		IsVisible:   req.IsVisible,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, playlist, s.logger)
}

// handleListPlaylists returns playlists, optionally filtered by owner or type.
func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	filter := store.PlaylistFilter{
		Owner: r.URL.Query().Get("owner"),
		Type:  domain.PlaylistType(r.URL.Query().Get("type")),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			response.BadRequest(w, "Invalid limit parameter", s.logger)
			return
		}
		filter.Limit = limit
	}

	playlists, err := s.playlistService.ListPlaylists(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, playlists, s.logger)
}

// handleGetPlaylist returns a single playlist by ID.
func (s *Server) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	playlistID := chi.URLParam(r, "id")

	playlist, err := s.playlistService.GetPlaylist(r.Context(), playlistID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, playlist, s.logger)
}

// handleFindPlaylistsByIDs returns the playlists matching the given IDs.
func (s *Server) handleFindPlaylistsByIDs(w http.ResponseWriter, r *http.Request) {
	var req FindByIDsRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	playlists, err := s.playlistService.FindPlaylistsByIDs(r.Context(), req.IDs)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, playlists, s.logger)
}

// handleUpdatePlaylist applies a partial metadata update to a playlist.
func (s *Server) handleUpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	playlistID := chi.URLParam(r, "id")

	var patch domain.PlaylistPatch
	if err := json.UnmarshalRead(r.Body, &patch); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	playlist, err := s.playlistService.UpdatePlaylist(r.Context(), playlistID, patch)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, playlist, s.logger)
}

// handleDeletePlaylist deletes a playlist and unlinks it from its owner.
func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	playlistID := chi.URLParam(r, "id")

	if err := s.playlistService.DeletePlaylist(r.Context(), playlistID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}

// handleGetPlaylistPlaces resolves a playlist's place IDs into full place
// documents. Places that no longer exist are omitted.
func (s *Server) handleGetPlaylistPlaces(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	playlistID := chi.URLParam(r, "id")

	playlist, err := s.playlistService.GetPlaylist(ctx, playlistID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	places, err := s.placeService.FindPlacesByIDs(ctx, playlist.Places)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, places, s.logger)
}

// handleAddPlaceToPlaylist adds a place to a playlist.
func (s *Server) handleAddPlaceToPlaylist(w http.ResponseWriter, r *http.Request) {
	playlistID := chi.URLParam(r, "id")

	var req AddPlaceRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	playlist, err := s.playlistService.AddPlaceToPlaylist(r.Context(), playlistID, req.PlaceID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, playlist, s.logger)
}

// handleRemovePlaceFromPlaylist removes a place from a playlist.
func (s *Server) handleRemovePlaceFromPlaylist(w http.ResponseWriter, r *http.Request) {
	playlistID := chi.URLParam(r, "id")
	placeID := chi.URLParam(r, "placeID")

	playlist, err := s.playlistService.RemovePlaceFromPlaylist(r.Context(), playlistID, placeID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, playlist, s.logger)
}
