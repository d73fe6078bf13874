package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/riverandeye/spotserver/internal/domain"
	"github.com/riverandeye/spotserver/internal/http/response"
)

// CreateUserRequest represents the request body for creating a user.
type CreateUserRequest struct {
	UID         string `json:"uid"`
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name" validate:"max=100"`
	FullName    string `json:"full_name" validate:"max=200"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,url"`
	Role        string `json:"role"`
}

// FindByIDsRequest represents a batch lookup request body, shared across
// the user, place and playlist batch endpoints. An empty list is not an
// error; it resolves to an empty result.
type FindByIDsRequest struct {
	IDs []string `json:"ids"`
}

// handleCreateUser creates a new user.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUserRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	user, err := s.userService.CreateUser(ctx, &domain.User{
		UID:         req.UID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		FullName:    req.FullName,
		PhotoURL:    req.PhotoURL,
		Role:        req.Role,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, user, s.logger)
}

// handleListUsers returns all users.
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.userService.ListUsers(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, users, s.logger)
}

// handleGetUser returns a single user by UID.
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	user, err := s.userService.GetUser(r.Context(), uid)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, user, s.logger)
}

// handleFindUsersByIDs returns the users matching the given UIDs. Unknown
// UIDs are omitted from the result rather than reported as errors.
func (s *Server) handleFindUsersByIDs(w http.ResponseWriter, r *http.Request) {
	var req FindByIDsRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	users, err := s.userService.FindUsersByIDs(r.Context(), req.IDs)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, users, s.logger)
}

// handleUpdateUser applies a partial update to a user.
func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	var patch domain.UserPatch
	if err := json.UnmarshalRead(r.Body, &patch); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	user, err := s.userService.UpdateUser(r.Context(), uid, patch)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, user, s.logger)
}

// handleDeleteUser deletes a user.
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	if err := s.userService.DeleteUser(r.Context(), uid); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}

// handleGetUserPlaylists returns the playlists owned by a user, resolved
// by the playlist owner field rather than the denormalized ID list.
func (s *Server) handleGetUserPlaylists(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	playlists, err := s.playlistService.FindPlaylistsByUser(r.Context(), uid)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, playlists, s.logger)
}
