package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/riverandeye/spotserver/internal/domain"
	"github.com/riverandeye/spotserver/internal/http/response"
)

// CreateAdminRequest represents the request body for creating an admin.
type CreateAdminRequest struct {
	UID         string   `json:"uid"`
	Email       string   `json:"email" validate:"required,email"`
	DisplayName string   `json:"display_name" validate:"max=100"`
	Role        string   `json:"role" validate:"omitempty,oneof=admin super_admin"`
	Permissions []string `json:"permissions"`
}

// handleCreateAdmin creates a new admin profile.
func (s *Server) handleCreateAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateAdminRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	admin, err := s.adminService.CreateAdmin(ctx, &domain.Admin{
		UID:         req.UID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        domain.AdminRole(req.Role),
		Permissions: req.Permissions,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, admin, s.logger)
}

// handleListAdmins returns all admin profiles.
func (s *Server) handleListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := s.adminService.ListAdmins(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, admins, s.logger)
}

// handleGetAdmin returns a single admin by UID.
func (s *Server) handleGetAdmin(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	admin, err := s.adminService.GetAdmin(r.Context(), uid)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, admin, s.logger)
}

// handleUpdateAdmin applies a partial update to an admin profile.
func (s *Server) handleUpdateAdmin(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	var patch domain.AdminPatch
	if err := json.UnmarshalRead(r.Body, &patch); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	admin, err := s.adminService.UpdateAdmin(r.Context(), uid, patch)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, admin, s.logger)
}

// handleRecordAdminLogin stamps the admin's last-login time.
func (s *Server) handleRecordAdminLogin(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	admin, err := s.adminService.RecordLogin(r.Context(), uid)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, admin, s.logger)
}

// handleDeleteAdmin deletes an admin profile.
func (s *Server) handleDeleteAdmin(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	if err := s.adminService.DeleteAdmin(r.Context(), uid); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}
