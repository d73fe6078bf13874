package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/riverandeye/spotserver/internal/domain"
	"github.com/riverandeye/spotserver/internal/errors"
	"github.com/riverandeye/spotserver/internal/id"
	"github.com/riverandeye/spotserver/internal/store"
)

// AdminService manages back-office admin profiles. Authentication is handled
// by the external identity provider; this service only stores who the admins
// are.
type AdminService struct {
	store  store.Store
	logger *slog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(store store.Store, logger *slog.Logger) *AdminService {
	return &AdminService{
		store:  store,
		logger: logger,
	}
}

// CreateAdmin persists a new admin profile with default permissions when
// none are given.
func (s *AdminService) CreateAdmin(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if admin.Email == "" {
		return nil, errors.Validation("admin email is required")
	}

	if admin.Role == "" {
		admin.Role = domain.AdminRoleAdmin
	}
	if admin.Role != domain.AdminRoleAdmin && admin.Role != domain.AdminRoleSuper {
		return nil, errors.Validationf("invalid admin role %q", admin.Role)
	}

	if admin.UID == "" {
		uid, err := id.Generate("admin")
		if err != nil {
			return nil, fmt.Errorf("generate admin ID: %w", err)
		}
		admin.UID = uid
	}

	if len(admin.Permissions) == 0 {
		admin.Permissions = slices.Clone(domain.DefaultAdminPermissions)
	}

	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	if err := s.store.CreateAdmin(ctx, admin); err != nil {
		return nil, storeError(err, "admin "+admin.UID+" not found")
	}

	s.logger.Info("admin created",
		"uid", admin.UID,
		"role", string(admin.Role),
	)
	return admin, nil
}

// GetAdmin retrieves an admin by UID.
func (s *AdminService) GetAdmin(ctx context.Context, uid string) (*domain.Admin, error) {
	admin, err := s.store.GetAdmin(ctx, uid)
	if err != nil {
		return nil, storeError(err, "admin "+uid+" not found")
	}
	return admin, nil
}

// ListAdmins returns all admin profiles.
func (s *AdminService) ListAdmins(ctx context.Context) ([]*domain.Admin, error) {
	admins, err := s.store.ListAdmins(ctx)
	if err != nil {
		return nil, storeError(err, "admins not found")
	}
	return admins, nil
}

// UpdateAdmin applies a partial update to an admin profile.
func (s *AdminService) UpdateAdmin(ctx context.Context, uid string, patch domain.AdminPatch) (*domain.Admin, error) {
	if patch.Role != nil && *patch.Role != domain.AdminRoleAdmin && *patch.Role != domain.AdminRoleSuper {
		return nil, errors.Validationf("invalid admin role %q", *patch.Role)
	}

	admin, err := s.store.UpdateAdmin(ctx, uid, patch)
	if err != nil {
		return nil, storeError(err, "admin "+uid+" not found")
	}
	return admin, nil
}

// RecordLogin stamps the admin's last-login time.
func (s *AdminService) RecordLogin(ctx context.Context, uid string) (*domain.Admin, error) {
	now := time.Now()
	admin, err := s.store.UpdateAdmin(ctx, uid, domain.AdminPatch{LastLogin: &now})
	if err != nil {
		return nil, storeError(err, "admin "+uid+" not found")
	}
	return admin, nil
}

// DeleteAdmin removes an admin profile.
func (s *AdminService) DeleteAdmin(ctx context.Context, uid string) error {
	if err := s.store.DeleteAdmin(ctx, uid); err != nil {
		return storeError(err, "admin "+uid+" not found")
	}

	s.logger.Info("admin deleted", "uid", uid)
	return nil
}
