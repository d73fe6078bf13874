package store

import (
	"context"
	"fmt"
	"time"

	"github.com/riverandeye/spotserver/internal/domain"
)

// CreateAdmin stores a new admin document keyed by UID.
func (s *DB) CreateAdmin(ctx context.Context, admin *domain.Admin) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := createDoc(s, adminPrefix, admin.UID, admin, ErrDuplicateAdmin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("admin created", "uid", admin.UID, "role", string(admin.Role))
	}
	return nil
}

// GetAdmin retrieves an admin by UID.
func (s *DB) GetAdmin(ctx context.Context, uid string) (*domain.Admin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return getDoc[domain.Admin](s, adminPrefix, uid, ErrAdminNotFound)
}

// ListAdmins returns all admin documents.
func (s *DB) ListAdmins(ctx context.Context) ([]*domain.Admin, error) {
	return listDocs[domain.Admin](s, ctx, adminPrefix, nil, 0)
}

// UpdateAdmin applies a partial update to an admin document and returns the
// updated admin.
func (s *DB) UpdateAdmin(ctx context.Context, uid string, patch domain.AdminPatch) (*domain.Admin, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	admin, err := s.GetAdmin(ctx, uid)
	if err != nil {
		return nil, err
	}

	patch.Apply(admin)
	admin.UpdatedAt = time.Now()

	if err := saveDoc(s, adminPrefix, uid, admin, ErrAdminNotFound); err != nil {
		return nil, fmt.Errorf("update admin: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("admin updated", "uid", uid)
	}
	return admin, nil
}

// DeleteAdmin removes an admin document.
func (s *DB) DeleteAdmin(ctx context.Context, uid string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := deleteDoc(s, adminPrefix, uid, ErrAdminNotFound); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("admin deleted", "uid", uid)
	}
	return nil
}
