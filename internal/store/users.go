package store

import (
	"context"
	"fmt"

	"github.com/riverandeye/spotserver/internal/domain"
)

// CreateUser stores a new user document keyed by UID.
func (s *DB) CreateUser(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := createDoc(s, userPrefix, user.UID, user, ErrDuplicateUser); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("user created", "uid", user.UID, "email", user.Email)
	}
	return nil
}

// GetUser retrieves a user by UID.
func (s *DB) GetUser(ctx context.Context, uid string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return getDoc[domain.User](s, userPrefix, uid, ErrUserNotFound)
}

// GetUsersByIDs retrieves the users for a UID list, chunked per the ID-set
// query limit. Missing UIDs are skipped.
func (s *DB) GetUsersByIDs(ctx context.Context, uids []string) ([]*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return getDocsByIDs[domain.User](s, userPrefix, uids)
}

// ListUsers returns all user documents.
func (s *DB) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return listDocs[domain.User](s, ctx, userPrefix, nil, 0)
}

// UpdateUser applies a partial update to a user document and returns the
// updated user. The UID is immutable; it is not part of the patch type.
func (s *DB) UpdateUser(ctx context.Context, uid string, patch domain.UserPatch) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	user, err := s.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}

	patch.Apply(user)

	if err := saveDoc(s, userPrefix, uid, user, ErrUserNotFound); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("user updated", "uid", uid)
	}
	return user, nil
}

// DeleteUser removes a user document.
func (s *DB) DeleteUser(ctx context.Context, uid string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := deleteDoc(s, userPrefix, uid, ErrUserNotFound); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("user deleted", "uid", uid)
	}
	return nil
}
