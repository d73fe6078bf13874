package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/riverandeye/spotserver/internal/domain"
	"github.com/riverandeye/spotserver/internal/errors"
	"github.com/riverandeye/spotserver/internal/id"
	"github.com/riverandeye/spotserver/internal/store"
)

// UserService manages user account documents.
type UserService struct {
	store  store.Store
	logger *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(store store.Store, logger *slog.Logger) *UserService {
	return &UserService{
		store:  store,
		logger: logger,
	}
}

// CreateUser persists a new user. The UID normally comes from the external
// identity provider; when the caller leaves it empty one is generated.
func (s *UserService) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if user.Email == "" {
		return nil, errors.Validation("user email is required")
	}

	if user.UID == "" {
		uid, err := id.Generate("user")
		if err != nil {
			return nil, fmt.Errorf("generate user ID: %w", err)
		}
		user.UID = uid
	}

	if user.PlaylistIDs == nil {
		user.PlaylistIDs = []string{}
	}
	if user.CreatedTime.IsZero() {
		user.CreatedTime = time.Now()
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, storeError(err, "user "+user.UID+" not found")
	}

	s.logger.Info("user created",
		"uid", user.UID,
		"email", user.Email,
	)
	return user, nil
}

// GetUser retrieves a user by UID.
func (s *UserService) GetUser(ctx context.Context, uid string) (*domain.User, error) {
	user, err := s.store.GetUser(ctx, uid)
	if err != nil {
		return nil, storeError(err, "user "+uid+" not found")
	}
	return user, nil
}

// FindUsersByIDs resolves a UID list to user documents. Duplicates in the
// input are collapsed; UIDs with no document are omitted from the result
// rather than reported as errors. An empty input never touches the store.
func (s *UserService) FindUsersByIDs(ctx context.Context, uids []string) ([]*domain.User, error) {
	deduped := dedupeIDs(uids)
	if len(deduped) == 0 {
		return []*domain.User{}, nil
	}

	users, err := s.store.GetUsersByIDs(ctx, deduped)
	if err != nil {
		return nil, storeError(err, "users not found")
	}
	return users, nil
}

// ListUsers returns all users.
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, storeError(err, "users not found")
	}
	return users, nil
}

// UpdateUser applies a partial update to a user. The UID is immutable.
func (s *UserService) UpdateUser(ctx context.Context, uid string, patch domain.UserPatch) (*domain.User, error) {
	user, err := s.store.UpdateUser(ctx, uid, patch)
	if err != nil {
		return nil, storeError(err, "user "+uid+" not found")
	}
	return user, nil
}

// DeleteUser removes a user document. Playlists owned by the user are left
// in place; their owner field simply points at a deleted UID from then on.
func (s *UserService) DeleteUser(ctx context.Context, uid string) error {
	if err := s.store.DeleteUser(ctx, uid); err != nil {
		return storeError(err, "user "+uid+" not found")
	}

	s.logger.Info("user deleted", "uid", uid)
	return nil
}
