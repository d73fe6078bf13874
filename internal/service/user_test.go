package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverandeye/spotserver/internal/domain"
	"github.com/riverandeye/spotserver/internal/errors"
)

func setupUserTest(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(setupTestStore(t), testLogger())
}

func TestCreateUser_GeneratesUID(t *testing.T) {
	svc := setupUserTest(t)

	user, err := svc.CreateUser(context.Background(), &domain.User{
		Email:       "ada@example.com",
		DisplayName: "Ada",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(user.UID, "user-"))
	assert.NotNil(t, user.PlaylistIDs)
	assert.False(t, user.CreatedTime.IsZero())
}

func TestCreateUser_KeepsProvidedUID(t *testing.T) {
	svc := setupUserTest(t)

	user, err := svc.CreateUser(context.Background(), &domain.User{
		UID:   "firebase-uid-123",
		Email: "ada@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid-123", user.UID)
}

func TestCreateUser_RequiresEmail(t *testing.T) {
	svc := setupUserTest(t)

	_, err := svc.CreateUser(context.Background(), &domain.User{DisplayName: "No Email"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestCreateUser_Duplicate(t *testing.T) {
	svc := setupUserTest(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &domain.User{UID: "u1", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, &domain.User{UID: "u1", Email: "b@example.com"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAlreadyExists))
}

func TestGetUser_NotFound(t *testing.T) {
	svc := setupUserTest(t)

	_, err := svc.GetUser(context.Background(), "user-missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestFindUsersByIDs_Dedupes(t *testing.T) {
	svc := setupUserTest(t)
	ctx := context.Background()

	for _, uid := range []string{"u1", "u2", "u3"} {
		_, err := svc.CreateUser(ctx, &domain.User{UID: uid, Email: uid + "@example.com"})
		require.NoError(t, err)
	}

	// Heavy duplication plus a missing UID: one entry per distinct found UID.
	got, err := svc.FindUsersByIDs(ctx, []string{"u1", "u1", "u2", "u1", "u3", "u2", "u-missing"})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestFindUsersByIDs_EmptyInput(t *testing.T) {
	svc := setupUserTest(t)

	got, err := svc.FindUsersByIDs(context.Background(), []string{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpdateUser_Patch(t *testing.T) {
	svc := setupUserTest(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &domain.User{UID: "u1", Email: "old@example.com"})
	require.NoError(t, err)

	newEmail := "new@example.com"
	newName := "Renamed"
	updated, err := svc.UpdateUser(ctx, "u1", domain.UserPatch{
		Email:       &newEmail,
		DisplayName: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "Renamed", updated.DisplayName)
	assert.Equal(t, "u1", updated.UID)
}

func TestDeleteUser(t *testing.T) {
	svc := setupUserTest(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &domain.User{UID: "u1", Email: "a@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, "u1"))

	_, err = svc.GetUser(ctx, "u1")
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}
