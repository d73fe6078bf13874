package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riverandeye/spotserver/internal/domain"
	"github.com/riverandeye/spotserver/internal/store"
)

// setupTestStore opens a Badger store in a temp directory.
func setupTestStore(t *testing.T) *store.DB {
	t.Helper()

	s, err := store.Open(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// createTestUser stores a user directly, bypassing the service.
func createTestUser(t *testing.T, s store.Store, uid string) *domain.User {
	t.Helper()

	user := &domain.User{
		UID:         uid,
		Email:       uid + "@example.com",
		DisplayName: "Test " + uid,
		PlaylistIDs: []string{},
		CreatedTime: time.Now(),
	}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

// createTestPlace stores a place directly. firstImage may be empty to model
// a place with no thumbnail candidate.
func createTestPlace(t *testing.T, s store.Store, placeID, firstImage string) *domain.Place {
	t.Helper()

	place := &domain.Place{
		ID:         placeID,
		Name:       "Place " + placeID,
		Address:    "17 Mareunnae-ro, Jung-gu, Seoul",
		Type:       "Bar",
		FirstImage: firstImage,
		CreateDate: time.Now(),
	}
	require.NoError(t, s.CreatePlace(context.Background(), place))
	return place
}
