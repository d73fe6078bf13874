package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverandeye/spotserver/internal/domain"
	"github.com/riverandeye/spotserver/internal/errors"
	"github.com/riverandeye/spotserver/internal/store"
)

func setupPlaylistTest(t *testing.T) (*PlaylistService, *store.DB) {
	t.Helper()

	s := setupTestStore(t)
	logger := testLogger()
	ownership := NewOwnershipService(s, logger)
	return NewPlaylistService(s, ownership, logger), s
}

func TestCreatePlaylist_RequiresOwner(t *testing.T) {
	svc, _ := setupPlaylistTest(t)

	_, err := svc.CreatePlaylist(context.Background(), &domain.Playlist{
		Name: "No Owner",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

func TestCreatePlaylist_LinksOwner(t *testing.T) {
	svc, s := setupPlaylistTest(t)
	ctx := context.Background()

	createTestUser(t, s, "user-1")

	playlist, err := svc.CreatePlaylist(ctx, &domain.Playlist{
		Name:  "Seoul Bars",
		Owner: "user-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, playlist.ID)
	assert.Equal(t, domain.PlaylistTypeUser, playlist.Type)
	assert.Empty(t, playlist.Places)
	assert.Empty(t, playlist.Thumbnails)

	owner, err := s.GetUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{playlist.ID}, owner.PlaylistIDs)
}

func TestCreatePlaylist_LinkIsIdempotent(t *testing.T) {
	svc, s := setupPlaylistTest(t)
	ctx := context.Background()

	createTestUser(t, s, "user-1")

	playlist, err := svc.CreatePlaylist(ctx, &domain.Playlist{Name: "L", Owner: "user-1"})
	require.NoError(t, err)

	// Re-running the link with the ID already present must not duplicate it.
	ownership := NewOwnershipService(s, testLogger())
	require.NoError(t, ownership.LinkPlaylist(ctx, "user-1", playlist.ID))

	owner, err := s.GetUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{playlist.ID}, owner.PlaylistIDs)
}

func TestCreatePlaylist_DanglingOwnerSkipsLink(t *testing.T) {
	svc, s := setupPlaylistTest(t)
	ctx := context.Background()

	// Owner was never created; the playlist must still be committed.
	playlist, err := svc.CreatePlaylist(ctx, &domain.Playlist{
		Name:  "Orphan",
		Owner: "user-ghost",
	})
	require.NoError(t, err)

	got, err := s.GetPlaylist(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-ghost", got.Owner)
}

func TestCreatePlaylist_InvalidType(t *testing.T) {
	svc, s := setupPlaylistTest(t)

	createTestUser(t, s, "user-1")

	_, err := svc.CreatePlaylist(context.Background(), &domain.Playlist{
		Name:  "Bad Type",
		Owner: "user-1",
		Type:  domain.PlaylistType("mixtape"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}

// failingUserStore simulates a store whose user writes fail while playlist
// operations keep working.
type failingUserStore struct {
	store.Store
}

func (f *failingUserStore) UpdateUser(ctx context.Context, uid string, patch domain.UserPatch) (*domain.User, error) {
	return nil, fmt.Errorf("simulated store failure")
}

func TestCreatePlaylist_OwnerUpdateFailureIsNonFatal(t *testing.T) {
	s := setupTestStore(t)
	logger := testLogger()
	failing := &failingUserStore{Store: s}
	ownership := NewOwnershipService(failing, logger)
	svc := NewPlaylistService(failing, ownership, logger)
	ctx := context.Background()

	createTestUser(t, s, "user-1")

	playlist, err := svc.CreatePlaylist(ctx, &domain.Playlist{
		Name:  "Survives",
		Owner: "user-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, playlist.ID)

	// The playlist is committed and readable even though the owner's
	// playlist list could not be updated.
	got, err := svc.GetPlaylist(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.Owner)

	owner, err := s.GetUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, owner.PlaylistIDs)
}

func TestDeletePlaylist_UnlinksOwner(t *testing.T) {
	svc, s := setupPlaylistTest(t)
	ctx := context.Background()

	createTestUser(t, s, "user-1")

	playlist, err := svc.CreatePlaylist(ctx, &domain.Playlist{Name: "Tmp", Owner: "user-1"})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePlaylist(ctx, playlist.ID))

	_, err = svc.GetPlaylist(ctx, playlist.ID)
	assert.True(t, errors.Is(err, errors.ErrNotFound))

	owner, err := s.GetUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, owner.PlaylistIDs)
}

func TestDeletePlaylist_NotFound(t *testing.T) {
	svc, _ := setupPlaylistTest(t)

	err := svc.DeletePlaylist(context.Background(), "pl-missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestAddPlaceToPlaylist(t *testing.T) {
	svc, s := setupPlaylistTest(t)
	ctx := context.Background()

	createTestUser(t, s, "user-1")
	createTestPlace(t, s, "place-a", "https://img.example.com/a.jpg")

	playlist, err := svc.CreatePlaylist(ctx, &domain.Playlist{Name: "P", Owner: "user-1"})
	require.NoError(t, err)

	updated, err := svc.AddPlaceToPlaylist(ctx, playlist.ID, "place-a")
	require.NoError(t, err)

	assert.Equal(t, []string{"place-a"}, updated.Places)
	require.Len(t, updated.Thumbnails, 1)
	assert.Equal(t, "https://img.example.com/a.jpg", updated.Thumbnails[0].URL)
	assert.Equal(t, "place-a", updated.Thumbnails[0].PlaceID)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestAddPlaceToPlaylist_RepeatedAddIsNoOp(t *testing.T) {
	svc, s := setupPlaylistTest(t)
	ctx := context.Background()

	createTestUser(t, s, "user-1")
	createTestPlace(t, s, "place-a", "https://img.example.com/a.jpg")

	playlist, err := svc.CreatePlaylist(ctx, &domain.Playlist{Name: "P", Owner: "user-1"})
	require.NoError(t, err)

	for range 4 {
		_, err = svc.AddPlaceToPlaylist(ctx, playlist.ID, "place-a")
		require.NoError(t, err)
	}

	got, err := svc.GetPlaylist(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"place-a"}, got.Places)
	assert.Len(t, got.Thumbnails, 1)
}

func TestAddPlaceToPlaylist_MissingPlace(t *testing.T) {
	svc, s := setupPlaylistTest(t)
	ctx := context.Background()

	createTestUser(t, s, "user-1")
	playlist, err := svc.CreatePlaylist(ctx, &domain.Playlist{Name: "P", Owner: "user-1"})
	require.NoError(t, err)

	_, err = svc.AddPlaceToPlaylist(ctx, playlist.ID, "place-missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestAddPlaceToPlaylist_MissingPlaylist(t *testing.T) {
	svc, s := setupPlaylistTest(t)

	createTestPlace(t, s, "place-a", "")

	_, err := svc.AddPlaceToPlaylist(context.Background(), "pl-missing", "place-a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestAddPlaceToPlaylist_NoImageNoThumbnail(t *testing.T) {
	svc, s := setupPlaylistTest(t)
	ctx := context.Background()

	createTestUser(t, s, "user-1")
	createTestPlace(t, s, "place-bare", "")

	playlist, err := svc.CreatePlaylist(ctx, &domain.Playlist{Name: "P", Owner: "user-1"})
	require.NoError(t, err)

	updated, err := svc.AddPlaceToPlaylist(ctx, playlist.ID, "place-bare")
	require.NoError(t, err)

	assert.Equal(t, []string{"place-bare"}, updated.Places)
	assert.Empty(t, updated.Thumbnails)
}

func TestThumbnailCacheBound(t *testing.T) {
	svc, s := setupPlaylistTest(t)
	ctx := context.Background()

	createTestUser(t, s, "user-1")

	playlist, err := svc.CreatePlaylist(ctx, &domain.Playlist{Name: "Full", Owner: "user-1"})
	require.NoError(t, err)

	// Six places with images: the sixth add gets no thumbnail because the
	// cache was already full at its turn. Nothing is evicted.
	placeIDs := make([]string, 6)
	for i := range 6 {
		placeIDs[i] = fmt.Sprintf("place-%d", i)
		createTestPlace(t, s, placeIDs[i], fmt.Sprintf("https://img.example.com/%d.jpg", i))
		_, err = svc.AddPlaceToPlaylist(ctx, playlist.ID, placeIDs[i])
		require.NoError(t, err)
	}

	got, err := svc.GetPlaylist(ctx, playlist.ID)
	require.NoError(t, err)

	assert.Equal(t, placeIDs, got.Places)
	require.Len(t, got.Thumbnails, domain.MaxThumbnails)
	for i, thumb := range got.Thumbnails {
		assert.Equal(t, placeIDs[i], thumb.PlaceID)
	}

	// Removing the oldest place frees a slot and cleans its thumbnail; the
	// remaining thumbnails keep their order.
	afterRemove, err := svc.RemovePlaceFromPlaylist(ctx, playlist.ID, placeIDs[0])
	require.NoError(t, err)

	assert.Equal(t, placeIDs[1:], afterRemove.Places)
	require.Len(t, afterRemove.Thumbnails, 4)
	for i, thumb := range afterRemove.Thumbnails {
		assert.Equal(t, placeIDs[i+1], thumb.PlaceID)
	}
}

func TestRemovePlaceFromPlaylist_CleansThumbnails(t *testing.T) {
	svc, s := setupPlaylistTest(t)
	ctx := context.Background()

	createTestUser(t, s, "user-1")
	createTestPlace(t, s, "place-a", "https://img.example.com/a.jpg")
	createTestPlace(t, s, "place-b", "https://img.example.com/b.jpg")

	playlist, err := svc.CreatePlaylist(ctx, &domain.Playlist{Name: "P", Owner: "user-1"})
	require.NoError(t, err)

	_, err = svc.AddPlaceToPlaylist(ctx, playlist.ID, "place-a")
	require.NoError(t, err)
	_, err = svc.AddPlaceToPlaylist(ctx, playlist.ID, "place-b")
	require.NoError(t, err)

	updated, err := svc.RemovePlaceFromPlaylist(ctx, playlist.ID, "place-a")
	require.NoError(t, err)

	assert.Equal(t, []string{"place-b"}, updated.Places)
	require.Len(t, updated.Thumbnails, 1)
	assert.Equal(t, "place-b", updated.Thumbnails[0].PlaceID)
	assert.False(t, updated.HasThumbnailFor("place-a"))
}

func TestRemovePlaceFromPlaylist_AbsentIsNoOp(t *testing.T) {
	svc, s := setupPlaylistTest(t)
	ctx := context.Background()

	createTestUser(t, s, "user-1")
	createTestPlace(t, s, "place-a", "")

	playlist, err := svc.CreatePlaylist(ctx, &domain.Playlist{Name: "P", Owner: "user-1"})
	require.NoError(t, err)
	_, err = svc.AddPlaceToPlaylist(ctx, playlist.ID, "place-a")
	require.NoError(t, err)

	updated, err := svc.RemovePlaceFromPlaylist(ctx, playlist.ID, "place-never-added")
	require.NoError(t, err)
	assert.Equal(t, []string{"place-a"}, updated.Places)
}

func TestFindPlaylistsByIDs_DedupesAndSkipsMissing(t *testing.T) {
	svc, s := setupPlaylistTest(t)
	ctx := context.Background()

	createTestUser(t, s, "user-1")

	p1, err := svc.CreatePlaylist(ctx, &domain.Playlist{Name: "One", Owner: "user-1"})
	require.NoError(t, err)
	p2, err := svc.CreatePlaylist(ctx, &domain.Playlist{Name: "Two", Owner: "user-1"})
	require.NoError(t, err)

	got, err := svc.FindPlaylistsByIDs(ctx, []string{p1.ID, p2.ID, p1.ID, "pl-missing", p1.ID})
	require.NoError(t, err)

	require.Len(t, got, 2)
	ids := []string{got[0].ID, got[1].ID}
	assert.Contains(t, ids, p1.ID)
	assert.Contains(t, ids, p2.ID)
}

func TestFindPlaylistsByIDs_EmptyInput(t *testing.T) {
	svc, _ := setupPlaylistTest(t)

	got, err := svc.FindPlaylistsByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFindPlaylistsByUser(t *testing.T) {
	svc, s := setupPlaylistTest(t)
	ctx := context.Background()

	createTestUser(t, s, "user-1")
	createTestUser(t, s, "user-2")

	p1, err := svc.CreatePlaylist(ctx, &domain.Playlist{Name: "Mine", Owner: "user-1"})
	require.NoError(t, err)
	_, err = svc.CreatePlaylist(ctx, &domain.Playlist{Name: "Theirs", Owner: "user-2"})
	require.NoError(t, err)

	got, err := svc.FindPlaylistsByUser(ctx, "user-1")
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, p1.ID, got[0].ID)
}

func TestUpdatePlaylist_MetadataOnly(t *testing.T) {
	svc, s := setupPlaylistTest(t)
	ctx := context.Background()

	createTestUser(t, s, "user-1")
	playlist, err := svc.CreatePlaylist(ctx, &domain.Playlist{Name: "Old", Owner: "user-1"})
	require.NoError(t, err)

	newName := "New Name"
	visible := true
	updated, err := svc.UpdatePlaylist(ctx, playlist.ID, domain.PlaylistPatch{
		Name:      &newName,
		IsVisible: &visible,
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.True(t, updated.IsVisible)
	assert.Equal(t, "user-1", updated.Owner)
}

func TestUpdatePlaylist_InvalidType(t *testing.T) {
	svc, s := setupPlaylistTest(t)
	ctx := context.Background()

	createTestUser(t, s, "user-1")
	playlist, err := svc.CreatePlaylist(ctx, &domain.Playlist{Name: "P", Owner: "user-1"})
	require.NoError(t, err)

	bad := domain.PlaylistType("mixtape")
	_, err = svc.UpdatePlaylist(ctx, playlist.ID, domain.PlaylistPatch{Type: &bad})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrValidation))
}
