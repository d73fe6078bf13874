package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverandeye/spotserver/internal/domain"
)

func TestChunkIDs(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		size       int
		wantChunks []int // expected length of each chunk
	}{
		{"empty", 0, 10, nil},
		{"single", 1, 10, []int{1}},
		{"exactly one chunk", 10, 10, []int{10}},
		{"one over", 11, 10, []int{10, 1}},
		{"two full chunks", 20, 10, []int{10, 10}},
		{"uneven tail", 25, 10, []int{10, 10, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := make([]string, tt.count)
			for i := range ids {
				ids[i] = fmt.Sprintf("id-%03d", i)
			}

			chunks := chunkIDs(ids, tt.size)
			require.Len(t, chunks, len(tt.wantChunks))

			// Every input ID lands in exactly one chunk, in order.
			var flattened []string
			for i, chunk := range chunks {
				assert.Len(t, chunk, tt.wantChunks[i])
				flattened = append(flattened, chunk...)
			}
			assert.Equal(t, ids, flattened)
		})
	}
}

func TestGetPlacesByIDs_SkipsMissing(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for i := range 3 {
		require.NoError(t, s.CreatePlace(ctx, &domain.Place{
			ID:   fmt.Sprintf("place-%d", i),
			Name: fmt.Sprintf("Place %d", i),
		}))
	}

	got, err := s.GetPlacesByIDs(ctx, []string{"place-0", "place-missing", "place-2"})
	require.NoError(t, err)

	require.Len(t, got, 2)
	ids := []string{got[0].ID, got[1].ID}
	assert.Contains(t, ids, "place-0")
	assert.Contains(t, ids, "place-2")
}

func TestGetPlacesByIDs_SingleIDUsesPointGet(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.CreatePlace(ctx, &domain.Place{ID: "place-a", Name: "A"}))

	got, err := s.GetPlacesByIDs(ctx, []string{"place-a"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "place-a", got[0].ID)

	// A missing single ID is silently omitted, not an error.
	got, err = s.GetPlacesByIDs(ctx, []string{"place-missing"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetPlacesByIDs_CrossesChunkBoundaries(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	// More IDs than one set query may carry; every existing document must
	// come back exactly once regardless of which chunk its ID lands in.
	var ids []string
	for i := range 27 {
		placeID := fmt.Sprintf("place-%02d", i)
		ids = append(ids, placeID)
		if i%3 == 0 {
			// Every third ID has no document.
			continue
		}
		require.NoError(t, s.CreatePlace(ctx, &domain.Place{ID: placeID, Name: placeID}))
	}

	got, err := s.GetPlacesByIDs(ctx, ids)
	require.NoError(t, err)

	require.Len(t, got, 18)
	seen := make(map[string]int)
	for _, p := range got {
		seen[p.ID]++
	}
	for placeID, n := range seen {
		assert.Equal(t, 1, n, "place %s returned %d times", placeID, n)
	}
}

func TestGetUsersByIDs_Empty(t *testing.T) {
	s := setupTestStore(t)

	got, err := s.GetUsersByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetPlaylistsByIDs(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for i := range 12 {
		require.NoError(t, s.CreatePlaylist(ctx, &domain.Playlist{
			ID:    fmt.Sprintf("pl-%02d", i),
			Name:  fmt.Sprintf("Playlist %d", i),
			Owner: "user-1",
			Type:  domain.PlaylistTypeUser,
		}))
	}

	var ids []string
	for i := range 12 {
		ids = append(ids, fmt.Sprintf("pl-%02d", i))
	}

	got, err := s.GetPlaylistsByIDs(ctx, ids)
	require.NoError(t, err)
	assert.Len(t, got, 12)
}
