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

// PlaylistService composes the store, ownership bookkeeping, and the
// per-playlist thumbnail cache into the externally visible playlist
// operations.
//
// Write policy: the playlist document is the primary write and its failure
// always propagates. The owner's playlist list is a secondary write handled
// by OwnershipService; its failure is logged and the primary result is still
// returned.
type PlaylistService struct {
	store     store.Store
	ownership *OwnershipService
	logger    *slog.Logger
}

// NewPlaylistService creates a new playlist service.
func NewPlaylistService(store store.Store, ownership *OwnershipService, logger *slog.Logger) *PlaylistService {
	return &PlaylistService{
		store:     store,
		ownership: ownership,
		logger:    logger,
	}
}

// CreatePlaylist persists a new playlist and then links it into the owner's
// playlist list. The owner field is required and immutable; it is not
// checked against the user collection here — a dangling owner only means the
// link step is skipped.
func (s *PlaylistService) CreatePlaylist(ctx context.Context, playlist *domain.Playlist) (*domain.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if playlist.Owner == "" {
		return nil, errors.Validation("playlist owner is required")
	}
	if playlist.Type == "" {
		playlist.Type = domain.PlaylistTypeUser
	}
	if !playlist.Type.Valid() {
		return nil, errors.Validationf("invalid playlist type %q", playlist.Type)
	}

	if playlist.ID == "" {
		playlistID, err := id.Generate("pl")
		if err != nil {
			return nil, fmt.Errorf("generate playlist ID: %w", err)
		}
		playlist.ID = playlistID
	}

	playlist.Places = []string{}
	playlist.Thumbnails = []domain.Thumbnail{}
	now := time.Now()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now

	if err := s.store.CreatePlaylist(ctx, playlist); err != nil {
		return nil, storeError(err, "playlist "+playlist.ID+" not found")
	}

	// Secondary write: best-effort, the playlist is already committed.
	if err := s.ownership.LinkPlaylist(ctx, playlist.Owner, playlist.ID); err != nil {
		s.logger.Warn("failed to link playlist to owner",
			"playlist_id", playlist.ID,
			"owner", playlist.Owner,
			"error", err,
		)
	}

	s.logger.Info("playlist created",
		"playlist_id", playlist.ID,
		"owner", playlist.Owner,
		"type", string(playlist.Type),
	)
	return playlist, nil
}

// GetPlaylist retrieves a playlist by ID.
func (s *PlaylistService) GetPlaylist(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	playlist, err := s.store.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, storeError(err, "playlist "+playlistID+" not found")
	}
	return playlist, nil
}

// FindPlaylistsByIDs resolves an ID list to playlist documents. Duplicates
// are collapsed, missing IDs omitted, empty input short-circuits.
func (s *PlaylistService) FindPlaylistsByIDs(ctx context.Context, playlistIDs []string) ([]*domain.Playlist, error) {
	deduped := dedupeIDs(playlistIDs)
	if len(deduped) == 0 {
		return []*domain.Playlist{}, nil
	}

	playlists, err := s.store.GetPlaylistsByIDs(ctx, deduped)
	if err != nil {
		return nil, storeError(err, "playlists not found")
	}
	return playlists, nil
}

// FindPlaylistsByUser returns the playlists owned by a user, by owner-field
// query. A stale entry in the user's denormalized playlist list therefore
// never surfaces here.
func (s *PlaylistService) FindPlaylistsByUser(ctx context.Context, ownerUID string) ([]*domain.Playlist, error) {
	playlists, err := s.store.ListPlaylists(ctx, store.PlaylistFilter{Owner: ownerUID})
	if err != nil {
		return nil, storeError(err, "playlists not found")
	}
	return playlists, nil
}

// ListPlaylists returns playlists matching the filter.
func (s *PlaylistService) ListPlaylists(ctx context.Context, filter store.PlaylistFilter) ([]*domain.Playlist, error) {
	playlists, err := s.store.ListPlaylists(ctx, filter)
	if err != nil {
		return nil, storeError(err, "playlists not found")
	}
	return playlists, nil
}

// UpdatePlaylist applies a metadata patch. Owner, membership, and thumbnails
// are not patchable.
func (s *PlaylistService) UpdatePlaylist(ctx context.Context, playlistID string, patch domain.PlaylistPatch) (*domain.Playlist, error) {
	if patch.Type != nil && !patch.Type.Valid() {
		return nil, errors.Validationf("invalid playlist type %q", *patch.Type)
	}

	playlist, err := s.store.UpdatePlaylist(ctx, playlistID, patch)
	if err != nil {
		return nil, storeError(err, "playlist "+playlistID+" not found")
	}
	return playlist, nil
}

// DeletePlaylist removes a playlist and then unlinks it from the owner's
// playlist list (best-effort).
func (s *PlaylistService) DeletePlaylist(ctx context.Context, playlistID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	playlist, err := s.store.GetPlaylist(ctx, playlistID)
	if err != nil {
		return storeError(err, "playlist "+playlistID+" not found")
	}

	if err := s.store.DeletePlaylist(ctx, playlistID); err != nil {
		return storeError(err, "playlist "+playlistID+" not found")
	}

	// Secondary write: best-effort, the delete is already committed.
	if err := s.ownership.UnlinkPlaylist(ctx, playlist.Owner, playlistID); err != nil {
		s.logger.Warn("failed to unlink playlist from owner",
			"playlist_id", playlistID,
			"owner", playlist.Owner,
			"error", err,
		)
	}

	s.logger.Info("playlist deleted",
		"playlist_id", playlistID,
		"owner", playlist.Owner,
	)
	return nil
}

// AddPlaceToPlaylist appends a place to the playlist's membership list and,
// when the thumbnail cache has room and the place offers an image, caches a
// thumbnail for it. Adding a place that is already a member returns the
// playlist unchanged.
//
// The membership check and the write are separate store calls with no
// compare-and-swap, so two concurrent adds of the same place can both pass
// the check and both append. Matching the upstream behavior means leaving
// that race in place rather than serializing per playlist.
func (s *PlaylistService) AddPlaceToPlaylist(ctx context.Context, playlistID, placeID string) (*domain.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	place, err := s.store.GetPlace(ctx, placeID)
	if err != nil {
		return nil, storeError(err, "place "+placeID+" not found")
	}

	playlist, err := s.store.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, storeError(err, "playlist "+playlistID+" not found")
	}

	if !playlist.AddPlace(placeID) {
		// Already a member; nothing to persist.
		return playlist, nil
	}

	if url := place.ThumbnailURL(); url != "" {
		if !playlist.AddThumbnail(url, placeID) {
			s.logger.Debug("thumbnail cache full, skipping",
				"playlist_id", playlistID,
				"place_id", placeID,
			)
		}
	}

	if err := s.store.SavePlaylist(ctx, playlist); err != nil {
		return nil, storeError(err, "playlist "+playlistID+" not found")
	}

	s.logger.Info("place added to playlist",
		"playlist_id", playlistID,
		"place_id", placeID,
	)
	return playlist, nil
}

// RemovePlaceFromPlaylist removes a place from the membership list along
// with any thumbnails derived from it. Removing an absent place returns the
// playlist unchanged.
func (s *PlaylistService) RemovePlaceFromPlaylist(ctx context.Context, playlistID, placeID string) (*domain.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	playlist, err := s.store.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, storeError(err, "playlist "+playlistID+" not found")
	}

	if !playlist.RemovePlace(placeID) {
		// Not a member; nothing to persist.
		return playlist, nil
	}

	if err := s.store.SavePlaylist(ctx, playlist); err != nil {
		return nil, storeError(err, "playlist "+playlistID+" not found")
	}

	s.logger.Info("place removed from playlist",
		"playlist_id", playlistID,
		"place_id", placeID,
	)
	return playlist, nil
}
