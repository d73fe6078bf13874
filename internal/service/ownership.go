package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riverandeye/spotserver/internal/store"
)

// OwnershipService keeps User.PlaylistIDs in step with Playlist.Owner. The
// two documents live in different collections and there is no cross-document
// transaction, so both directions are written independently: the playlist
// write commits first, then the owner's list is patched here. Callers treat
// a failure as a warning, never as a reason to undo the playlist write.
type OwnershipService struct {
	store  store.Store
	logger *slog.Logger
}

// NewOwnershipService creates a new ownership service.
func NewOwnershipService(store store.Store, logger *slog.Logger) *OwnershipService {
	return &OwnershipService{
		store:  store,
		logger: logger,
	}
}

// LinkPlaylist records playlistID in the owner's playlist list. Idempotent:
// if the ID is already present, or the owner document does not exist, this
// is a no-op and returns nil.
func (s *OwnershipService) LinkPlaylist(ctx context.Context, ownerUID, playlistID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	owner, err := s.store.GetUser(ctx, ownerUID)
	if err != nil {
		if store.IsNotFound(err) {
			// Owner may predate the user collection or have been deleted;
			// the playlist keeps its owner field either way.
			s.logger.Warn("playlist owner not found, skipping link",
				"owner", ownerUID,
				"playlist_id", playlistID,
			)
			return nil
		}
		return fmt.Errorf("get owner: %w", err)
	}

	if !owner.AddPlaylist(playlistID) {
		return nil
	}

	if _, err := s.store.UpdateUser(ctx, ownerUID, userPlaylistsPatch(owner.PlaylistIDs)); err != nil {
		return fmt.Errorf("update owner playlists: %w", err)
	}

	s.logger.Info("playlist linked to owner",
		"owner", ownerUID,
		"playlist_id", playlistID,
	)
	return nil
}

// UnlinkPlaylist removes playlistID from the owner's playlist list.
// Idempotent: absent ID or absent owner is a no-op returning nil.
func (s *OwnershipService) UnlinkPlaylist(ctx context.Context, ownerUID, playlistID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	owner, err := s.store.GetUser(ctx, ownerUID)
	if err != nil {
		if store.IsNotFound(err) {
			s.logger.Warn("playlist owner not found, skipping unlink",
				"owner", ownerUID,
				"playlist_id", playlistID,
			)
			return nil
		}
		return fmt.Errorf("get owner: %w", err)
	}

	if !owner.RemovePlaylist(playlistID) {
		return nil
	}

	if _, err := s.store.UpdateUser(ctx, ownerUID, userPlaylistsPatch(owner.PlaylistIDs)); err != nil {
		return fmt.Errorf("update owner playlists: %w", err)
	}

	s.logger.Info("playlist unlinked from owner",
		"owner", ownerUID,
		"playlist_id", playlistID,
	)
	return nil
}
