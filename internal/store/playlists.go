package store

import (
	"context"
	"fmt"
	"time"

	"github.com/riverandeye/spotserver/internal/domain"
)

// CreatePlaylist stores a new playlist document.
func (s *DB) CreatePlaylist(ctx context.Context, playlist *domain.Playlist) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := createDoc(s, playlistPrefix, playlist.ID, playlist, ErrDuplicatePlaylist); err != nil {
		return fmt.Errorf("create playlist: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("playlist created",
			"id", playlist.ID,
			"name", playlist.Name,
			"owner", playlist.Owner,
			"type", string(playlist.Type),
		)
	}
	return nil
}

// GetPlaylist retrieves a playlist by ID.
func (s *DB) GetPlaylist(ctx context.Context, id string) (*domain.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return getDoc[domain.Playlist](s, playlistPrefix, id, ErrPlaylistNotFound)
}

// GetPlaylistsByIDs retrieves the playlists for an ID list, chunked per the
// ID-set query limit. Missing IDs are skipped.
func (s *DB) GetPlaylistsByIDs(ctx context.Context, ids []string) ([]*domain.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return getDocsByIDs[domain.Playlist](s, playlistPrefix, ids)
}

// ListPlaylists returns playlist documents matching the filter.
func (s *DB) ListPlaylists(ctx context.Context, filter PlaylistFilter) ([]*domain.Playlist, error) {
	match := func(p *domain.Playlist) bool {
		if filter.Owner != "" && p.Owner != filter.Owner {
			return false
		}
		if filter.Type != "" && p.Type != filter.Type {
			return false
		}
		return true
	}
	return listDocs[domain.Playlist](s, ctx, playlistPrefix, match, filter.Limit)
}

// UpdatePlaylist applies a metadata patch to a playlist and returns the
// updated document. Owner and ID are immutable; membership and thumbnails
// change only through SavePlaylist after the service-level add/remove.
func (s *DB) UpdatePlaylist(ctx context.Context, id string, patch domain.PlaylistPatch) (*domain.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	playlist, err := s.GetPlaylist(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(playlist)
	playlist.UpdatedAt = time.Now()

	if err := saveDoc(s, playlistPrefix, id, playlist, ErrPlaylistNotFound); err != nil {
		return nil, fmt.Errorf("update playlist: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("playlist updated", "id", id)
	}
	return playlist, nil
}

// SavePlaylist writes the full playlist document, stamping updated_at.
// This is the persistence step of the read-modify-write cycle used by the
// add/remove place operations; last writer wins on the whole document.
func (s *DB) SavePlaylist(ctx context.Context, playlist *domain.Playlist) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	playlist.UpdatedAt = time.Now()

	if err := saveDoc(s, playlistPrefix, playlist.ID, playlist, ErrPlaylistNotFound); err != nil {
		return fmt.Errorf("save playlist: %w", err)
	}
	return nil
}

// DeletePlaylist removes a playlist document.
func (s *DB) DeletePlaylist(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := deleteDoc(s, playlistPrefix, id, ErrPlaylistNotFound); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("playlist deleted", "id", id)
	}
	return nil
}
