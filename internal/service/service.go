// Package service provides the business logic layer: entity CRUD, playlist
// membership operations, ownership bookkeeping, and batch resolution.
package service

import (
	"github.com/riverandeye/spotserver/internal/domain"
	"github.com/riverandeye/spotserver/internal/errors"
	"github.com/riverandeye/spotserver/internal/store"
)

// userPlaylistsPatch builds a patch that replaces a user's playlist list.
func userPlaylistsPatch(playlistIDs []string) domain.UserPatch {
	return domain.UserPatch{PlaylistIDs: &playlistIDs}
}

// dedupeIDs removes duplicate IDs while preserving first-seen order. Batch
// lookups dedupe before hitting the store so a caller repeating an ID costs
// one fetch and yields one entry.
func dedupeIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// storeError converts store sentinels into domain errors. Sentinels the
// switch doesn't name (real store failures, canceled contexts) become
// UNAVAILABLE: the store call itself failed, which is distinct from a
// document being absent.
func storeError(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrPlaceNotFound),
		errors.Is(err, store.ErrPlaylistNotFound),
		errors.Is(err, store.ErrAdminNotFound):
		return errors.NotFound(notFoundMsg)
	case errors.Is(err, store.ErrDuplicateUser),
		errors.Is(err, store.ErrDuplicatePlace),
		errors.Is(err, store.ErrDuplicatePlaylist),
		errors.Is(err, store.ErrDuplicateAdmin):
		return errors.AlreadyExists("document already exists")
	default:
		return errors.Wrap(err, errors.CodeUnavailable, "store operation failed")
	}
}
