package domain

import (
	"slices"
	"time"
)

// User represents an app user account. The UID is assigned by the external
// identity provider and doubles as the document ID; it is never regenerated
// or rewritten after creation.
//
// PlaylistIDs denormalizes playlist ownership: every playlist whose Owner
// field is this user should eventually appear here. The two documents are
// updated independently (no cross-document transaction), so the list can be
// briefly stale after a crash between the two writes.
type User struct {
	UID             string    `json:"uid"`
	Email           string    `json:"email"`
	DisplayName     string    `json:"display_name"`
	FullName        string    `json:"full_name"`
	PhotoURL        string    `json:"photo_url,omitempty"`
	Role            string    `json:"role,omitempty"`
	PlaylistIDs     []string  `json:"playlist_ids"`
	DefaultPlaylist string    `json:"default_playlist,omitempty"`
	CreatedTime     time.Time `json:"created_time"`
}

// AddPlaylist appends a playlist ID if not already present.
// Returns false if the ID was already in the list.
func (u *User) AddPlaylist(playlistID string) bool {
	if slices.Contains(u.PlaylistIDs, playlistID) {
		return false
	}
	u.PlaylistIDs = append(u.PlaylistIDs, playlistID)
	return true
}

// RemovePlaylist removes a playlist ID from the list.
// Returns false if the ID was not present.
func (u *User) RemovePlaylist(playlistID string) bool {
	for i, id := range u.PlaylistIDs {
		if id == playlistID {
			u.PlaylistIDs = append(u.PlaylistIDs[:i], u.PlaylistIDs[i+1:]...)
			return true
		}
	}
	return false
}

// OwnsPlaylist checks whether a playlist ID is in the user's list.
func (u *User) OwnsPlaylist(playlistID string) bool {
	return slices.Contains(u.PlaylistIDs, playlistID)
}
