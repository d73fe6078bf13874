// Package store defines the persistence interface for the spotserver backend.
package store

import (
	"context"

	"github.com/riverandeye/spotserver/internal/domain"
)

// PlaylistFilter narrows ListPlaylists results. Zero values mean "no filter".
type PlaylistFilter struct {
	Owner string
	Type  domain.PlaylistType
	Limit int
}

// PlaceFilter narrows ListPlaces results. Zero values mean "no filter".
type PlaceFilter struct {
	Type  string
	Limit int
}

// Store defines the interface for all persistence operations.
//
// GetPlacesByIDs / GetPlaylistsByIDs / GetUsersByIDs accept ID sets of any
// size and internally split them into chunks of at most ten IDs, the
// enforced ceiling for ID-set queries. Documents for nonexistent IDs are
// silently omitted, never reported as errors.
type Store interface {
	// Lifecycle
	Close() error

	// Users
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, uid string) (*domain.User, error)
	GetUsersByIDs(ctx context.Context, uids []string) ([]*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, uid string, patch domain.UserPatch) (*domain.User, error)
	DeleteUser(ctx context.Context, uid string) error

	// Places
	CreatePlace(ctx context.Context, place *domain.Place) error
	GetPlace(ctx context.Context, id string) (*domain.Place, error)
	GetPlacesByIDs(ctx context.Context, ids []string) ([]*domain.Place, error)
	ListPlaces(ctx context.Context, filter PlaceFilter) ([]*domain.Place, error)
	UpdatePlace(ctx context.Context, id string, patch domain.PlacePatch) (*domain.Place, error)
	DeletePlace(ctx context.Context, id string) error

	// Playlists
	CreatePlaylist(ctx context.Context, playlist *domain.Playlist) error
	GetPlaylist(ctx context.Context, id string) (*domain.Playlist, error)
	GetPlaylistsByIDs(ctx context.Context, ids []string) ([]*domain.Playlist, error)
	ListPlaylists(ctx context.Context, filter PlaylistFilter) ([]*domain.Playlist, error)
	UpdatePlaylist(ctx context.Context, id string, patch domain.PlaylistPatch) (*domain.Playlist, error)
	SavePlaylist(ctx context.Context, playlist *domain.Playlist) error
	DeletePlaylist(ctx context.Context, id string) error

	// Admins
	CreateAdmin(ctx context.Context, admin *domain.Admin) error
	GetAdmin(ctx context.Context, uid string) (*domain.Admin, error)
	ListAdmins(ctx context.Context) ([]*domain.Admin, error)
	UpdateAdmin(ctx context.Context, uid string, patch domain.AdminPatch) (*domain.Admin, error)
	DeleteAdmin(ctx context.Context, uid string) error
}
