package domain

import "time"

// Patch types enumerate the fields a partial update may touch. Identity
// fields (uid, id) and the playlist owner are deliberately absent: they are
// immutable after creation. Nil pointer means "leave unchanged".

// UserPatch is a partial update for a user document.
type UserPatch struct {
	Email           *string   `json:"email,omitempty"`
	DisplayName     *string   `json:"display_name,omitempty"`
	FullName        *string   `json:"full_name,omitempty"`
	PhotoURL        *string   `json:"photo_url,omitempty"`
	Role            *string   `json:"role,omitempty"`
	PlaylistIDs     *[]string `json:"playlist_ids,omitempty"`
	DefaultPlaylist *string   `json:"default_playlist,omitempty"`
}

// Apply copies the set fields onto the user.
func (p UserPatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.DisplayName != nil {
		u.DisplayName = *p.DisplayName
	}
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.PhotoURL != nil {
		u.PhotoURL = *p.PhotoURL
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.PlaylistIDs != nil {
		u.PlaylistIDs = *p.PlaylistIDs
	}
	if p.DefaultPlaylist != nil {
		u.DefaultPlaylist = *p.DefaultPlaylist
	}
}

// PlacePatch is a partial update for a place document.
type PlacePatch struct {
	Name           *string   `json:"name,omitempty"`
	NameCor        *string   `json:"name_cor,omitempty"`
	Address        *string   `json:"address,omitempty"`
	AddressCor     *string   `json:"address_cor,omitempty"`
	AreaName       *string   `json:"area_name,omitempty"`
	City           *string   `json:"city,omitempty"`
	Coord          *GeoPoint `json:"coord,omitempty"`
	Description    *string   `json:"description,omitempty"`
	FirstImage     *string   `json:"first_image,omitempty"`
	Images         *[]string `json:"images,omitempty"`
	InMainPage     *bool     `json:"in_main_page,omitempty"`
	Instagram      *string   `json:"instagram,omitempty"`
	IsConfirm      *bool     `json:"is_confirm,omitempty"`
	Link1          *string   `json:"link_1,omitempty"`
	Link2          *string   `json:"link_2,omitempty"`
	OperationHours *string   `json:"operation_hours,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Tags           *[]string `json:"tags,omitempty"`
	Type           *string   `json:"type,omitempty"`
}

// Apply copies the set fields onto the place. Updating tags rebuilds the
// derived tag string.
func (p PlacePatch) Apply(place *Place) {
	if p.Name != nil {
		place.Name = *p.Name
	}
	if p.NameCor != nil {
		place.NameCor = *p.NameCor
	}
	if p.Address != nil {
		place.Address = *p.Address
	}
	if p.AddressCor != nil {
		place.AddressCor = *p.AddressCor
	}
	if p.AreaName != nil {
		place.AreaName = *p.AreaName
	}
	if p.City != nil {
		place.City = *p.City
	}
	if p.Coord != nil {
		place.Coord = p.Coord
	}
	if p.Description != nil {
		place.Description = *p.Description
	}
	if p.FirstImage != nil {
		place.FirstImage = *p.FirstImage
	}
	if p.Images != nil {
		place.Images = *p.Images
	}
	if p.InMainPage != nil {
		place.InMainPage = *p.InMainPage
	}
	if p.Instagram != nil {
		place.Instagram = *p.Instagram
	}
	if p.IsConfirm != nil {
		place.IsConfirm = *p.IsConfirm
	}
	if p.Link1 != nil {
		place.Link1 = *p.Link1
	}
	if p.Link2 != nil {
		place.Link2 = *p.Link2
	}
	if p.OperationHours != nil {
		place.OperationHours = *p.OperationHours
	}
	if p.Phone != nil {
		place.Phone = *p.Phone
	}
	if p.Tags != nil {
		place.Tags = *p.Tags
		place.JoinTags()
	}
	if p.Type != nil {
		place.Type = *p.Type
	}
}

// PlaylistPatch is a partial update for playlist metadata. Membership
// (places) and thumbnails are managed by the add/remove place operations,
// not by patches.
type PlaylistPatch struct {
	Name        *string       `json:"name,omitempty"`
	Description *string       `json:"description,omitempty"`
	IsVisible   *bool         `json:"is_visible,omitempty"`
	Type        *PlaylistType `json:"type,omitempty"`
}

// Apply copies the set fields onto the playlist.
func (p PlaylistPatch) Apply(pl *Playlist) {
	if p.Name != nil {
		pl.Name = *p.Name
	}
	if p.Description != nil {
		pl.Description = *p.Description
	}
	if p.IsVisible != nil {
		pl.IsVisible = *p.IsVisible
	}
	if p.Type != nil {
		pl.Type = *p.Type
	}
}

// AdminPatch is a partial update for an admin document.
type AdminPatch struct {
	Email       *string    `json:"email,omitempty"`
	DisplayName *string    `json:"display_name,omitempty"`
	Role        *AdminRole `json:"role,omitempty"`
	Permissions *[]string  `json:"permissions,omitempty"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

// Apply copies the set fields onto the admin.
func (p AdminPatch) Apply(a *Admin) {
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.DisplayName != nil {
		a.DisplayName = *p.DisplayName
	}
	if p.Role != nil {
		a.Role = *p.Role
	}
	if p.Permissions != nil {
		a.Permissions = *p.Permissions
	}
	if p.LastLogin != nil {
		a.LastLogin = *p.LastLogin
	}
}
