package domain

import (
	"slices"
	"time"
)

// PlaylistType categorizes who curates a playlist.
type PlaylistType string

const (
	// PlaylistTypeUser is a playlist created and owned by a regular user.
	PlaylistTypeUser PlaylistType = "user"
	// PlaylistTypeOfficial is a playlist curated by the service itself.
	PlaylistTypeOfficial PlaylistType = "official"
	// PlaylistTypeFeatured is an official playlist promoted on the main page.
	PlaylistTypeFeatured PlaylistType = "featured"
)

// Valid reports whether t is one of the known playlist types.
func (t PlaylistType) Valid() bool {
	switch t {
	case PlaylistTypeUser, PlaylistTypeOfficial, PlaylistTypeFeatured:
		return true
	}
	return false
}

// MaxThumbnails is the per-playlist thumbnail cap. Once reached, adding a
// place does not produce a thumbnail; nothing is evicted to make room.
const MaxThumbnails = 5

// Thumbnail is a value type pairing a preview image URL with the place it
// was derived from. It has no identity of its own and always lives inside
// exactly one playlist document.
type Thumbnail struct {
	URL     string `json:"url"`
	PlaceID string `json:"place_id"`
}

// Playlist is an ordered collection of place IDs owned by a single user.
// Owner is required at creation and immutable afterwards. Places holds
// membership (no duplicates); Thumbnails caches up to MaxThumbnails preview
// images in insertion order.
type Playlist struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	IsVisible   bool         `json:"is_visible"`
	Owner       string       `json:"owner"`
	Type        PlaylistType `json:"type"`
	Places      []string     `json:"places"`
	Thumbnails  []Thumbnail  `json:"thumbnails"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ContainsPlace checks if a place ID is in this playlist.
func (p *Playlist) ContainsPlace(placeID string) bool {
	return slices.Contains(p.Places, placeID)
}

// AddPlace adds a place ID to the playlist if not already present.
// Returns false if the ID was already a member.
func (p *Playlist) AddPlace(placeID string) bool {
	if slices.Contains(p.Places, placeID) {
		return false
	}
	p.Places = append(p.Places, placeID)
	return true
}

// RemovePlace removes a place ID along with every thumbnail derived from
// it. Unaffected thumbnails keep their relative order.
// Returns false if the ID was not a member.
func (p *Playlist) RemovePlace(placeID string) bool {
	n := len(p.Places)
	p.Places = slices.DeleteFunc(p.Places, func(id string) bool {
		return id == placeID
	})
	if len(p.Places) == n {
		return false
	}
	p.Thumbnails = slices.DeleteFunc(p.Thumbnails, func(t Thumbnail) bool {
		return t.PlaceID == placeID
	})
	return true
}

// AddThumbnail appends a thumbnail for the given place if the cache has
// room. At capacity the thumbnail is simply not added; existing entries are
// never evicted on add.
// Returns false if the cache was full.
func (p *Playlist) AddThumbnail(url, placeID string) bool {
	if len(p.Thumbnails) >= MaxThumbnails {
		return false
	}
	p.Thumbnails = append(p.Thumbnails, Thumbnail{URL: url, PlaceID: placeID})
	return true
}

// HasThumbnailFor checks whether any cached thumbnail was derived from the
// given place.
func (p *Playlist) HasThumbnailFor(placeID string) bool {
	return slices.ContainsFunc(p.Thumbnails, func(t Thumbnail) bool {
		return t.PlaceID == placeID
	})
}
