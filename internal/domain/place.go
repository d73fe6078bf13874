package domain

import "time"

// GeoPoint is a latitude/longitude pair. Stored as a two-element array in
// the original Firestore documents; kept as an explicit struct here.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place represents a venue (bar, restaurant, cafe) that can be added to
// playlists. Read-mostly: playlists reference places by ID and derive
// thumbnails from the place images.
type Place struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	NameCor        string    `json:"name_cor,omitempty"`
	Address        string    `json:"address,omitempty"`
	AddressCor     string    `json:"address_cor,omitempty"`
	AreaName       string    `json:"area_name,omitempty"`
	City           string    `json:"city,omitempty"`
	Coord          *GeoPoint `json:"coord,omitempty"`
	Description    string    `json:"description,omitempty"`
	FirstImage     string    `json:"first_image,omitempty"`
	Images         []string  `json:"images,omitempty"`
	InMainPage     bool      `json:"in_main_page"`
	Instagram      string    `json:"instagram,omitempty"`
	IsConfirm      bool      `json:"is_confirm"`
	Link1          string    `json:"link_1,omitempty"`
	Link2          string    `json:"link_2,omitempty"`
	OperationHours string    `json:"operation_hours,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Tags           []string  `json:"tags,omitempty"`
	TagsStr        string    `json:"tags_str,omitempty"`
	Type           string    `json:"type,omitempty"`
	CreateDate     time.Time `json:"create_date"`
}

// ThumbnailURL returns the image URL a playlist thumbnail should use for
// this place: the first image if set, otherwise the first element of the
// image list, otherwise empty (no thumbnail candidate).
func (p *Place) ThumbnailURL() string {
	if p.FirstImage != "" {
		return p.FirstImage
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// JoinTags rebuilds the space-separated tag string used by the search
// backfill scripts. Called on create/update when tags change.
func (p *Place) JoinTags() {
	p.TagsStr = ""
	for i, tag := range p.Tags {
		if i > 0 {
			p.TagsStr += " "
		}
		p.TagsStr += tag
	}
}
