package store

import (
	"context"
	"fmt"

	"github.com/riverandeye/spotserver/internal/domain"
)

// CreatePlace stores a new place document.
func (s *DB) CreatePlace(ctx context.Context, place *domain.Place) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := createDoc(s, placePrefix, place.ID, place, ErrDuplicatePlace); err != nil {
		return fmt.Errorf("create place: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("place created", "id", place.ID, "name", place.Name)
	}
	return nil
}

// GetPlace retrieves a place by ID.
func (s *DB) GetPlace(ctx context.Context, id string) (*domain.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return getDoc[domain.Place](s, placePrefix, id, ErrPlaceNotFound)
}

// GetPlacesByIDs retrieves the places for an ID list, chunked per the
// ID-set query limit. Missing IDs are skipped.
func (s *DB) GetPlacesByIDs(ctx context.Context, ids []string) ([]*domain.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return getDocsByIDs[domain.Place](s, placePrefix, ids)
}

// ListPlaces returns place documents matching the filter.
func (s *DB) ListPlaces(ctx context.Context, filter PlaceFilter) ([]*domain.Place, error) {
	match := func(p *domain.Place) bool {
		return filter.Type == "" || p.Type == filter.Type
	}
	return listDocs[domain.Place](s, ctx, placePrefix, match, filter.Limit)
}

// UpdatePlace applies a partial update to a place document and returns the
// updated place. The ID is immutable; it is not part of the patch type.
func (s *DB) UpdatePlace(ctx context.Context, id string, patch domain.PlacePatch) (*domain.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	place, err := s.GetPlace(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(place)

	if err := saveDoc(s, placePrefix, id, place, ErrPlaceNotFound); err != nil {
		return nil, fmt.Errorf("update place: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("place updated", "id", id)
	}
	return place, nil
}

// DeletePlace removes a place document. Playlists referencing the place are
// not swept here; their membership lists are corrected through the playlist
// remove-place operation.
func (s *DB) DeletePlace(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := deleteDoc(s, placePrefix, id, ErrPlaceNotFound); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("place deleted", "id", id)
	}
	return nil
}
