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

// PlaceService manages place documents.
type PlaceService struct {
	store  store.Store
	logger *slog.Logger
}

// NewPlaceService creates a new place service.
func NewPlaceService(store store.Store, logger *slog.Logger) *PlaceService {
	return &PlaceService{
		store:  store,
		logger: logger,
	}
}

// CreatePlace persists a new place, generating an ID when absent and
// deriving the tag string from the tag list.
func (s *PlaceService) CreatePlace(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if place.Name == "" {
		return nil, errors.Validation("place name is required")
	}

	if place.ID == "" {
		placeID, err := id.Generate("place")
		if err != nil {
			return nil, fmt.Errorf("generate place ID: %w", err)
		}
		place.ID = placeID
	}

	if len(place.Tags) > 0 && place.TagsStr == "" {
		place.JoinTags()
	}
	if place.CreateDate.IsZero() {
		place.CreateDate = time.Now()
	}

	if err := s.store.CreatePlace(ctx, place); err != nil {
		return nil, storeError(err, "place "+place.ID+" not found")
	}

	s.logger.Info("place created",
		"id", place.ID,
		"name", place.Name,
	)
	return place, nil
}

// GetPlace retrieves a place by ID.
func (s *PlaceService) GetPlace(ctx context.Context, placeID string) (*domain.Place, error) {
	place, err := s.store.GetPlace(ctx, placeID)
	if err != nil {
		return nil, storeError(err, "place "+placeID+" not found")
	}
	return place, nil
}

// FindPlacesByIDs resolves an ID list to place documents. Duplicates in the
// input are collapsed; IDs with no document are omitted. An empty input
// never touches the store.
func (s *PlaceService) FindPlacesByIDs(ctx context.Context, placeIDs []string) ([]*domain.Place, error) {
	deduped := dedupeIDs(placeIDs)
	if len(deduped) == 0 {
		return []*domain.Place{}, nil
	}

	places, err := s.store.GetPlacesByIDs(ctx, deduped)
	if err != nil {
		return nil, storeError(err, "places not found")
	}
	return places, nil
}

// ListPlaces returns places matching the filter.
func (s *PlaceService) ListPlaces(ctx context.Context, filter store.PlaceFilter) ([]*domain.Place, error) {
	places, err := s.store.ListPlaces(ctx, filter)
	if err != nil {
		return nil, storeError(err, "places not found")
	}
	return places, nil
}

// UpdatePlace applies a partial update to a place.
func (s *PlaceService) UpdatePlace(ctx context.Context, placeID string, patch domain.PlacePatch) (*domain.Place, error) {
	place, err := s.store.UpdatePlace(ctx, placeID, patch)
	if err != nil {
		return nil, storeError(err, "place "+placeID+" not found")
	}
	return place, nil
}

// DeletePlace removes a place document. Playlist membership lists that still
// reference the ID are not swept; batch resolution simply stops returning
// the place.
func (s *PlaceService) DeletePlace(ctx context.Context, placeID string) error {
	if err := s.store.DeletePlace(ctx, placeID); err != nil {
		return storeError(err, "place "+placeID+" not found")
	}

	s.logger.Info("place deleted", "id", placeID)
	return nil
}
