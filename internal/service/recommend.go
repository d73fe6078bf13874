package service

import (
	"context"
	"log/slog"

	"github.com/riverandeye/spotserver/internal/errors"
	"github.com/riverandeye/spotserver/internal/recommend"
)

// RecommendService is a thin passthrough to the external recommendation
// upstreams. No ranking or prompt logic lives here; the service only
// translates upstream failures into domain errors.
type RecommendService struct {
	client *recommend.Client
	logger *slog.Logger
}

// NewRecommendService creates a new recommendation service.
func NewRecommendService(client *recommend.Client, logger *slog.Logger) *RecommendService {
	return &RecommendService{
		client: client,
		logger: logger,
	}
}

// Recommend runs the full recommendation pass for a free-text query.
func (s *RecommendService) Recommend(ctx context.Context, query string, maxResults int) (*recommend.Recommendation, error) {
	if query == "" {
		return nil, errors.Validation("query is required")
	}

	rec, err := s.client.Recommend(ctx, query, maxResults)
	if err != nil {
		if errors.Is(err, recommend.ErrNotConfigured) {
			return nil, errors.Unavailable("recommendation service is not configured")
		}
		s.logger.Error("recommendation failed", "error", err)
		return nil, errors.Wrap(err, errors.CodeUnavailable, "recommendation upstream failed")
	}
	return rec, nil
}

// SearchPlaces exposes the raw vector search without the chat summarizer.
func (s *RecommendService) SearchPlaces(ctx context.Context, query string, maxResults int) ([]recommend.Place, error) {
	if query == "" {
		return nil, errors.Validation("query is required")
	}

	places, err := s.client.SearchPlaces(ctx, query, maxResults)
	if err != nil {
		if errors.Is(err, recommend.ErrNotConfigured) {
			return nil, errors.Unavailable("recommendation service is not configured")
		}
		s.logger.Error("place search failed", "error", err)
		return nil, errors.Wrap(err, errors.CodeUnavailable, "search upstream failed")
	}
	return places, nil
}
