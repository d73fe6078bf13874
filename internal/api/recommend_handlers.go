package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/riverandeye/spotserver/internal/http/response"
)

// RecommendRequest represents the request body for a recommendation query.
type RecommendRequest struct {
	Query      string `json:"query" validate:"required,max=500"`
	MaxResults int    `json:"max_results" validate:"omitempty,gte=1,lte=20"`
}

// handleRecommend runs the full recommendation pass: query screening,
// place search and a generated summary message.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	rec, err := s.recommendService.Recommend(r.Context(), req.Query, req.MaxResults)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, rec, s.logger)
}

// handleSearchPlaces exposes the raw place search without the summarizer.
func (s *Server) handleSearchPlaces(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	places, err := s.recommendService.SearchPlaces(r.Context(), req.Query, req.MaxResults)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, places, s.logger)
}
