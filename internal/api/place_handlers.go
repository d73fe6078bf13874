package api

import (
	"encoding/json/v2"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/riverandeye/spotserver/internal/domain"
	"github.com/riverandeye/spotserver/internal/http/response"
	"github.com/riverandeye/spotserver/internal/store"
)

// GeoPointRequest is a latitude/longitude pair in a request body.
type GeoPointRequest struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// CreatePlaceRequest represents the request body for creating a place.
type CreatePlaceRequest struct {
	Name           string           `json:"name" validate:"required,max=200"`
	NameCor        string           `json:"name_cor" validate:"max=200"`
	Address        string           `json:"address"`
	AddressCor     string           `json:"address_cor"`
	AreaName       string           `json:"area_name"`
	City           string           `json:"city"`
	Coord          *GeoPointRequest `json:"coord" validate:"omitempty"`
	Description    string           `json:"description"`
	FirstImage     string           `json:"first_image" validate:"omitempty,url"`
	Images         []string         `json:"images" validate:"dive,url"`
	InMainPage     bool             `json:"in_main_page"`
	Instagram      string           `json:"instagram"`
	IsConfirm      bool             `json:"is_confirm"`
	Link1          string           `json:"link_1"`
	Link2          string           `json:"link_2"`
	OperationHours string           `json:"operation_hours"`
	Phone          string           `json:"phone"`
	Tags           []string         `json:"tags"`
	Type           string           `json:"type"`
}

// handleCreatePlace creates a new place.
func (s *Server) handleCreatePlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreatePlaceRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	place := &domain.Place{
		Name:           req.Name,
		NameCor:        req.NameCor,
		Address:        req.Address,
		AddressCor:     req.AddressCor,
		AreaName:       req.AreaName,
		City:           req.City,
		Description:    req.Description,
		FirstImage:     req.FirstImage,
		Images:         req.Images,
		InMainPage:     req.InMainPage,
		Instagram:      req.Instagram,
		IsConfirm:      req.IsConfirm,
		Link1:          req.Link1,
		Link2:          req.Link2,
		OperationHours: req.OperationHours,
		Phone:          req.Phone,
		Tags:           req.Tags,
		Type:           req.Type,
	}
	if req.Coord != nil {
		place.Coord = &domain.GeoPoint{
			Latitude:  req.Coord.Latitude,
			Longitude: req.Coord.Longitude,
		}
	}

	created, err := s.placeService.CreatePlace(ctx, place)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, created, s.logger)
}

// handleListPlaces returns places, optionally filtered by type.
func (s *Server) handleListPlaces(w http.ResponseWriter, r *http.Request) {
	filter := store.PlaceFilter{
		Type: r.URL.Query().Get("type"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			response.BadRequest(w, "Invalid limit parameter", s.logger)
			return
		}
		filter.Limit = limit
	}

	places, err := s.placeService.ListPlaces(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, places, s.logger)
}

// handleGetPlace returns a single place by ID.
func (s *Server) handleGetPlace(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "id")

	place, err := s.placeService.GetPlace(r.Context(), placeID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, place, s.logger)
}

// handleFindPlacesByIDs returns the places matching the given IDs.
func (s *Server) handleFindPlacesByIDs(w http.ResponseWriter, r *http.Request) {
	var req FindByIDsRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	places, err := s.placeService.FindPlacesByIDs(r.Context(), req.IDs)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, places, s.logger)
}

// handleUpdatePlace applies a partial update to a place.
func (s *Server) handleUpdatePlace(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "id")

	var patch domain.PlacePatch
	if err := json.UnmarshalRead(r.Body, &patch); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	place, err := s.placeService.UpdatePlace(r.Context(), placeID, patch)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, place, s.logger)
}

// handleDeletePlace deletes a place.
func (s *Server) handleDeletePlace(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "id")

	if err := s.placeService.DeletePlace(r.Context(), placeID); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.NoContent(w)
}
