// Package main provides a tool to seed the database with sample data.
//
// This creates a handful of users, places and playlists so the API has
// something to serve during development.
//
// Usage:
//
//	DATA_PATH=~/spotserver/data go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/riverandeye/spotserver/internal/domain"
	"github.com/riverandeye/spotserver/internal/service"
	"github.com/riverandeye/spotserver/internal/store"
)

func main() {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/spotserver/data")
	}

	fmt.Printf("Opening database at: %s\n", dataPath)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := store.Open(dataPath, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	ownership := service.NewOwnershipService(s, logger)
	users := service.NewUserService(s, logger)
	places := service.NewPlaceService(s, logger)
	playlists := service.NewPlaylistService(s, ownership, logger)

	user, err := users.CreateUser(ctx, &domain.User{
		Email:       "demo@example.com",
		DisplayName: "Demo",
		FullName:    "Demo User",
	})
	if err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}
	fmt.Printf("Created user %s\n", user.UID)

	samplePlaces := []*domain.Place{
		{
			Name:       "Bar Dhowon22",
			AreaName:   "Euljiro",
			City:       "Seoul",
			Type:       "Bar",
			Coord:      &domain.GeoPoint{Latitude: 37.5663, Longitude: 126.9912},
			FirstImage: "https://img.example.com/dhowon22.jpg",
			Tags:       []string{"bar", "cocktails", "euljiro"},
			IsConfirm:  true,
		},
		{
			Name:      "Cafe Onion Anguk",
			AreaName:  "Anguk",
			City:      "Seoul",
			Type:      "Cafe",
			Coord:     &domain.GeoPoint{Latitude: 37.5780, Longitude: 126.9870},
			Images:    []string{"https://img.example.com/onion.jpg"},
			Tags:      []string{"cafe", "bakery", "hanok"},
			IsConfirm: true,
		},
		{
			Name:     "Gwangjang Market",
			AreaName: "Jongno",
			City:     "Seoul",
			Type:     "Restaurant",
			Coord:    &domain.GeoPoint{Latitude: 37.5701, Longitude: 126.9996},
			Tags:     []string{"market", "street-food"},
		},
	}

	playlist, err := playlists.CreatePlaylist(ctx, &domain.Playlist{
		Name:        "Seoul Favorites",
		Description: "A starter tour of Seoul",
		Owner:       user.UID,
		Type:        domain.PlaylistTypeUser,
		IsVisible:   true,
	})
	if err != nil {
		log.Fatalf("Failed to create playlist: %v", err)
	}
	fmt.Printf("Created playlist %s\n", playlist.ID)

	for _, p := range samplePlaces {
		created, err := places.CreatePlace(ctx, p)
		if err != nil {
			log.Fatalf("Failed to create place %q: %v", p.Name, err)
		}
		fmt.Printf("Created place %s (%s)\n", created.ID, created.Name)

		if _, err := playlists.AddPlaceToPlaylist(ctx, playlist.ID, created.ID); err != nil {
			log.Fatalf("Failed to add place to playlist: %v", err)
		}
	}

	fmt.Println("Done")
}
