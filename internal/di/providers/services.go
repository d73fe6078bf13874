package providers

import (
	"github.com/samber/do/v2"

	"github.com/riverandeye/spotserver/internal/config"
	"github.com/riverandeye/spotserver/internal/logger"
	"github.com/riverandeye/spotserver/internal/recommend"
	"github.com/riverandeye/spotserver/internal/service"
)

// RecommendClientHandle wraps the recommendation client so the rate
// limiter's cleanup goroutine is stopped on shutdown.
type RecommendClientHandle struct {
	*recommend.Client
}

// Shutdown implements do.Shutdownable.
func (h *RecommendClientHandle) Shutdown() error {
	h.Close()
	return nil
}

// ProvideRecommendClient provides the recommendation upstream client.
func ProvideRecommendClient(i do.Injector) (*RecommendClientHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	client := recommend.New(recommend.Config{
		SearchURL: cfg.Recommend.SearchURL,
		ChatURL:   cfg.Recommend.ChatURL,
		ChatModel: cfg.Recommend.ChatModel,
		APIKey:    cfg.Recommend.APIKey,
		Timeout:   cfg.Recommend.Timeout,
	}, log.Logger)

	if !client.Configured() {
		log.Warn("Recommendation upstreams not configured; recommendation endpoints will answer 503")
	}

	return &RecommendClientHandle{Client: client}, nil
}

// ProvideOwnershipService provides the playlist ownership upkeep service.
func ProvideOwnershipService(i do.Injector) (*service.OwnershipService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewOwnershipService(storeHandle.DB, log.Logger), nil
}

// ProvideUserService provides the user service.
func ProvideUserService(i do.Injector) (*service.UserService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewUserService(storeHandle.DB, log.Logger), nil
}

// ProvidePlaceService provides the place service.
func ProvidePlaceService(i do.Injector) (*service.PlaceService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewPlaceService(storeHandle.DB, log.Logger), nil
}

// ProvidePlaylistService provides the playlist service.
func ProvidePlaylistService(i do.Injector) (*service.PlaylistService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	ownership := do.MustInvoke[*service.OwnershipService](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewPlaylistService(storeHandle.DB, ownership, log.Logger), nil
}

// ProvideAdminService provides the admin service.
func ProvideAdminService(i do.Injector) (*service.AdminService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewAdminService(storeHandle.DB, log.Logger), nil
}

// ProvideRecommendService provides the recommendation service.
func ProvideRecommendService(i do.Injector) (*service.RecommendService, error) {
	clientHandle := do.MustInvoke[*RecommendClientHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewRecommendService(clientHandle.Client, log.Logger), nil
}
