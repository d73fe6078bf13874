// Package di provides dependency injection configuration for the spot server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/riverandeye/spotserver/internal/config"
	"github.com/riverandeye/spotserver/internal/di/providers"
	"github.com/riverandeye/spotserver/internal/logger"
	"github.com/riverandeye/spotserver/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Recommendation upstreams
	do.Provide(injector, providers.ProvideRecommendClient)

	// Business services
	do.Provide(injector, providers.ProvideOwnershipService)
	do.Provide(injector, providers.ProvideUserService)
	do.Provide(injector, providers.ProvidePlaceService)
	do.Provide(injector, providers.ProvidePlaylistService)
	do.Provide(injector, providers.ProvideAdminService)
	do.Provide(injector, providers.ProvideRecommendService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the server is running.
// This triggers lazy initialization of every provider.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.RecommendClientHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.OwnershipService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.UserService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.PlaceService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.PlaylistService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.AdminService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.RecommendService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}
	return nil
}
