package services

import (
	portsrepo "github.com/Sachin796/Worktopia/internal/core/ports/repositories"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/Sachin796/Worktopia/internal/platform/config"
)

// Dependencies are the adapters the services talk to besides the database.
type Dependencies struct {
	Store     portssvc.KeyValueStore
	Cache     portssvc.BlockedDaysCache
	Publisher portssvc.EventPublisher
	Geocoder  portssvc.Geocoder
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, deps Dependencies) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	var bookingOpts []BookingServiceOption
	if deps.Cache != nil {
		bookingOpts = append(bookingOpts, WithBlockedDaysCache(deps.Cache))
	}
	if deps.Publisher != nil {
		bookingOpts = append(bookingOpts, WithEventPublisher(deps.Publisher))
	}
	container.Booking = NewBookingService(repos.BookingRepo, bookingOpts...)

	container.Workspace = NewWorkspaceService(repos.WorkspaceRepo, repos.LocationRepo)
	container.Location = NewLocationService(repos.LocationRepo)
	container.Feature = NewFeatureService(repos.FeatureRepo)

	// The editor composes the services above; build it last.
	container.WorkspaceEditor = NewWorkspaceEditorService(
		container.Workspace,
		container.Location,
		container.Feature,
		container.Booking,
	)

	var searchOpts []SearchServiceOption
	if deps.Geocoder != nil {
		searchOpts = append(searchOpts, WithGeocoder(deps.Geocoder))
	}
	container.Search = NewSearchService(deps.Store, container.Workspace, searchOpts...)
	container.Geocoder = deps.Geocoder

	container.User = NewUserService(repos.UserRepo)
	container.TokenService = NewTokenService(cfg)
	container.GoogleIDToken = NewGoogleIDTokenService(cfg.GoogleClientID)
	container.Upload = NewUploadService(cfg.UploadDir, cfg.UploadMaxBytes)

	return container
}
