package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Sachin796/Worktopia/internal/apperrors"
	"github.com/Sachin796/Worktopia/internal/core/domain"
	portsrepo "github.com/Sachin796/Worktopia/internal/core/ports/repositories"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/Sachin796/Worktopia/internal/dto"
)

type locationService struct {
	BaseService
	locationRepo portsrepo.LocationRepositoryFacade
}

func NewLocationService(repo portsrepo.LocationRepositoryFacade) portssvc.LocationSvcFacade {
	return &locationService{locationRepo: repo}
}

var _ portssvc.LocationSvcFacade = (*locationService)(nil)

func (s *locationService) GetLocation(ctx context.Context, locationID int64) (*domain.WorkspaceLocation, error) {
	loc, err := s.locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("location %d not found", locationID))
		}
		s.LogError(ctx, err, "Failed to find location", slog.Int64("location_id", locationID))
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return loc, nil
}

func (s *locationService) ListOwnerLocations(ctx context.Context, ownerID int64) ([]domain.WorkspaceLocation, error) {
	locs, err := s.locationRepo.ListLocationsByOwner(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list owner locations", slog.Int64("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locs, nil
}

// SaveLocation normalizes the address, derives full_address and then creates or updates.
func (s *locationService) SaveLocation(ctx context.Context, ownerID int64, req dto.SaveLocationRequest) (*domain.WorkspaceLocation, bool, error) {
	province := strings.ToUpper(strings.TrimSpace(req.Province))
	if _, ok := domain.Provinces[province]; !ok {
		return nil, false, apperrors.NewValidationFailedError("province must be a Canadian province or territory code")
	}
	country := strings.TrimSpace(req.Country)
	if country == "" {
		country = domain.DefaultCountry
	}

	loc := domain.WorkspaceLocation{
		Addr1:      strings.TrimSpace(req.Addr1),
		Addr2:      strings.TrimSpace(req.Addr2),
		City:       strings.TrimSpace(req.City),
		Province:   province,
		PostalCode: strings.ToUpper(strings.TrimSpace(req.PostalCode)),
		Country:    country,
		OwnerID:    ownerID,
	}
	loc.FullAddress = loc.BuildFullAddress()

	if req.LocationID == nil {
		if err := s.locationRepo.SaveLocation(ctx, &loc); err != nil {
			s.LogError(ctx, err, "Failed to save location", slog.Int64("owner_id", ownerID))
			return nil, false, fmt.Errorf("failed to create location: %w", err)
		}
		s.LogInfo(ctx, "Location created", slog.Int64("location_id", loc.LocationID))
		return &loc, true, nil
	}

	existing, err := s.GetLocation(ctx, *req.LocationID)
	if err != nil {
		return nil, false, err
	}
	if existing.OwnerID != ownerID {
		s.LogWarn(ctx, "Location update by non-owner", slog.Int64("location_id", existing.LocationID), slog.Int64("user_id", ownerID))
		return nil, false, apperrors.NewForbiddenError("location belongs to another owner")
	}

	loc.LocationID = existing.LocationID
	loc.CreatedAt = existing.CreatedAt
	if err := s.locationRepo.UpdateLocation(ctx, loc); err != nil {
		s.LogError(ctx, err, "Failed to update location", slog.Int64("location_id", loc.LocationID))
		return nil, false, fmt.Errorf("failed to update location: %w", err)
	}
	return &loc, false, nil
}
