package services

import (
	"context"
	"fmt"

	"github.com/Sachin796/Worktopia/internal/core/domain"
	portsrepo "github.com/Sachin796/Worktopia/internal/core/ports/repositories"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
)

type featureService struct {
	BaseService
	featureRepo portsrepo.FeatureRepositoryFacade
}

func NewFeatureService(repo portsrepo.FeatureRepositoryFacade) portssvc.FeatureSvcFacade {
	return &featureService{featureRepo: repo}
}

func (s *featureService) ListFeatures(ctx context.Context) ([]domain.Feature, error) {
	features, err := s.featureRepo.ListFeatures(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list features")
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	return features, nil
}
