package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

type ChallengeService struct {
	repo    domain.ChallengeRepository
	catalog domain.ChallengeCatalog
}

func NewChallengeService(repo domain.ChallengeRepository, catalog domain.ChallengeCatalog) *ChallengeService {
	return &ChallengeService{
		repo:    repo,
		catalog: catalog,
	}
}

func (s *ChallengeService) Catalog() []domain.ChallengeDefinition {
	return s.catalog.List()
}

func (s *ChallengeService) ListProgress(ctx context.Context, userID string) ([]domain.ChallengeProgress, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *ChallengeService) Join(ctx context.Context, userID, challengeID string) (*domain.ChallengeProgress, error) {
	if _, ok := s.catalog.Lookup(challengeID); !ok {
		return nil, domain.ErrChallengeNotFound
	}

	progress := domain.NewChallengeProgress(uuid.NewString(), userID, challengeID)
	if err := s.repo.Create(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// Log records a manual check-in for date.
func (s *ChallengeService) Log(ctx context.Context, userID, challengeID, date string) (*domain.ChallengeProgress, error) {
	def, ok := s.catalog.Lookup(challengeID)
	if !ok {
		return nil, domain.ErrChallengeNotFound
	}
	if def.Mode == domain.TrackingAuto {
		return nil, domain.ErrChallengeAutoTracked
	}

	progress, err := s.repo.Get(ctx, userID, challengeID)
	if err != nil {
		return nil, err
	}

	if err := progress.Advance(def, date); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, progress); err != nil {
		return nil, fmt.Errorf("challenge service: update progress: %w", err)
	}
	return progress, nil
}

// Record advances every active auto-tracked challenge bound to kind. A
// challenge already advanced on date is left untouched.
func (s *ChallengeService) Record(ctx context.Context, userID string, kind domain.ActivityKind, date string) error {
	list, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		return err
	}

	var errs []error
	for i := range list {
		p := &list[i]
		if p.Status != domain.ChallengeActive {
			continue
		}
		def, ok := s.catalog.Lookup(p.ChallengeID)
		if !ok || def.Mode != domain.TrackingAuto || def.Activity != kind {
			continue
		}

		if err := p.Advance(def, date); err != nil {
			if !errors.Is(err, domain.ErrChallengeAlreadyLogged) {
				errs = append(errs, err)
			}
			continue
		}
		if err := s.repo.Update(ctx, p); err != nil {
			errs = append(errs, fmt.Errorf("challenge %s: %w", p.ChallengeID, err))
		}
	}
	return errors.Join(errs...)
}
