package policies

import (
	"context"
	"fmt"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/policies/models"
)

// Service сервис просмотра политики возврата
type Service struct {
	policyRepo PolicyRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса политики
func NewService(policyRepo PolicyRepository, logger Logger) *Service {
	return &Service{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

// Preview возвращает действующую политику возврата в виде диапазонов.
// Диапазоны строятся тем же порядком уровней, что и расчёт возврата при
// отмене, поэтому показанная политика не может разойтись с фактическими
// выплатами.
func (s *Service) Preview(ctx context.Context) (*models.PolicyPreviewResponse, error) {
	tiers, err := s.policyRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("Preview: failed to load active policy tiers: %v", err)
		return nil, fmt.Errorf("%w: Preview - repository error: %v", ErrInternal, err)
	}

	ranges := domain.TierRanges(tiers)
	s.logger.Info("Preview: %d active tiers, %d ranges", len(tiers), len(ranges))

	return models.FromDomainTierRanges(ranges), nil
}
