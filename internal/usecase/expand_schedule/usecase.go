package expand_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
	slotRepo "github.com/Peguy24/paola-s-glam-studio-sub000/internal/infra/storage/slot"
)

// UseCase use case развертки недельных паттернов в конкретные слоты
type UseCase struct {
	patternRepo  PatternRepository
	slotRepo     SlotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	patternRepo PatternRepository,
	slotRepo SlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		patternRepo:  patternRepo,
		slotRepo:     slotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Expand разворачивает один паттерн в слоты на горизонт вперед.
//
// Ключевое свойство — идемпотентность: повторный запуск (ежедневный таймер,
// ручная кнопка, два пересекающихся запуска) не создает дублей. Дата, для
// которой слот с теми же временем начала и конца уже существует — независимо
// от того, кто его создал — молча пропускается и не считается ошибкой.
func (uc *UseCase) Expand(ctx context.Context, pattern *domain.RecurringPattern, asOf time.Time) (*ExpandResult, error) {
	if err := pattern.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	from := dateOnly(asOf)
	// Диапазон [asOf, asOf + horizon*7 дней] включительно
	to := from.AddDate(0, 0, pattern.HorizonWeeks*7)

	staged := make([]*domain.Slot, 0)

	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		if !pattern.AppliesTo(date) {
			continue
		}

		_, err := uc.slotRepo.FindByDateTimeRange(ctx, date, pattern.StartTime, pattern.EndTime)
		if err == nil {
			// Слот уже существует — пропускаем, это не ошибка
			continue
		}
		if !errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Error("ExpandSchedule: pattern id=%d, failed to check slot for %s: %v",
				pattern.ID, date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to check existing slot: %v", ErrInternal, err)
		}

		staged = append(staged, &domain.Slot{
			Date:      date,
			StartTime: pattern.StartTime,
			EndTime:   pattern.EndTime,
			Capacity:  pattern.Capacity,
			Available: true,
			PatternID: &pattern.ID,
		})
	}

	if len(staged) == 0 {
		uc.logger.Info("ExpandSchedule: pattern id=%d (%s), nothing to create", pattern.ID, pattern.Name)
		return &ExpandResult{SlotsCreated: 0}, nil
	}

	// Одна пакетная вставка в конце: либо все слоты запуска, либо ни одного
	created, err := uc.slotRepo.BatchInsert(ctx, staged)
	if err != nil {
		uc.logger.Error("ExpandSchedule: pattern id=%d, batch insert failed: %v", pattern.ID, err)
		return nil, fmt.Errorf("%w: batch insert failed: %v", ErrInternal, err)
	}

	uc.logger.Info("ExpandSchedule: pattern id=%d (%s), created %d of %d staged slots",
		pattern.ID, pattern.Name, created, len(staged))

	return &ExpandResult{SlotsCreated: created}, nil
}

// Sweep разворачивает все активные паттерны.
// Паттерны обрабатываются независимо: ошибка одного логируется как ноль
// созданных слотов и не прерывает остальные.
func (uc *UseCase) Sweep(ctx context.Context) (*SweepResult, error) {
	patterns, err := uc.patternRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("ExpandSchedule: failed to list active patterns: %v", err)
		return nil, fmt.Errorf("%w: failed to list active patterns: %v", ErrInternal, err)
	}

	asOf := uc.timeProvider.Now()
	result := &SweepResult{}

	for _, pattern := range patterns {
		result.PatternsProcessed++

		expanded, err := uc.Expand(ctx, pattern, asOf)
		if err != nil {
			uc.logger.Error("ExpandSchedule: sweep - pattern id=%d failed, created 0 slots: %v", pattern.ID, err)
			continue
		}

		result.SlotsCreated += expanded.SlotsCreated
	}

	uc.logger.Info("ExpandSchedule: sweep finished, patterns=%d, slots created=%d",
		result.PatternsProcessed, result.SlotsCreated)

	return result, nil
}

// dateOnly обнуляет время, оставляя только календарную дату
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
