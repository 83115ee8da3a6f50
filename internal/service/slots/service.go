package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
	slotRepo "github.com/Peguy24/paola-s-glam-studio-sub000/internal/infra/storage/slot"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/integrations/notifier"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/slots/models"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/types"
)

// Service сервис для управления слотами расписания
type Service struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	notifier    NotifierClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	notifierClient NotifierClient,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		notifier:    notifierClient,
		logger:      logger,
	}
}

// List возвращает слоты за период
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	from, err := models.ParseDate(req.From)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	to, err := models.ParseDate(req.To)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: period end before start", ErrInvalidInput)
	}

	slots, err := s.slotRepo.ListByDateRange(ctx, from, to, req.OnlyAvailable)
	if err != nil {
		s.logger.Error("List: repository error for period %s - %s: %v", req.From, req.To, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(slots), nil
}

// Create создаёт слот вручную
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	slot, err := req.ToDomainSlot()
	if err != nil {
		s.logger.Warn("Create: invalid slot request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := slot.Validate(); err != nil {
		s.logger.Warn("Create: slot validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		if errors.Is(err, slotRepo.ErrDuplicateSlot) {
			s.logger.Warn("Create: slot %s %s-%s already exists", req.Date, req.StartTime, req.EndTime)
			return nil, ErrDuplicateSlot
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: slot id=%d created for %s %s-%s", created.ID, req.Date, req.StartTime, req.EndTime)
	return models.FromDomainSlot(created), nil
}

// Update изменяет слот. Клиенты с активными бронированиями получают
// уведомление об изменении.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateSlotRequest) (*models.SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Update: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Update: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := applyUpdates(slot, req); err != nil {
		s.logger.Warn("Update: invalid update for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := slot.Validate(); err != nil {
		s.logger.Warn("Update: slot id=%d validation failed: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.slotRepo.Update(ctx, slot); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		if errors.Is(err, slotRepo.ErrDuplicateSlot) {
			return nil, ErrDuplicateSlot
		}
		s.logger.Error("Update: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.notifySlotChanged(ctx, slot, "updated")

	s.logger.Info("Update: slot id=%d updated", id)
	return models.FromDomainSlot(slot), nil
}

// Delete удаляет слот. При наличии активных бронирований требуется явное
// подтверждение (force); затронутые клиенты получают уведомление.
func (s *Service) Delete(ctx context.Context, id int64, force bool) error {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: slot id=%d not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	active, err := s.bookingRepo.ListActiveBySlot(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to list active bookings for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if len(active) > 0 && !force {
		s.logger.Warn("Delete: slot id=%d has %d active bookings, force flag required", id, len(active))
		return ErrHasActiveBookings
	}

	if err := s.slotRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return ErrSlotNotFound
		}
		s.logger.Error("Delete: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	for _, booking := range active {
		s.notifier.NotifyAsync(notifier.Notification{
			TemplateKey: domain.TemplateSlotChanged,
			RecipientID: booking.ClientID,
			Context: map[string]string{
				"change":     "deleted",
				"date":       slot.Date.Format(domain.DateFormat),
				"start_time": slot.StartTime.String(),
				"end_time":   slot.EndTime.String(),
			},
		})
	}

	s.logger.Info("Delete: slot id=%d deleted, %d clients notified", id, len(active))
	return nil
}

// Duplicate копирует слот на другую дату
func (s *Service) Duplicate(ctx context.Context, id int64, req *models.DuplicateSlotRequest) (*models.SlotResponse, error) {
	targetDate, err := models.ParseDate(req.TargetDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	source, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Duplicate: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Duplicate: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Duplicate - repository error: %v", ErrInternal, err)
	}

	// Копия — ручной слот, связь с паттерном не переносится
	copySlot := &domain.Slot{
		Date:      targetDate,
		StartTime: source.StartTime,
		EndTime:   source.EndTime,
		Capacity:  source.Capacity,
		Available: source.Available,
	}

	created, err := s.slotRepo.Create(ctx, copySlot)
	if err != nil {
		if errors.Is(err, slotRepo.ErrDuplicateSlot) {
			s.logger.Warn("Duplicate: slot for %s %s-%s already exists",
				req.TargetDate, source.StartTime, source.EndTime)
			return nil, ErrDuplicateSlot
		}
		s.logger.Error("Duplicate: repository error: %v", err)
		return nil, fmt.Errorf("%w: Duplicate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Duplicate: slot id=%d duplicated to %s as id=%d", id, req.TargetDate, created.ID)
	return models.FromDomainSlot(created), nil
}

// Вспомогательные методы

// notifySlotChanged уведомляет клиентов с активными бронированиями об изменении слота
func (s *Service) notifySlotChanged(ctx context.Context, slot *domain.Slot, change string) {
	active, err := s.bookingRepo.ListActiveBySlot(ctx, slot.ID)
	if err != nil {
		// Уведомления не должны ломать основную операцию
		s.logger.Error("notifySlotChanged: failed to list active bookings for slot id=%d: %v", slot.ID, err)
		return
	}

	for _, booking := range active {
		s.notifier.NotifyAsync(notifier.Notification{
			TemplateKey: domain.TemplateSlotChanged,
			RecipientID: booking.ClientID,
			Context: map[string]string{
				"change":     change,
				"date":       slot.Date.Format(domain.DateFormat),
				"start_time": slot.StartTime.String(),
				"end_time":   slot.EndTime.String(),
			},
		})
	}
}

func applyUpdates(slot *domain.Slot, req *models.UpdateSlotRequest) error {
	if req.StartTime != nil {
		start, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			return models.ErrInvalidTime
		}
		slot.StartTime = start
	}
	if req.EndTime != nil {
		end, err := types.NewTimeStringFromString(*req.EndTime)
		if err != nil {
			return models.ErrInvalidTime
		}
		slot.EndTime = end
	}
	if req.Capacity != nil {
		slot.Capacity = *req.Capacity
	}
	if req.Available != nil {
		slot.Available = *req.Available
	}
	return nil
}
