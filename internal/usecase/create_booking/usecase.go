package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
	slotRepo "github.com/Peguy24/paola-s-glam-studio-sub000/internal/infra/storage/slot"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/integrations/notifier"
)

// UseCase use case для создания бронирования
type UseCase struct {
	slotRepo       SlotRepository
	bookingRepo    BookingRepository
	notifierClient NotifierClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	notifierClient NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:       slotRepo,
		bookingRepo:    bookingRepo,
		notifierClient: notifierClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Проверка вместимости и вставка бронирования выполняются в одной
// сериализуемой транзакции с блокировкой строки слота: раздельные
// "проверить, потом вставить" вызовы позволяют двум конкурентным запросам
// одновременно увидеть свободное место и вдвоем его занять.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, slot=%d, service=%d", req.ClientID, req.SlotID, req.ServiceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking
	var slot *domain.Slot

	// 2. Проверка вместимости и вставка — одна атомарная единица
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем слот с блокировкой строки (FOR UPDATE внутри транзакции)
		s, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}
		slot = s

		// 2.2. Флаг доступности проверяется отдельно от заполненности
		if !slot.Available {
			uc.logger.Warn("CreateBooking: slot id=%d is marked unavailable", req.SlotID)
			return ErrSlotUnavailable
		}

		// 2.3. Прошедшие слоты бронировать нельзя
		scheduledAt, err := slot.ScheduledStart()
		if err != nil {
			uc.logger.Error("CreateBooking: failed to compute slot start for id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to compute slot start: %v", ErrInternal, err)
		}
		if scheduledAt.Before(now) {
			uc.logger.Warn("CreateBooking: slot id=%d is in the past", req.SlotID)
			return ErrSlotInPast
		}

		// 2.4. Авторитетное число активных бронирований в той же транзакции
		activeCount, err := uc.bookingRepo.CountActiveBySlot(txCtx, req.SlotID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count active bookings for slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to count active bookings: %v", ErrInternal, err)
		}

		if !slot.HasSpotFor(activeCount) {
			uc.logger.Warn("CreateBooking: slot id=%d is full, %d/%d spots taken",
				req.SlotID, activeCount, slot.Capacity)
			return ErrSlotFull
		}

		uc.logger.Info("CreateBooking: slot id=%d has room, %d/%d spots taken",
			req.SlotID, activeCount, slot.Capacity)

		// 2.5. Создаем бронирование в той же транзакции
		booking := &domain.Booking{
			SlotID:        req.SlotID,
			ClientID:      req.ClientID,
			ServiceID:     req.ServiceID,
			Status:        domain.StatusPending,
			PaymentStatus: domain.PaymentUnpaid,
			ServiceName:   req.ServiceName,
			PriceCents:    req.PriceCents,
			RefundStatus:  domain.RefundNone,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 3. Уведомление после коммита, fire-and-forget:
	// неудача доставки не откатывает бронирование
	uc.notifierClient.NotifyAsync(notifier.Notification{
		TemplateKey: domain.TemplateBookingCreated,
		RecipientID: req.ClientID,
		Context: map[string]string{
			"booking_id":   strconv.FormatInt(result.ID, 10),
			"service_name": result.ServiceName,
			"date":         slot.Date.Format(domain.DateFormat),
			"start_time":   slot.StartTime.String(),
		},
	})

	return &Response{
		ID:          result.ID,
		SlotID:      result.SlotID,
		ClientID:    result.ClientID,
		ServiceID:   result.ServiceID,
		SlotDate:    slot.Date,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		Status:      string(result.Status),
		ServiceName: result.ServiceName,
		PriceCents:  result.PriceCents,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
