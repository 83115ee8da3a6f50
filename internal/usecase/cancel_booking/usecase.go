package cancel_booking

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
	bookingRepo "github.com/Peguy24/paola-s-glam-studio-sub000/internal/infra/storage/booking"
	slotRepo "github.com/Peguy24/paola-s-glam-studio-sub000/internal/infra/storage/slot"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/integrations/notifier"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/ptr"
)

// UseCase use case для отмены бронирования с расчётом возврата средств
type UseCase struct {
	bookingRepo    BookingRepository
	slotRepo       SlotRepository
	policyRepo     PolicyRepository
	gateway        PaymentGateway
	notifierClient NotifierClient
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	policyRepo PolicyRepository,
	gateway PaymentGateway,
	notifierClient NotifierClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		slotRepo:       slotRepo,
		policyRepo:     policyRepo,
		gateway:        gateway,
		notifierClient: notifierClient,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет отмену бронирования.
//
// Отмена фиксируется в два шага. Сначала условный UPDATE со статусом
// возврата pending атомарно "забирает" отмену: из конкурентных запросов
// на одно бронирование выигрывает ровно один, проигравшие получают
// ErrAlreadyCancelled и к платежному шлюзу не обращаются. Затем победитель
// вызывает шлюз и записывает итог поверх pending. Вызывать шлюз до заявки
// нельзя — два запроса, прошедшие проверку статуса по снимку, сделали бы
// два возврата.
//
// Неудача вызова платежного шлюза не блокирует отмену: бронирование
// все равно переходит в cancelled, а возврат помечается как failed
// и остается в записи для ручного разбора.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d", req.BookingID)

	// 1. Загружаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 2. Клиент может отменить только своё бронирование
	if booking.ClientID != req.ClientID {
		uc.logger.Warn("CancelBooking: client=%d is not the owner of booking id=%d", req.ClientID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// 3. Повторная отмена запрещена и не имеет побочных эффектов
	if booking.IsCancelled() {
		uc.logger.Warn("CancelBooking: booking id=%d is already cancelled", req.BookingID)
		return nil, ErrAlreadyCancelled
	}
	if !booking.CanBeCancelled() {
		uc.logger.Warn("CancelBooking: booking id=%d cannot be cancelled, status=%s", req.BookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	// 4. Загружаем слот — нужно время визита для расчёта уведомления
	slot, err := uc.slotRepo.GetByID(ctx, booking.SlotID)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Error("CancelBooking: slot id=%d for booking id=%d not found", booking.SlotID, req.BookingID)
			return nil, fmt.Errorf("%w: slot not found for booking", ErrInternal)
		}
		uc.logger.Error("CancelBooking: failed to get slot id=%d: %v", booking.SlotID, err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}

	scheduledAt, err := slot.ScheduledStart()
	if err != nil {
		uc.logger.Error("CancelBooking: failed to compute slot start for id=%d: %v", slot.ID, err)
		return nil, fmt.Errorf("%w: failed to compute slot start: %v", ErrInternal, err)
	}

	// 5. Активная политика читается заново при каждой отмене (без кэша)
	tiers, err := uc.policyRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Error("CancelBooking: failed to list active policy tiers: %v", err)
		return nil, fmt.Errorf("%w: failed to list policy tiers: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	decision := domain.CalculateRefund(booking.PriceCents, scheduledAt, now, tiers)

	uc.logger.Info("CancelBooking: booking id=%d, notice=%.2fh, refund=%d%% (%d cents)",
		req.BookingID, decision.HoursNotice, decision.Percent, decision.AmountCents)

	// 6. Определяем судьбу возврата до обращения к шлюзу
	params := bookingRepo.CancelParams{RefundStatus: domain.RefundNone}
	needsRefund := false

	if booking.IsPaid() {
		params.RefundAmountCents = ptr.Ptr(decision.AmountCents)

		if decision.AmountCents > 0 {
			if booking.PaymentReference == nil {
				uc.logger.Error("CancelBooking: booking id=%d is paid but has no payment reference", booking.ID)
				params.RefundStatus = domain.RefundFailed
			} else {
				params.RefundStatus = domain.RefundPending
				needsRefund = true
			}
		}
	}

	// 7. Атомарная заявка на отмену: ровно один конкурентный запрос проходит дальше
	if err := uc.bookingRepo.Cancel(ctx, req.BookingID, params); err != nil {
		if errors.Is(err, bookingRepo.ErrAlreadyCancelled) {
			uc.logger.Warn("CancelBooking: booking id=%d was cancelled concurrently", req.BookingID)
			return nil, ErrAlreadyCancelled
		}
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	// 8. Возврат выполняется после заявки, итог записывается поверх pending
	if needsRefund {
		params.RefundStatus = uc.executeRefund(ctx, booking, decision.AmountCents, &params)
	}

	uc.logger.Info("CancelBooking: booking id=%d cancelled, refund_status=%s", req.BookingID, params.RefundStatus)

	// 9. Уведомление клиенту, fire-and-forget
	uc.notifierClient.NotifyAsync(notifier.Notification{
		TemplateKey: domain.TemplateAppointmentCancelled,
		RecipientID: booking.ClientID,
		Context: map[string]string{
			"booking_id":    strconv.FormatInt(booking.ID, 10),
			"service_name":  booking.ServiceName,
			"refund_amount": strconv.FormatInt(decision.AmountCents, 10),
		},
	})

	return &Response{
		BookingID:         req.BookingID,
		Status:            string(domain.StatusCancelled),
		HoursNotice:       decision.HoursNotice,
		RefundPercent:     decision.Percent,
		RefundAmountCents: decision.AmountCents,
		RefundStatus:      string(params.RefundStatus),
		RefundID:          params.RefundID,
	}, nil
}

// executeRefund вызывает платежный шлюз и записывает итог поверх статуса
// pending, выставленного заявкой на отмену. Любая ошибка шлюза дает
// RefundFailed: отмена не блокируется, но неуспех остается в записи
// бронирования для ручного разбора.
func (uc *UseCase) executeRefund(ctx context.Context, booking *domain.Booking, amountCents int64, params *bookingRepo.CancelParams) domain.RefundStatus {
	status := domain.RefundSucceeded

	result, err := uc.gateway.Refund(ctx, *booking.PaymentReference, amountCents)
	if err != nil {
		uc.logger.Error("CancelBooking: refund failed for booking id=%d: %v", booking.ID, err)
		status = domain.RefundFailed
	} else {
		params.RefundID = ptr.Ptr(result.RefundID)
	}

	if err := uc.bookingRepo.UpdateRefundOutcome(ctx, booking.ID, status, params.RefundID); err != nil {
		// Возврат уже выполнен или не выполнен — в записи остается pending,
		// зависший статус разбирается вручную
		uc.logger.Error("CancelBooking: failed to record refund outcome for booking id=%d: %v", booking.ID, err)
	}

	return status
}
