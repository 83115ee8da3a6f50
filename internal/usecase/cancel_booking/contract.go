package cancel_booking

import (
	"context"
	"time"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
	bookingRepo "github.com/Peguy24/paola-s-glam-studio-sub000/internal/infra/storage/booking"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/integrations/notifier"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/integrations/payments"
)

// BookingRepository интерфейс репозитория бронирований
// Cancel — атомарная заявка на отмену: конкурентный проигравший получает
// ErrAlreadyCancelled и не доходит до платежного шлюза
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64, params bookingRepo.CancelParams) error
	UpdateRefundOutcome(ctx context.Context, id int64, status domain.RefundStatus, refundID *string) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
}

// PolicyRepository интерфейс репозитория политики отмены
type PolicyRepository interface {
	ListActive(ctx context.Context) ([]domain.PolicyTier, error)
}

// PaymentGateway интерфейс платежного шлюза
type PaymentGateway interface {
	Refund(ctx context.Context, paymentReference string, amountCents int64) (*payments.RefundResult, error)
}

// NotifierClient интерфейс клиента notification-сервиса
type NotifierClient interface {
	NotifyAsync(n notifier.Notification)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
