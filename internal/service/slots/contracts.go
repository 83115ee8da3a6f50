package slots

import (
	"context"
	"time"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/integrations/notifier"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/types"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	FindByDateTimeRange(ctx context.Context, date time.Time, start, end types.TimeString) (*domain.Slot, error)
	ListByDateRange(ctx context.Context, from, to time.Time, onlyAvailable bool) ([]*domain.Slot, error)
	Update(ctx context.Context, slot *domain.Slot) error
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListActiveBySlot(ctx context.Context, slotID int64) ([]*domain.Booking, error)
}

// NotifierClient интерфейс клиента notification-сервиса
type NotifierClient interface {
	NotifyAsync(n notifier.Notification)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
