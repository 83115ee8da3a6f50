package expand_schedule

import (
	"context"
	"time"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/types"
)

// PatternRepository интерфейс репозитория паттернов
type PatternRepository interface {
	ListActive(ctx context.Context) ([]*domain.RecurringPattern, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	FindByDateTimeRange(ctx context.Context, date time.Time, start, end types.TimeString) (*domain.Slot, error)
	BatchInsert(ctx context.Context, slots []*domain.Slot) (int, error)
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
