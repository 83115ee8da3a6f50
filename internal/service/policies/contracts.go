package policies

import (
	"context"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/domain"
)

// PolicyRepository интерфейс репозитория уровней политики возврата
type PolicyRepository interface {
	ListActive(ctx context.Context) ([]domain.PolicyTier, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
