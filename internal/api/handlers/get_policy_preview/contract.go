package get_policy_preview

import (
	"context"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/policies/models"
)

type PolicyService interface {
	Preview(ctx context.Context) (*models.PolicyPreviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
