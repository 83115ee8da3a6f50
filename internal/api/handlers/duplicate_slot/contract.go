package duplicate_slot

import (
	"context"

	"github.com/Peguy24/paola-s-glam-studio-sub000/internal/service/slots/models"
)

type SlotService interface {
	Duplicate(ctx context.Context, id int64, req *models.DuplicateSlotRequest) (*models.SlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
