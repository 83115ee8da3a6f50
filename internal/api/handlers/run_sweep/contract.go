package run_sweep

import (
	"context"

	expandSchedule "github.com/Peguy24/paola-s-glam-studio-sub000/internal/usecase/expand_schedule"
)

type ExpandScheduleUseCase interface {
	Sweep(ctx context.Context) (*expandSchedule.SweepResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
