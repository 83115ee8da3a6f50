package delete_slot

import "context"

type SlotService interface {
	Delete(ctx context.Context, id int64, force bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
