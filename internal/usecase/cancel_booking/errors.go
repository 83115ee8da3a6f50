package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrAlreadyCancelled возвращается при повторной отмене.
	// Повторная отмена не имеет побочных эффектов — в частности,
	// повторный вызов возврата средств не выполняется.
	ErrAlreadyCancelled = errors.New("cancel_booking: booking is already cancelled")

	// ErrCannotCancel возвращается для завершенных бронирований
	ErrCannotCancel = errors.New("cancel_booking: booking cannot be cancelled")

	// ErrAccessDenied возвращается при попытке отменить чужое бронирование
	ErrAccessDenied = errors.New("cancel_booking: access denied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
