package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrDuplicateSlot возвращается, когда дата и время слота уже заняты
	ErrDuplicateSlot = errors.New("slot with the same date and time already exists")

	// ErrHasActiveBookings возвращается при удалении слота с активными бронированиями без подтверждения
	ErrHasActiveBookings = errors.New("slot has active bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
