package expand_schedule

import "errors"

var (
	// ErrInvalidPattern возвращается при паттерне, нарушающем инварианты
	ErrInvalidPattern = errors.New("expand_schedule: invalid recurring pattern")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("expand_schedule: internal error")
)
