package payments

import "errors"

var (
	// ErrRefundRejected возвращается, когда шлюз отклонил возврат
	// (некорректная ссылка на платеж, сумма превышает остаток и т.п.)
	ErrRefundRejected = errors.New("payments client: refund rejected by gateway")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("payments client: invalid response")
)
