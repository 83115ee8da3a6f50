package payments

// RefundRequest запрос на возврат средств
type RefundRequest struct {
	PaymentReference string `json:"payment_reference"`
	AmountCents      int64  `json:"amount_cents"`
}

// RefundResult результат успешного возврата
type RefundResult struct {
	RefundID string `json:"refund_id"`
}

// ErrorResponse модель ошибки от платежного шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
