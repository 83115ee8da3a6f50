package cancel_booking

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64 // ID бронирования
	ClientID  int64 // ID клиента, инициировавшего отмену
}

// Response результат отмены с решением по возврату средств
type Response struct {
	BookingID int64  // ID бронирования
	Status    string // Итоговый статус (cancelled)

	// Решение по возврату
	HoursNotice       float64 // За сколько часов до визита отменили
	RefundPercent     int     // Процент возврата по политике
	RefundAmountCents int64   // Сумма возврата в центах
	RefundStatus      string  // none | succeeded | failed
	RefundID          *string // ID возврата в платежном шлюзе, если он выполнялся
}
