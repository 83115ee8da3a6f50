package notifier

// Notification запрос на отправку уведомления
// Конкретный канал доставки (email, SMS) выбирает сам notification-сервис
type Notification struct {
	TemplateKey string            `json:"template_key"`
	RecipientID int64             `json:"recipient_id"`
	Context     map[string]string `json:"context,omitempty"`
}

// ErrorResponse модель ошибки от notification-сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
