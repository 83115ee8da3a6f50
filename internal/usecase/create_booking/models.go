package create_booking

import (
	"time"

	"github.com/Peguy24/paola-s-glam-studio-sub000/pkg/types"
)

// Request модель запроса на создание бронирования.
// Название и цена услуги — снимок из каталога на момент бронирования,
// их передает вызывающая сторона (каталог услуг вне этого сервиса).
type Request struct {
	ClientID    int64  // ID клиента
	SlotID      int64  // ID слота
	ServiceID   int64  // ID услуги
	ServiceName string // Название услуги (снимок)
	PriceCents  int64  // Цена услуги в центах (снимок)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	SlotID      int64            // ID слота
	ClientID    int64            // ID клиента
	ServiceID   int64            // ID услуги
	SlotDate    time.Time        // Дата слота
	StartTime   types.TimeString // Время начала
	EndTime     types.TimeString // Время окончания
	Status      string           // Статус бронирования
	ServiceName string           // Название услуги
	PriceCents  int64            // Цена в центах

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
