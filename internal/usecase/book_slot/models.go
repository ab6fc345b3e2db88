package book_slot

import "time"

// Request модель запроса на бронирование слота
type Request struct {
	SystemID string // Идентификатор системы, всегда непустой (дефолт подставляет handler)
	Date     string // Дата YYYY-MM-DD
	Slot     string // Метка слота "HH:MM-HH:MM"
	Name     string // Имя занимающего слот
}

// Response модель ответа на успешное бронирование
type Response struct {
	SystemID  string
	Date      string
	Slot      string
	Name      string
	CreatedAt time.Time
}
