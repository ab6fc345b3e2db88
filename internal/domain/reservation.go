package domain

import "time"

// Reservation бронирование слота: ключ (система, дата, слот) и имя занявшего
// Существование записи в хранилище означает, что слот занят
type Reservation struct {
	SystemID  string // Идентификатор системы (прибора)
	Date      string // Дата в формате YYYY-MM-DD
	Slot      string // Метка слота "HH:MM-HH:MM"
	Occupant  string // Имя занявшего слот, всегда непустое
	CreatedAt time.Time
}

// Key возвращает тройку ключа бронирования
func (r *Reservation) Key() (systemID, date, slot string) {
	return r.SystemID, r.Date, r.Slot
}
