package get_slots

// Request модель запроса на получение расписания слотов
type Request struct {
	SystemID string // Идентификатор системы, всегда непустой (дефолт подставляет handler)
	Date     string // Дата YYYY-MM-DD
}

// Response модель ответа с полным расписанием на день
type Response struct {
	SystemID string // Система, для которой построено расписание
	Date     string // Запрошенная дата
	Slots    []Slot // Канонический список слотов с наложенными бронированиями
}

// Slot слот расписания с отметкой занятости
type Slot struct {
	Time   string  // Метка слота "HH:MM-HH:MM"
	Booked bool    // Занят ли слот
	Name   *string // Имя занявшего, nil для свободного слота
}
