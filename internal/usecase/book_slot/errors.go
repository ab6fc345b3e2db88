package book_slot

import "errors"

var (
	// ErrMissingField возвращается, когда обязательное поле запроса пустое
	ErrMissingField = errors.New("missing required field")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят (конфликт)
	ErrSlotAlreadyBooked = errors.New("slot already booked")

	// ErrInvalidSlot возвращается, когда метка слота не входит
	// в каноническое расписание системы
	ErrInvalidSlot = errors.New("slot is not in the system schedule")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
