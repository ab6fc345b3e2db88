package get_slots

import "errors"

var (
	// ErrMissingField возвращается, когда обязательное поле запроса пустое
	ErrMissingField = errors.New("missing required field")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
