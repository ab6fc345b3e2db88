package get_slots

import "fmt"

// validateRequest валидирует входные данные запроса
// Формат даты дальше непустоты не проверяется: дата используется только
// как строковый ключ хранилища
func validateRequest(req *Request) error {
	if req.SystemID == "" {
		return fmt.Errorf("%w: system", ErrMissingField)
	}
	if req.Date == "" {
		return fmt.Errorf("%w: date", ErrMissingField)
	}
	return nil
}
