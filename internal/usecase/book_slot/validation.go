package book_slot

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
// Все четыре поля обязательны; пробельные значения считаются пустыми
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.SystemID) == "" {
		return fmt.Errorf("%w: system", ErrMissingField)
	}
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date", ErrMissingField)
	}
	if strings.TrimSpace(req.Slot) == "" {
		return fmt.Errorf("%w: slot", ErrMissingField)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	return nil
}
