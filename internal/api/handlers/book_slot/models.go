package book_slot

import (
	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	bookSlot "github.com/m04kA/SMC-LabBookingService/internal/usecase/book_slot"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	System string `json:"system,omitempty"` // Опционально, по умолчанию a_device
	Date   string `json:"date"`             // "2025-06-01"
	Slot   string `json:"slot"`             // "09:00-09:30"
	Name   string `json:"name"`
}

// BookSlotResponse HTTP response model
type BookSlotResponse struct {
	Success bool `json:"success"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустая система заменяется системой по умолчанию
func (r *BookSlotRequest) ToUseCaseRequest() *bookSlot.Request {
	systemID := r.System
	if systemID == "" {
		systemID = domain.DefaultSystemID
	}

	return &bookSlot.Request{
		SystemID: systemID,
		Date:     r.Date,
		Slot:     r.Slot,
		Name:     r.Name,
	}
}
