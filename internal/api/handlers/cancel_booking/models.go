package cancel_booking

import (
	"github.com/m04kA/SMC-LabBookingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	System string `json:"system"`
	Date   string `json:"date"`
	Slot   string `json:"slot"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Success bool `json:"success"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		SystemID: r.System,
		Date:     r.Date,
		Slot:     r.Slot,
	}
}
