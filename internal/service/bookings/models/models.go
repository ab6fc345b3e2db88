package models

import (
	"github.com/m04kA/SMC-LabBookingService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на снятие бронирования
type CancelBookingRequest struct {
	SystemID string `json:"system"`
	Date     string `json:"date"`
	Slot     string `json:"slot"`
}

// GetUserBookingsRequest запрос на получение бронирований по имени
type GetUserBookingsRequest struct {
	SystemID string `json:"system"`
	Occupant string `json:"name"`
}

// Response модели

// UserBooking одно бронирование в списке пользователя
type UserBooking struct {
	Date string `json:"date"`
	Slot string `json:"slot"`
}

// UserBookingsResponse список бронирований пользователя
type UserBookingsResponse struct {
	Bookings []UserBooking `json:"bookings"`
}

// FromDomainReservations конвертирует список domain моделей в DTO
func FromDomainReservations(reservations []*domain.Reservation) *UserBookingsResponse {
	resp := &UserBookingsResponse{
		Bookings: make([]UserBooking, len(reservations)),
	}

	for i, reservation := range reservations {
		resp.Bookings[i] = UserBooking{
			Date: reservation.Date,
			Slot: reservation.Slot,
		}
	}

	return resp
}
