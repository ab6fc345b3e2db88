package get_slots

import (
	"github.com/m04kA/SMC-LabBookingService/internal/domain"
	getSlots "github.com/m04kA/SMC-LabBookingService/internal/usecase/get_slots"
)

// SlotResponse HTTP модель слота расписания
// Name сериализуется как null для свободного слота
type SlotResponse struct {
	Time   string  `json:"time"`
	Booked bool    `json:"booked"`
	Name   *string `json:"name"`
}

// ToUseCaseRequest создает запрос use case из query параметров
// Пустая система заменяется системой по умолчанию
func ToUseCaseRequest(systemID, date string) *getSlots.Request {
	if systemID == "" {
		systemID = domain.DefaultSystemID
	}

	return &getSlots.Request{
		SystemID: systemID,
		Date:     date,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) []SlotResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Time:   slot.Time,
			Booked: slot.Booked,
			Name:   slot.Name,
		}
	}
	return slots
}
