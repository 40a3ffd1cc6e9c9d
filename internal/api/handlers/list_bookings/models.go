package list_bookings

import (
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(statusStr string) *models.ListBookingsRequest {
	req := &models.ListBookingsRequest{}
	if statusStr != "" {
		req.Status = &statusStr
	}
	return req
}
