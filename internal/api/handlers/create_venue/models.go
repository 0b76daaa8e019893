package create_venue

import "github.com/m04kA/DJB-ScheduleService/internal/service/venues/models"

// CreateVenueRequest HTTP request model
type CreateVenueRequest struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateVenueRequest) ToServiceRequest(requestingDJID int64) *models.CreateVenueRequest {
	return &models.CreateVenueRequest{
		RequestingDJID: requestingDJID,
		Name:           r.Name,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
	}
}
