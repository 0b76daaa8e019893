package update_dj

import "github.com/m04kA/DJB-ScheduleService/internal/service/roster/models"

// UpdateDJRequest HTTP request model
type UpdateDJRequest struct {
	Role        string  `json:"role"`
	HomeVenueID *int64  `json:"homeVenueId,omitempty"`
	ColorTag    *string `json:"colorTag,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateDJRequest) ToServiceRequest(djID, requestingDJID int64) *models.UpdateRosterEntryRequest {
	return &models.UpdateRosterEntryRequest{
		RequestingDJID: requestingDJID,
		DJID:           djID,
		Role:           r.Role,
		HomeVenueID:    r.HomeVenueID,
		ColorTag:       r.ColorTag,
	}
}
