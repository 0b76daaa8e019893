package models

import (
	"time"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
)

// UpdateRosterEntryRequest административное обновление записи ростера
type UpdateRosterEntryRequest struct {
	RequestingDJID int64
	DJID           int64
	Role           string
	HomeVenueID    *int64
	ColorTag       *string
}

// DJResponse ответ с данными записи ростера
// PasswordHash наружу не отдается
type DJResponse struct {
	ID          int64     `json:"id"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	HomeVenueID *int64    `json:"homeVenueId,omitempty"`
	ColorTag    *string   `json:"colorTag,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromDomainDJ конвертирует domain модель в DTO
func FromDomainDJ(d *domain.DJ) *DJResponse {
	if d == nil {
		return nil
	}

	return &DJResponse{
		ID:          d.ID,
		DisplayName: d.DisplayName,
		Role:        string(d.Role),
		HomeVenueID: d.HomeVenueID,
		ColorTag:    d.ColorTag,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
