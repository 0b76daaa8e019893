package models

import (
	"time"

	"github.com/m04kA/DJB-ScheduleService/internal/domain"
)

// CreateVenueRequest запрос на создание салона
type CreateVenueRequest struct {
	RequestingDJID int64
	Name           string
	Latitude       *float64
	Longitude      *float64
}

// VenueResponse ответ с данными салона
type VenueResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VenueListResponse ответ со списком салонов
type VenueListResponse struct {
	Venues []VenueResponse `json:"venues"`
}

// FromDomainVenue конвертирует domain модель в DTO
func FromDomainVenue(v *domain.Venue) *VenueResponse {
	if v == nil {
		return nil
	}

	return &VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Active:    v.Active,
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

// FromDomainVenueList конвертирует список domain моделей в DTO
func FromDomainVenueList(venues []*domain.Venue) *VenueListResponse {
	resp := &VenueListResponse{
		Venues: make([]VenueResponse, 0, len(venues)),
	}

	for _, venue := range venues {
		if venueResp := FromDomainVenue(venue); venueResp != nil {
			resp.Venues = append(resp.Venues, *venueResp)
		}
	}

	return resp
}
