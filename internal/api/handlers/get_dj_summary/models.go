package get_dj_summary

import "github.com/m04kA/DJB-ScheduleService/internal/domain"

// SummaryResponse HTTP response model сводки вознаграждения
type SummaryResponse struct {
	DJID           int64 `json:"djId"`
	Year           int   `json:"year,omitempty"`
	Month          int   `json:"month,omitempty"`
	TotalEvents    int   `json:"totalEvents"`
	DistinctVenues int   `json:"distinctVenues"`
	ExtraEvents    int   `json:"extraEvents"`
	ExtraRate      int64 `json:"extraRate"`
	ExtraPay       int64 `json:"extraPay"`
}

// FromDomainSummary конвертирует domain модель в HTTP response
func FromDomainSummary(s *domain.MonthlySummary) *SummaryResponse {
	return &SummaryResponse{
		DJID:           s.DJID,
		Year:           s.Year,
		Month:          s.Month,
		TotalEvents:    s.TotalEvents,
		DistinctVenues: s.DistinctVenues,
		ExtraEvents:    s.ExtraEvents,
		ExtraRate:      s.ExtraRate,
		ExtraPay:       s.ExtraPay,
	}
}
