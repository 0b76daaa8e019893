package get_dj_bookings

import (
	"strconv"
	"time"

	"github.com/m04kA/DJB-ScheduleService/internal/service/bookings/models"
	"github.com/m04kA/DJB-ScheduleService/pkg/types"
)

// ToServiceRequest собирает запрос к сервису из path и query параметров
// Период задается явным диапазоном startDate/endDate либо year и month;
// без параметров берется текущий год
func ToServiceRequest(djID int64, yearStr, monthStr, startDateStr, endDateStr string) (*models.GetDJBookingsRequest, error) {
	req := &models.GetDJBookingsRequest{
		DJID: djID,
		Year: time.Now().UTC().Year(),
	}

	if yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, err
		}
		req.Year = year
	}

	if monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			return nil, err
		}
		req.Month = &month
	}

	if startDateStr != "" {
		startDate, err := types.ParseDate(startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := types.ParseDate(endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	return req, nil
}
