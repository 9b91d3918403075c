package handlers

import (
	"time"

	"github.com/AtrioImoveis/realty-scheduler/internal/models"
)

const defaultTimezone = "America/Sao_Paulo"

// resolve o timezone oficial da imobiliária
func locationFromAgency(agency *models.Agency) *time.Location {
	if agency != nil && agency.Timezone != "" {
		if loc, err := time.LoadLocation(agency.Timezone); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

func parseDateInAgency(agency *models.Agency, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromAgency(agency),
	)
}
