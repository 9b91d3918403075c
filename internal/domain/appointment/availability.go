package appointment

import "time"

type AvailabilityInput struct {
	PropertyID uint
	Date       time.Time
}

type TimeSlot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
	AgentID   *uint  `json:"agent_id,omitempty"`
}

// OfficeHours é a janela fixa de expediente usada para gerar slots.
// Não há calendário por corretor nem por imóvel.
type OfficeHours struct {
	StartHour   int
	EndHour     int
	SlotMinutes int
}

func DefaultOfficeHours() OfficeHours {
	return OfficeHours{StartHour: 9, EndHour: 18, SlotMinutes: 60}
}

func (oh OfficeHours) SlotDuration() time.Duration {
	return time.Duration(oh.SlotMinutes) * time.Minute
}

// SlotStarts devolve os inícios de slot do dia, em ordem, no fuso da data.
func (oh OfficeHours) SlotStarts(date time.Time) []time.Time {
	loc := date.Location()

	dayStart := time.Date(
		date.Year(), date.Month(), date.Day(),
		oh.StartHour, 0, 0, 0,
		loc,
	)
	dayEnd := time.Date(
		date.Year(), date.Month(), date.Day(),
		oh.EndHour, 0, 0, 0,
		loc,
	)

	var starts []time.Time
	for cur := dayStart; !cur.Add(oh.SlotDuration()).After(dayEnd); cur = cur.Add(oh.SlotDuration()) {
		starts = append(starts, cur)
	}

	return starts
}
