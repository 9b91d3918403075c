package appointment

import "strings"

// ===============================
// Tipo de agendamento
// ===============================

type Type string

const (
	TypePropertyVisit      Type = "PROPERTY_VISIT"
	TypeClientMeeting      Type = "CLIENT_MEETING"
	TypePropertyInspection Type = "PROPERTY_INSPECTION"
	TypeContractSigning    Type = "CONTRACT_SIGNING"
	TypeValuation          Type = "VALUATION"
	TypeDevelopmentTour    Type = "DEVELOPMENT_TOUR"
	TypeOther              Type = "OTHER"
)

var typeDisplay = map[Type]string{
	TypePropertyVisit:      "Visita ao imóvel",
	TypeClientMeeting:      "Reunião com cliente",
	TypePropertyInspection: "Vistoria",
	TypeContractSigning:    "Assinatura de contrato",
	TypeValuation:          "Avaliação",
	TypeDevelopmentTour:    "Tour pelo empreendimento",
	TypeOther:              "Outro",
}

var displayType = func() map[string]Type {
	m := make(map[string]Type, len(typeDisplay))
	for t, d := range typeDisplay {
		m[strings.ToLower(d)] = t
	}
	return m
}()

func (t Type) Display() string {
	return typeDisplay[t]
}

func ParseType(raw string) (Type, bool) {
	trimmed := strings.TrimSpace(raw)

	candidate := Type(strings.ToUpper(trimmed))
	if _, ok := typeDisplay[candidate]; ok {
		return candidate, true
	}

	if t, ok := displayType[strings.ToLower(trimmed)]; ok {
		return t, true
	}

	return "", false
}

// ===============================
// Local do agendamento
// ===============================

type LocationType string

const (
	LocationPropertyAddress LocationType = "PROPERTY_ADDRESS"
	LocationOffice          LocationType = "OFFICE"
	LocationClientHome      LocationType = "CLIENT_HOME"
	LocationNeutral         LocationType = "NEUTRAL_LOCATION"
	LocationVirtual         LocationType = "VIRTUAL"
	LocationOther           LocationType = "OTHER"
)

var locationDisplay = map[LocationType]string{
	LocationPropertyAddress: "Endereço do imóvel",
	LocationOffice:          "Escritório",
	LocationClientHome:      "Casa do cliente",
	LocationNeutral:         "Local neutro",
	LocationVirtual:         "Virtual",
	LocationOther:           "Outro",
}

var displayLocation = func() map[string]LocationType {
	m := make(map[string]LocationType, len(locationDisplay))
	for l, d := range locationDisplay {
		m[strings.ToLower(d)] = l
	}
	return m
}()

func (l LocationType) Display() string {
	return locationDisplay[l]
}

func ParseLocationType(raw string) (LocationType, bool) {
	trimmed := strings.TrimSpace(raw)

	candidate := LocationType(strings.ToUpper(trimmed))
	if _, ok := locationDisplay[candidate]; ok {
		return candidate, true
	}

	if l, ok := displayLocation[strings.ToLower(trimmed)]; ok {
		return l, true
	}

	return "", false
}
