package handlers

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/AtrioImoveis/realty-scheduler/internal/models"
)

func writeAudit(
	db *gorm.DB,
	agencyID uint,
	agentID *uint,
	action string,
	entity string,
	entityID *uint,
	meta any,
) {

	var payload string
	if meta != nil {
		if b, err := json.Marshal(meta); err == nil {
			payload = string(b)
		}
	}

	log := models.AuditLog{
		AgencyID: agencyID,
		AgentID:  agentID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: payload,
	}

	db.Create(&log)
}
