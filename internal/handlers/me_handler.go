package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AtrioImoveis/realty-scheduler/internal/middleware"
	"github.com/AtrioImoveis/realty-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	agentIDVal, exists := c.Get(middleware.ContextAgentID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "agent_not_in_context"})
		return
	}

	agentID, ok := agentIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_agent_id_type"})
		return
	}

	var agent models.Agent
	if err := h.db.Preload("Agency").First(&agent, agentID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "agent_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"agent": gin.H{
			"id":        agent.ID,
			"name":      agent.Name,
			"email":     agent.Email,
			"phone":     agent.Phone,
			"role":      agent.Role,
			"agency_id": agent.AgencyID,
		},
		"agency": gin.H{
			"id":      agent.Agency.ID,
			"name":    agent.Agency.Name,
			"slug":    agent.Agency.Slug,
			"phone":   agent.Agency.Phone,
			"address": agent.Agency.Address,
		},
	})
}
