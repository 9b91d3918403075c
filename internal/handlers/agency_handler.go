package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AtrioImoveis/realty-scheduler/internal/middleware"
	"github.com/AtrioImoveis/realty-scheduler/internal/models"
	"github.com/AtrioImoveis/realty-scheduler/internal/timezone"
)

type AgencyHandler struct {
	db *gorm.DB
}

func NewAgencyHandler(db *gorm.DB) *AgencyHandler {
	return &AgencyHandler{db: db}
}

// --------- Requests ---------

type UpdateAgencyRequest struct {
	Name              *string `json:"name,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Address           *string `json:"address,omitempty"`
	Timezone          *string `json:"timezone,omitempty"`
	MinAdvanceMinutes *int    `json:"min_advance_minutes,omitempty"`
}

// --------- Handlers ---------

func (h *AgencyHandler) GetMeAgency(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)

	var agency models.Agency
	if err := h.db.First(&agency, agencyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "agency_not_found"})
		return
	}

	c.JSON(http.StatusOK, agency)
}

func (h *AgencyHandler) UpdateMeAgency(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)

	var agency models.Agency
	if err := h.db.First(&agency, agencyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "agency_not_found"})
		return
	}

	var req UpdateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if req.Name != nil {
		agency.Name = *req.Name
	}
	if req.Phone != nil {
		agency.Phone = *req.Phone
	}
	if req.Address != nil {
		agency.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_timezone"})
			return
		}
		agency.Timezone = *req.Timezone
	}
	if req.MinAdvanceMinutes != nil && *req.MinAdvanceMinutes >= 0 {
		agency.MinAdvanceMinutes = *req.MinAdvanceMinutes
	}

	if err := h.db.Save(&agency).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_agency"})
		return
	}

	c.JSON(http.StatusOK, agency)
}
