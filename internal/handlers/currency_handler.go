package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AtrioImoveis/realty-scheduler/internal/httpresp"
	"github.com/AtrioImoveis/realty-scheduler/internal/models"
)

type CurrencyHandler struct {
	db *gorm.DB
}

func NewCurrencyHandler(db *gorm.DB) *CurrencyHandler {
	return &CurrencyHandler{db: db}
}

func (h *CurrencyHandler) List(c *gin.Context) {
	var currencies []models.Currency
	if err := h.db.Order("code ASC").Find(&currencies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_currencies"})
		return
	}

	httpresp.List(c, currencies)
}
