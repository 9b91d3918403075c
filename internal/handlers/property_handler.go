package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AtrioImoveis/realty-scheduler/internal/middleware"
	"github.com/AtrioImoveis/realty-scheduler/internal/models"
	"github.com/AtrioImoveis/realty-scheduler/internal/storage"
)

type PropertyHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewPropertyHandler(db *gorm.DB, uploader *storage.Uploader) *PropertyHandler {
	return &PropertyHandler{db: db, uploader: uploader}
}

// --------- Requests ---------

type CreatePropertyRequest struct {
	Title         string  `json:"title" binding:"required"`
	Description   string  `json:"description"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	Price         float64 `json:"price"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	AreaM2        int     `json:"area_m2"`
	Facilities    string  `json:"facilities"`
	CurrencyID    *uint   `json:"currency_id"`
	DevelopmentID *uint   `json:"development_id"`
}

type UpdatePropertyRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Address     *string  `json:"address,omitempty"`
	City        *string  `json:"city,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Bedrooms    *int     `json:"bedrooms,omitempty"`
	Bathrooms   *int     `json:"bathrooms,omitempty"`
	AreaM2      *int     `json:"area_m2,omitempty"`
	Facilities  *string  `json:"facilities,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *PropertyHandler) List(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)

	city := strings.ToLower(strings.TrimSpace(c.Query("city")))
	activeStr := strings.TrimSpace(c.Query("active"))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("agency_id = ?", agencyID)

	if city != "" {
		q = q.Where("LOWER(city) = ?", city)
	}

	if activeStr != "" {
		if activeStr == "true" {
			q = q.Where("active = ?", true)
		} else if activeStr == "false" {
			q = q.Where("active = ?", false)
		}
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var properties []models.Property
	if err := q.
		Preload("Currency").
		Order("id ASC").
		Find(&properties).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_properties"})
		return
	}

	c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) Get(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)
	id := c.Param("id")

	var property models.Property
	if err := h.db.
		Preload("Currency").
		Preload("Development").
		Where("id = ? AND agency_id = ?", id, agencyID).
		First(&property).Error; err != nil {

		c.JSON(http.StatusNotFound, gin.H{"error": "property_not_found"})
		return
	}

	c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) Create(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)
	agentID := c.MustGet(middleware.ContextAgentID).(uint)

	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	property := models.Property{
		AgencyID:      agencyID,
		DevelopmentID: req.DevelopmentID,
		CurrencyID:    req.CurrencyID,
		Title:         req.Title,
		Description:   req.Description,
		Address:       req.Address,
		City:          req.City,
		Price:         req.Price,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		AreaM2:        req.AreaM2,
		Facilities:    req.Facilities,
		Active:        true,
	}

	if err := h.db.Create(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_property"})
		return
	}

	writeAudit(h.db, agencyID, &agentID, "property_created", "property", &property.ID, nil)

	c.JSON(http.StatusCreated, property)
}

func (h *PropertyHandler) Update(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)
	id := c.Param("id")

	var property models.Property
	if err := h.db.
		Where("id = ? AND agency_id = ?", id, agencyID).
		First(&property).Error; err != nil {

		c.JSON(http.StatusNotFound, gin.H{"error": "property_not_found"})
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	if req.Title != nil {
		property.Title = *req.Title
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Address != nil {
		property.Address = *req.Address
	}
	if req.City != nil {
		property.City = *req.City
	}
	if req.Price != nil {
		property.Price = *req.Price
	}
	if req.Bedrooms != nil {
		property.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		property.Bathrooms = *req.Bathrooms
	}
	if req.AreaM2 != nil {
		property.AreaM2 = *req.AreaM2
	}
	if req.Facilities != nil {
		property.Facilities = *req.Facilities
	}
	if req.Active != nil {
		property.Active = *req.Active
	}

	if err := h.db.Save(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_property"})
		return
	}

	c.JSON(http.StatusOK, property)
}

// ======================================================
// FOTO (S3 + WEBP)
// ======================================================

func (h *PropertyHandler) UploadPhoto(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)
	id := c.Param("id")

	if h.uploader == nil || !h.uploader.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage_not_configured"})
		return
	}

	var property models.Property
	if err := h.db.
		Where("id = ? AND agency_id = ?", id, agencyID).
		First(&property).Error; err != nil {

		c.JSON(http.StatusNotFound, gin.H{"error": "property_not_found"})
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_photo"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_read_photo"})
		return
	}
	defer src.Close()

	processed, err := storage.ProcessPhoto(src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_image"})
		return
	}

	key := fmt.Sprintf("properties/%d/%d.webp", property.ID, time.Now().Unix())

	url, err := h.uploader.Upload(c.Request.Context(), key, processed, "image/webp")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_upload_photo"})
		return
	}

	property.PhotoURL = url
	if err := h.db.Save(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_property"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo_url": url})
}
