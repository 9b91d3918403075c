package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/AtrioImoveis/realty-scheduler/internal/domain/appointment"
	"github.com/AtrioImoveis/realty-scheduler/internal/httperr"
	"github.com/AtrioImoveis/realty-scheduler/internal/models"
	"github.com/AtrioImoveis/realty-scheduler/internal/observability/metrics"
	ucAppointment "github.com/AtrioImoveis/realty-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucAppointment.GetAvailability
	bookingUC      *ucAppointment.CreatePublicBooking
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucAppointment.GetAvailability,
	bookingUC *ucAppointment.CreatePublicBooking,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		bookingUC:      bookingUC,
	}
}

// ======================================================
// DTOs
// ======================================================

type PublicBookingRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`

	PropertyID uint `json:"property_id" binding:"required"`

	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	DurationMin int    `json:"duration_min" binding:"required,min=1"`

	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`
	Notes       string `json:"notes"`
}

// ======================================================
// PROPERTIES (VITRINE)
// ======================================================

func (h *PublicHandler) ListProperties(c *gin.Context) {
	slug := c.Param("slug")

	var agency models.Agency
	if err := h.db.Where("slug = ?", slug).First(&agency).Error; err != nil {
		httperr.NotFound(c, "agency_not_found", "Imobiliária não encontrada.")
		return
	}

	city := strings.TrimSpace(strings.ToLower(c.Query("city")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("agency_id = ? AND active = true", agency.ID)

	if city != "" {
		q = q.Where("LOWER(city) = ?", city)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var properties []models.Property
	if err := q.Order("id ASC").Find(&properties).Error; err != nil {
		httperr.Internal(c, "failed_to_list_properties", "Erro ao listar imóveis.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"agency":     agency,
		"properties": properties,
	})
}

// ======================================================
// AVAILABILITY (REUSO TOTAL DO USE CASE)
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	propertyIDStr := c.Query("property_id")

	if dateStr == "" || propertyIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e imóvel obrigatórios.")
		return
	}

	propertyID, err := strconv.ParseUint(propertyIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_property_id", "Imóvel inválido.")
		return
	}

	// só o dia de calendário importa; o fuso da imobiliária é
	// aplicado pelo use case ao montar a grade
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	metrics.AvailabilityQueries.Inc()

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			PropertyID: uint(propertyID),
			Date:       date,
		},
	)

	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

// ======================================================
// CREATE BOOKING (PÚBLICO → REUSA O CAMINHO PRIVADO)
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.bookingUC.Execute(
		c.Request.Context(),
		ucAppointment.PublicBookingInput{
			Title:       req.Title,
			Description: req.Description,
			PropertyID:  req.PropertyID,
			Date:        req.Date,
			Time:        req.Time,
			DurationMin: req.DurationMin,
			ClientEmail: req.ClientEmail,
			ClientPhone: req.ClientPhone,
			Notes:       req.Notes,
		},
	)

	if err != nil {
		if httperr.IsKind(err, httperr.KindConflict) {
			metrics.SchedulingConflicts.Inc()
		}
		httperr.WriteBusiness(c, err)
		return
	}

	metrics.AppointmentsCreated.WithLabelValues("public").Inc()

	c.JSON(http.StatusCreated, gin.H{
		"appointment":       ap,
		"confirmation_code": ap.ConfirmationCode,
	})
}
