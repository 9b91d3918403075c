package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/AtrioImoveis/realty-scheduler/internal/domain/appointment"
	"github.com/AtrioImoveis/realty-scheduler/internal/dto"
	"github.com/AtrioImoveis/realty-scheduler/internal/httperr"
	"github.com/AtrioImoveis/realty-scheduler/internal/httpresp"
	"github.com/AtrioImoveis/realty-scheduler/internal/middleware"
	"github.com/AtrioImoveis/realty-scheduler/internal/models"
	"github.com/AtrioImoveis/realty-scheduler/internal/observability/metrics"
	ucAppointment "github.com/AtrioImoveis/realty-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db   *gorm.DB
	repo domain.Repository

	createUC     *ucAppointment.CreateAppointment
	statusUC     *ucAppointment.UpdateStatus
	cancelUC     *ucAppointment.CancelAppointment
	rescheduleUC *ucAppointment.RescheduleAppointment
	deleteUC     *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	db *gorm.DB,
	repo domain.Repository,
	createUC *ucAppointment.CreateAppointment,
	statusUC *ucAppointment.UpdateStatus,
	cancelUC *ucAppointment.CancelAppointment,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:           db,
		repo:         repo,
		createUC:     createUC,
		statusUC:     statusUC,
		cancelUC:     cancelUC,
		rescheduleUC: rescheduleUC,
		deleteUC:     deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Type         string `json:"type" binding:"required"`
	LocationType string `json:"location_type"`
	Location     string `json:"location"`

	ClientID   uint  `json:"client_id" binding:"required"`
	PropertyID *uint `json:"property_id"`

	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
	Notes       string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

type RescheduleAppointmentRequest struct {
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	DurationMin *int   `json:"duration_min,omitempty"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	agentID := c.MustGet(middleware.ContextAgentID).(uint)
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	clientID := req.ClientID

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		AgencyID:     agencyID,
		AgentID:      agentID,
		ClientID:     &clientID,
		PropertyID:   req.PropertyID,
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		LocationType: req.LocationType,
		Location:     req.Location,
		Date:         req.Date,
		Time:         req.Time,
		DurationMin:  req.DurationMin,
		Notes:        req.Notes,
	})

	if err != nil {
		if httperr.IsKind(err, httperr.KindConflict) {
			metrics.SchedulingConflicts.Inc()
		}
		httperr.WriteBusiness(c, err)
		return
	}

	metrics.AppointmentsCreated.WithLabelValues("private").Inc()

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.
		Preload("Client").
		Preload("Property").
		Where("id = ? AND agency_id = ?", id, agencyID).
		First(&ap).Error; err != nil {

		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// LIST (AGENTE + DATA)
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	agentID := c.MustGet(middleware.ContextAgentID).(uint)
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var agency models.Agency
	if err := h.db.First(&agency, agencyID).Error; err != nil {
		httperr.Internal(c, "agency_not_found", "Imobiliária não encontrada.")
		return
	}

	date, err := parseDateInAgency(&agency, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24 * time.Hour)

	aps, err := h.repo.ListAppointmentsForRange(c.Request.Context(), agentID, start, end)
	if err != nil {
		httperr.Internal(c, "appointments_list_failed", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

// ======================================================
// LIST (INTERVALO)
// ======================================================

func (h *AppointmentHandler) ListByRange(c *gin.Context) {
	agentID := c.MustGet(middleware.ContextAgentID).(uint)
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		httperr.BadRequest(c, "missing_range", "Intervalo obrigatório.")
		return
	}

	var agency models.Agency
	if err := h.db.First(&agency, agencyID).Error; err != nil {
		httperr.Internal(c, "agency_not_found", "Imobiliária não encontrada.")
		return
	}

	from, err := parseDateInAgency(&agency, fromStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	to, err := parseDateInAgency(&agency, toStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	aps, err := h.repo.ListAppointmentsForRange(c.Request.Context(), agentID, from, to.Add(24*time.Hour))
	if err != nil {
		httperr.Internal(c, "appointments_list_failed", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, dto.FromAppointments(aps))
}

// ======================================================
// LIST (CLIENTE / IMÓVEL)
// ======================================================

func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)
	clientID := c.Param("id")

	var aps []models.Appointment
	h.db.
		Preload("Client").
		Preload("Property").
		Where("agency_id = ? AND client_id = ?", agencyID, clientID).
		Order("start_time ASC").
		Find(&aps)

	httpresp.List(c, dto.FromAppointments(aps))
}

func (h *AppointmentHandler) ListByProperty(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)
	propertyID := c.Param("id")

	var aps []models.Appointment
	h.db.
		Preload("Client").
		Preload("Property").
		Where("agency_id = ? AND property_id = ?", agencyID, propertyID).
		Order("start_time ASC").
		Find(&aps)

	httpresp.List(c, dto.FromAppointments(aps))
}

// ======================================================
// LIST (PÚBLICOS)
// ======================================================

func (h *AppointmentHandler) ListPublic(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)

	var aps []models.Appointment
	h.db.
		Preload("Property").
		Where("agency_id = ? AND is_public = ?", agencyID, true).
		Order("start_time ASC").
		Find(&aps)

	httpresp.List(c, dto.FromAppointments(aps))
}

func (h *AppointmentHandler) ListPublicByProperty(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)
	propertyID := c.Param("id")

	var aps []models.Appointment
	h.db.
		Preload("Property").
		Where(
			"agency_id = ? AND is_public = ? AND property_id = ?",
			agencyID, true, propertyID,
		).
		Order("start_time ASC").
		Find(&aps)

	httpresp.List(c, dto.FromAppointments(aps))
}

// ======================================================
// STATUS / CANCEL / RESCHEDULE / DELETE
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	agentID := c.MustGet(middleware.ContextAgentID).(uint)
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.statusUC.Execute(c.Request.Context(), id, req.Status, agentID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	agentID := c.MustGet(middleware.ContextAgentID).(uint)
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req CancelAppointmentRequest
	// corpo é opcional no cancelamento
	_ = c.ShouldBindJSON(&req)

	ap, err := h.cancelUC.Execute(c.Request.Context(), id, req.Reason, agentID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	agentID := c.MustGet(middleware.ContextAgentID).(uint)
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), id, ucAppointment.RescheduleInput{
		Date:        req.Date,
		Time:        req.Time,
		DurationMin: req.DurationMin,
	}, agentID)

	if err != nil {
		if httperr.IsKind(err, httperr.KindConflict) {
			metrics.SchedulingConflicts.Inc()
		}
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	agentID := c.MustGet(middleware.ContextAgentID).(uint)
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := h.deleteUC.Execute(c.Request.Context(), id, agentID)
	if err != nil {
		httperr.WriteBusiness(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// HELPERS
// ======================================================

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}
