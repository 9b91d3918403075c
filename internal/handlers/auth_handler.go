package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AtrioImoveis/realty-scheduler/internal/config"
	"github.com/AtrioImoveis/realty-scheduler/internal/models"
	"github.com/AtrioImoveis/realty-scheduler/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	AgencyName    string `json:"agency_name" binding:"required"`
	AgencySlug    string `json:"agency_slug" binding:"required"`
	AgencyPhone   string `json:"agency_phone"`
	AgencyAddress string `json:"agency_address"`

	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.AgencySlug))

	var count int64
	h.db.Model(&models.Agency{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug_already_exists"})
		return
	}

	agency := models.Agency{
		Name:    req.AgencyName,
		Slug:    slug,
		Phone:   req.AgencyPhone,
		Address: req.AgencyAddress,
	}

	if err := h.db.Create(&agency).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_agency"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_hash_password"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_email_domain",
			"message": "O domínio do e-mail informado não parece ser válido.",
		})
		return
	}

	agent := models.Agent{
		AgencyID:     agency.ID,
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         "owner",
	}

	if err := h.db.Create(&agent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_agent"})
		return
	}

	token, err := h.generateToken(&agent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"agent": gin.H{
			"id":        agent.ID,
			"name":      agent.Name,
			"email":     agent.Email,
			"phone":     agent.Phone,
			"agency_id": agent.AgencyID,
		},
		"agency": gin.H{
			"id":      agency.ID,
			"name":    agency.Name,
			"slug":    agency.Slug,
			"phone":   agency.Phone,
			"address": agency.Address,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var agent models.Agent
	if err := h.db.Preload("Agency").
		Where("email = ?", email).
		First(&agent).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(agent.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}

	token, err := h.generateToken(&agent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_generate_token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"agent": gin.H{
			"id":        agent.ID,
			"name":      agent.Name,
			"email":     agent.Email,
			"phone":     agent.Phone,
			"agency_id": agent.AgencyID,
		},
		"agency": gin.H{
			"id":      agent.Agency.ID,
			"name":    agent.Agency.Name,
			"slug":    agent.Agency.Slug,
			"phone":   agent.Agency.Phone,
			"address": agent.Agency.Address,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(agent *models.Agent) (string, error) {
	claims := jwt.MapClaims{
		"sub":      agent.ID,
		"agencyId": agent.AgencyID,
		"role":     agent.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
