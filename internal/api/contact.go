package api

import (
	"net/http"

	"hope-backend/internal/models"
	"hope-backend/internal/notify"
	"hope-backend/internal/validate"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type ContactHandler struct {
	DB       *gorm.DB
	Notifier *notify.Notifier
	Logger   zerolog.Logger
}

func NewContactHandler(db *gorm.DB, notifier *notify.Notifier, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{DB: db, Notifier: notifier, Logger: logger}
}

type contactRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	Newsletter bool   `json:"newsletter"`
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}

	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name is required"})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email is required"})
		return
	}
	if !validate.Email(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide a valid email address"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Message is required"})
		return
	}

	contact := models.Contact{
		Name:       req.Name,
		Email:      validate.NormalizeEmail(req.Email),
		Phone:      req.Phone,
		Subject:    req.Subject,
		Message:    req.Message,
		Newsletter: req.Newsletter,
		Status:     "new",
		UserID:     sessionUserID(c, h.DB),
	}

	if err := h.DB.Create(&contact).Error; err != nil {
		h.Logger.Error().Err(err).Msg("failed to persist contact")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not process your message, please try again later"})
		return
	}

	if req.Newsletter {
		if _, err := upsertSubscription(h.DB, contact.Email); err != nil {
			h.Logger.Error().Err(err).Msg("failed to record newsletter opt-in")
		}
	}

	go h.Notifier.ContactReceived(notify.ContactEvent{
		Name:    contact.Name,
		Email:   contact.Email,
		Subject: contact.Subject,
		Message: contact.Message,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Thank you for your message! We will get back to you soon."})
}
