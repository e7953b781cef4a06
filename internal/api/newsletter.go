package api

import (
	"errors"
	"net/http"

	"hope-backend/internal/models"
	"hope-backend/internal/notify"
	"hope-backend/internal/validate"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type NewsletterHandler struct {
	DB       *gorm.DB
	Notifier *notify.Notifier
	Logger   zerolog.Logger
}

func NewNewsletterHandler(db *gorm.DB, notifier *notify.Notifier, logger zerolog.Logger) *NewsletterHandler {
	return &NewsletterHandler{DB: db, Notifier: notifier, Logger: logger}
}

type newsletterRequest struct {
	Email string `json:"email"`
}

func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req newsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}

	if !validate.Email(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide a valid email address"})
		return
	}

	email := validate.NormalizeEmail(req.Email)
	created, err := upsertSubscription(h.DB, email)
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to persist subscription")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not process your subscription, please try again later"})
		return
	}

	if created {
		go h.Notifier.NewsletterSubscribed(email)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Thank you for subscribing to our newsletter!"})
}

// upsertSubscription enforces the one-row-per-email policy: an active
// subscription is left alone, an unsubscribed one is reactivated, and a new
// email gets a fresh row. Returns whether a subscription was newly
// activated.
func upsertSubscription(db *gorm.DB, email string) (bool, error) {
	var sub models.NewsletterSubscription
	err := db.Where("email = ?", email).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		sub = models.NewsletterSubscription{Email: email, Status: "active"}
		if err := db.Create(&sub).Error; err != nil {
			return false, err
		}
		return true, nil
	}
	if err != nil {
		return false, err
	}

	if sub.Status != "active" {
		if err := db.Model(&sub).Update("status", "active").Error; err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}
