package api

import (
	"net/http"
	"strings"

	"hope-backend/internal/config"
	"hope-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AdminHandler struct {
	DB     *gorm.DB
	Config *config.Config
	Logger zerolog.Logger
}

func NewAdminHandler(db *gorm.DB, cfg *config.Config, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{DB: db, Config: cfg, Logger: logger}
}

// RequireAdminToken guards the admin surface with the static bearer token
// from ADMIN_TOKEN. An unset token closes the endpoint entirely.
func (h *AdminHandler) RequireAdminToken(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if h.Config.AdminToken == "" || token != h.Config.AdminToken {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
		return
	}
	c.Next()
}

func (h *AdminHandler) Stats(c *gin.Context) {
	var users, contacts, subscriptions, payments, donationCount int64
	h.DB.Model(&models.User{}).Count(&users)
	h.DB.Model(&models.Contact{}).Count(&contacts)
	h.DB.Model(&models.NewsletterSubscription{}).Where("status = ?", "active").Count(&subscriptions)
	h.DB.Model(&models.Payment{}).Count(&payments)
	h.DB.Model(&models.Donation{}).Count(&donationCount)

	total, err := h.donationTotal()
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to sum donations")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                  true,
		"registered_users":         users,
		"contact_messages":         contacts,
		"newsletter_subscriptions": subscriptions,
		"payments":                 payments,
		"donation_count":           donationCount,
		"total_donations":          total.StringFixed(2),
	})
}

// donationTotal sums amounts in Go so decimal precision survives the
// aggregate regardless of the underlying driver.
func (h *AdminHandler) donationTotal() (decimal.Decimal, error) {
	var amounts []decimal.Decimal
	if err := h.DB.Model(&models.Donation{}).Pluck("amount", &amounts).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total, nil
}
