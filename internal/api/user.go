package api

import (
	"net/http"

	"hope-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UserHandler struct {
	DB     *gorm.DB
	Logger zerolog.Logger
}

func NewUserHandler(db *gorm.DB, logger zerolog.Logger) *UserHandler {
	return &UserHandler{DB: db, Logger: logger}
}

func (h *UserHandler) Profile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "user": currentUser(c)})
}

func (h *UserHandler) Dashboard(c *gin.Context) {
	user := currentUser(c)

	var donations []models.Donation
	if err := h.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&donations).Error; err != nil {
		h.Logger.Error().Err(err).Msg("failed to load donations")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load dashboard"})
		return
	}

	total := decimal.Zero
	for _, d := range donations {
		total = total.Add(d.Amount)
	}

	recent := donations
	if len(recent) > 5 {
		recent = recent[:5]
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"dashboard": gin.H{
			"user": user,
			"stats": gin.H{
				"total_donated":  total.StringFixed(2),
				"donation_count": len(donations),
			},
			"recent_donations": recent,
		},
	})
}

func (h *UserHandler) Donations(c *gin.Context) {
	user := currentUser(c)

	var donations []models.Donation
	if err := h.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&donations).Error; err != nil {
		h.Logger.Error().Err(err).Msg("failed to load donations")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load donations"})
		return
	}
	if donations == nil {
		donations = []models.Donation{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "donations": donations})
}

func (h *UserHandler) Payments(c *gin.Context) {
	user := currentUser(c)

	var payments []models.Payment
	if err := h.DB.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&payments).Error; err != nil {
		h.Logger.Error().Err(err).Msg("failed to load payments")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load payments"})
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "payments": payments})
}
