package api

import (
	"net/http"
	"time"

	"hope-backend/internal/config"
	"hope-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FinancialHandler struct {
	DB     *gorm.DB
	Config *config.Config
	Logger zerolog.Logger
}

func NewFinancialHandler(db *gorm.DB, cfg *config.Config, logger zerolog.Logger) *FinancialHandler {
	return &FinancialHandler{DB: db, Config: cfg, Logger: logger}
}

// Published expense split for the transparency pages.
const (
	programPercentage     = 80
	adminPercentage       = 12
	fundraisingPercentage = 8
)

func (h *FinancialHandler) Overview(c *gin.Context) {
	var amounts []decimal.Decimal
	if err := h.DB.Model(&models.Donation{}).Pluck("amount", &amounts).Error; err != nil {
		h.Logger.Error().Err(err).Msg("failed to load donation amounts")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load financial overview"})
		return
	}
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}

	var campaigns []models.Campaign
	if err := h.DB.Order("id").Find(&campaigns).Error; err != nil {
		h.Logger.Error().Err(err).Msg("failed to load campaigns")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load financial overview"})
		return
	}
	active := make([]gin.H, 0, len(campaigns))
	for _, cmp := range campaigns {
		active = append(active, gin.H{"id": cmp.ID, "name": cmp.Name})
	}

	hundred := decimal.NewFromInt(100)
	c.JSON(http.StatusOK, gin.H{
		"year":                 time.Now().Year(),
		"total_donations":      total.StringFixed(2),
		"program_expenses":     total.Mul(decimal.NewFromInt(programPercentage)).Div(hundred).StringFixed(2),
		"admin_expenses":       total.Mul(decimal.NewFromInt(adminPercentage)).Div(hundred).StringFixed(2),
		"fundraising_expenses": total.Mul(decimal.NewFromInt(fundraisingPercentage)).Div(hundred).StringFixed(2),
		"active_campaigns":     active,
	})
}

func (h *FinancialHandler) Transparency(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"program_percentage":     programPercentage,
		"admin_percentage":       adminPercentage,
		"fundraising_percentage": fundraisingPercentage,
		"efficiency_rating":      "A+",
	})
}

func (h *FinancialHandler) Campaigns(c *gin.Context) {
	var campaigns []models.Campaign
	if err := h.DB.Order("id").Find(&campaigns).Error; err != nil {
		h.Logger.Error().Err(err).Msg("failed to load campaigns")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load campaigns"})
		return
	}

	out := make([]gin.H, 0, len(campaigns))
	for _, cmp := range campaigns {
		progress := 0
		if cmp.GoalAmount.IsPositive() {
			progress = int(cmp.RaisedAmount.Mul(decimal.NewFromInt(100)).Div(cmp.GoalAmount).IntPart())
		}
		out = append(out, gin.H{
			"id":            cmp.ID,
			"name":          cmp.Name,
			"description":   cmp.Description,
			"goal_amount":   cmp.GoalAmount.StringFixed(2),
			"raised_amount": cmp.RaisedAmount.StringFixed(2),
			"progress":      progress,
		})
	}
	c.JSON(http.StatusOK, out)
}

type impactRequest struct {
	Amount any `json:"amount"`
}

// Impact ratios: $45 helps a family, $1 buys 4 meals and 2 days of clean
// water, $5 funds an hour of education.
func (h *FinancialHandler) ImpactCalculator(c *gin.Context) {
	var req impactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}

	amount, ok := coerceAmount(req.Amount)
	if !ok || amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide a valid amount"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"impact": gin.H{
			"families_helped":  amount.Div(decimal.NewFromInt(45)).IntPart(),
			"meals_provided":   amount.Mul(decimal.NewFromInt(4)).IntPart(),
			"clean_water_days": amount.Mul(decimal.NewFromInt(2)).IntPart(),
			"education_hours":  amount.Div(decimal.NewFromInt(5)).IntPart(),
		},
	})
}

// coerceAmount tolerates the amount arriving as a JSON number or a form
// value string.
func coerceAmount(v any) (decimal.Decimal, bool) {
	switch value := v.(type) {
	case float64:
		return decimal.NewFromFloat(value), true
	case string:
		d, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case nil:
		return decimal.Zero, true
	default:
		return decimal.Zero, false
	}
}

func (h *FinancialHandler) CryptoAddresses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"addresses": gin.H{
			"bitcoin":  h.Config.BitcoinAddress,
			"ethereum": h.Config.EthereumAddress,
		},
	})
}
