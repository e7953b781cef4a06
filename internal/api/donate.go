package api

import (
	"net/http"
	"strings"

	"hope-backend/internal/config"
	"hope-backend/internal/models"
	"hope-backend/internal/notify"
	"hope-backend/internal/validate"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type DonationHandler struct {
	DB       *gorm.DB
	Config   *config.Config
	Notifier *notify.Notifier
	Logger   zerolog.Logger
}

func NewDonationHandler(db *gorm.DB, cfg *config.Config, notifier *notify.Notifier, logger zerolog.Logger) *DonationHandler {
	return &DonationHandler{DB: db, Config: cfg, Notifier: notifier, Logger: logger}
}

type donateRequest struct {
	Amount           string `json:"amount"`
	CustomAmount     string `json:"customAmount"`
	DonationType     string `json:"donationType"`
	PaymentMethod    string `json:"paymentMethod"`
	DonorName        string `json:"donorName"`
	DonorEmail       string `json:"donorEmail"`
	DonorPhone       string `json:"donorPhone"`
	ProjectSelection string `json:"projectSelection"`
	DonorMessage     string `json:"donorMessage"`
	Anonymous        bool   `json:"anonymous"`
	Newsletter       bool   `json:"newsletter"`
}

func (h *DonationHandler) Submit(c *gin.Context) {
	var req donateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}

	amount, err := validate.ResolveAmount(req.Amount, req.CustomAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please enter a valid donation amount greater than zero"})
		return
	}

	method := strings.ToLower(strings.TrimSpace(req.PaymentMethod))
	if method == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment method is required"})
		return
	}
	if !h.Config.AcceptsPaymentMethod(method) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment method '" + method + "' is not accepted"})
		return
	}

	if req.DonorName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Donor name is required"})
		return
	}
	if !validate.Email(req.DonorEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide a valid email address"})
		return
	}

	donationType := req.DonationType
	if donationType == "" {
		donationType = "one-time"
	}

	userID := sessionUserID(c, h.DB)
	donation := models.Donation{
		Amount:        amount,
		DonationType:  donationType,
		PaymentMethod: method,
		DonorName:     req.DonorName,
		DonorEmail:    validate.NormalizeEmail(req.DonorEmail),
		DonorPhone:    req.DonorPhone,
		Project:       req.ProjectSelection,
		Message:       req.DonorMessage,
		Anonymous:     req.Anonymous,
		TransactionID: "TXN-" + uuid.NewString(),
		UserID:        userID,
	}

	// Donation and its pending payment land together or not at all.
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&donation).Error; err != nil {
			return err
		}
		payment := models.Payment{
			Amount:     donation.Amount,
			Currency:   "USD",
			Gateway:    donation.PaymentMethod,
			Status:     "pending",
			UserID:     userID,
			DonationID: &donation.ID,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to persist donation")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not process your donation, please try again later"})
		return
	}

	if req.Newsletter {
		if _, err := upsertSubscription(h.DB, donation.DonorEmail); err != nil {
			h.Logger.Error().Err(err).Msg("failed to record newsletter opt-in")
		}
	}

	go h.Notifier.DonationReceived(notify.DonationEvent{
		Amount:        donation.Amount,
		PaymentMethod: donation.PaymentMethod,
		DonationType:  donation.DonationType,
		Project:       donation.Project,
		Message:       donation.Message,
		DonorName:     donation.DonorName,
		DonorEmail:    donation.DonorEmail,
		Anonymous:     donation.Anonymous,
		TransactionID: donation.TransactionID,
	})

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Thank you for your donation!",
		"amount":        donation.Amount.String(),
		"paymentMethod": donation.PaymentMethod,
		"transactionId": donation.TransactionID,
	})
}
