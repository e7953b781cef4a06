package api

import (
	"errors"
	"net/http"

	"hope-backend/internal/models"
	"hope-backend/internal/validate"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB     *gorm.DB
	Logger zerolog.Logger
}

func NewAuthHandler(db *gorm.DB, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{DB: db, Logger: logger}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}

	if !validate.Email(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide a valid email address"})
		return
	}
	if len(req.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Password must be at least 8 characters"})
		return
	}

	email := validate.NormalizeEmail(req.Email)
	var existing models.User
	err := h.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "An account with this email already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.Logger.Error().Err(err).Msg("failed to check existing user")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not process your registration, please try again later"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not process your registration, please try again later"})
		return
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
	}
	if err := h.DB.Create(&user).Error; err != nil {
		h.Logger.Error().Err(err).Msg("failed to persist user")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not process your registration, please try again later"})
		return
	}

	// Registration logs the user straight in, matching the site flow.
	session, err := createSession(h.DB, user.ID)
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to create session")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Account created, please log in"})
		return
	}
	setSessionCookie(c, session.Token)

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Registration successful", "user": user})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request payload"})
		return
	}

	var user models.User
	err := h.DB.Where("email = ?", validate.NormalizeEmail(req.Email)).First(&user).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.Logger.Error().Err(err).Msg("failed to look up user")
		}
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	session, err := createSession(h.DB, user.ID)
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to create session")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not log you in, please try again later"})
		return
	}
	setSessionCookie(c, session.Token)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful", "user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookieName); err == nil && token != "" {
		h.DB.Where("token = ?", token).Delete(&models.Session{})
	}
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}
