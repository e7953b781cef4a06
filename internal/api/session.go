package api

import (
	"net/http"
	"time"

	"hope-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	sessionCookieName = "session_token"
	sessionTTL        = 7 * 24 * time.Hour
	userContextKey    = "currentUser"
)

func createSession(db *gorm.DB, userID uint) (models.Session, error) {
	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	err := db.Create(&session).Error
	return session, err
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, int(sessionTTL.Seconds()), "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}

// lookupSession resolves the cookie to a live session's user. Expired
// sessions are removed on sight.
func lookupSession(c *gin.Context, db *gorm.DB) (*models.User, bool) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		return nil, false
	}

	var session models.Session
	if err := db.Where("token = ?", token).First(&session).Error; err != nil {
		return nil, false
	}
	if time.Now().After(session.ExpiresAt) {
		db.Delete(&session)
		return nil, false
	}

	var user models.User
	if err := db.First(&user, session.UserID).Error; err != nil {
		return nil, false
	}
	return &user, true
}

// sessionUserID returns the owning user reference for records created by a
// logged-in visitor, or nil for an anonymous one.
func sessionUserID(c *gin.Context, db *gorm.DB) *uint {
	if user, ok := lookupSession(c, db); ok {
		return &user.ID
	}
	return nil
}

// RequireSession gates the account endpoints behind a valid session cookie.
func RequireSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := lookupSession(c, db)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userContextKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
