package handler

import (
	"errors"
	"net/http"

	"workshop-invoicing-backend/internal/metrics"
	"workshop-invoicing-backend/internal/models"
	"workshop-invoicing-backend/internal/repository"
	"workshop-invoicing-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	auth         *auth.AuthService
	cookieSecure bool
	log          logrus.FieldLogger
}

func NewAuthHandler(a *auth.AuthService, cookieSecure bool, log logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{auth: a, cookieSecure: cookieSecure, log: log}
}

type userResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Username: u.Username, Email: u.Email}
}

// Login accepts {username, password}; username may also be the account email.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !bindJSON(c, &payload) {
		return
	}
	identifier := payload.Username
	if identifier == "" {
		identifier = payload.Email
	}

	session, err := h.auth.Login(c.Request.Context(), identifier, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			metrics.RecordLogin(false)
			h.log.WithField("identifier", identifier).Warn("login failed")
		}
		respondError(c, h.log, err)
		return
	}
	metrics.RecordLogin(true)

	h.setSessionCookie(c, session.Token, int(h.auth.TTL().Seconds()))
	c.JSON(http.StatusOK, gin.H{
		"token": session.Token,
		"user":  toUserResponse(session.User),
	})
}

// Logout expires the session cookie and asks the browser to drop cached data.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	c.Header("Clear-Site-Data", `"cache", "storage"`)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.auth.CurrentUser(c.Request.Context(), currentUserID(c))
	if errors.Is(err, repository.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user no longer exists"})
		return
	}
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, value, maxAge, "/", "", h.cookieSecure, true)
}
