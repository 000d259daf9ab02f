// File: internal/handler/http/auth_handler.go
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Daniell17/football-app/internal/service"
)

// AuthHandler обрабатывает HTTP запросы аутентификации
type AuthHandler struct {
	logger       *zap.Logger
	authService  *service.AuthService
	tokenService *service.TokenService
}

// NewAuthHandler создает новый AuthHandler.
func NewAuthHandler(logger *zap.Logger, authService *service.AuthService, tokenService *service.TokenService) *AuthHandler {
	return &AuthHandler{
		logger:       logger.Named("auth_handler"),
		authService:  authService,
		tokenService: tokenService,
	}
}

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=128"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
}

// Register handles user registration.
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", "bad_request", h.logger)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusCreated, gin.H{"user": user})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	MFACode  string `json:"mfa_code"`
}

// Login handles user login, optionally with a TOTP code when MFA is enabled.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", "bad_request", h.logger)
		return
	}

	tokens, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password, req.MFACode, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusOK, gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh rotates the refresh token and returns a new token pair.
// POST /api/v1/auth/refresh-token
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", "bad_request", h.logger)
		return
	}

	tokens, err := h.tokenService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusOK, gin.H{"tokens": tokens})
}

// Logout revokes the current session.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondWithError(c, http.StatusUnauthorized, "unauthorized", "unauthorized", h.logger)
		return
	}
	sessionID, err := currentSessionID(c)
	if err != nil {
		RespondWithError(c, http.StatusUnauthorized, "unauthorized", "unauthorized", h.logger)
		return
	}

	if err := h.tokenService.RevokeOne(c.Request.Context(), sessionID, userID); err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithMessage(c, http.StatusOK, "Logged out successfully")
}

// LogoutAll revokes every session of the current user.
// POST /api/v1/auth/logout-all
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondWithError(c, http.StatusUnauthorized, "unauthorized", "unauthorized", h.logger)
		return
	}

	revoked, err := h.tokenService.RevokeAll(c.Request.Context(), userID, service.WipeReasonLogoutAll)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusOK, gin.H{
		"message":          "All sessions revoked",
		"sessions_revoked": revoked,
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword initiates a password reset. The response does not reveal
// whether the address is registered.
// POST /api/v1/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", "bad_request", h.logger)
		return
	}

	if err := h.authService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithMessage(c, http.StatusOK, "If the email is registered, a reset link has been sent")
}

type resetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// ResetPassword consumes a reset token and sets a new password.
// POST /api/v1/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", "bad_request", h.logger)
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithMessage(c, http.StatusOK, "Password has been reset")
}

// SetupMFA generates a TOTP secret for the current user. MFA stays disabled
// until the first code is verified.
// POST /api/v1/auth/mfa/setup
func (h *AuthHandler) SetupMFA(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondWithError(c, http.StatusUnauthorized, "unauthorized", "unauthorized", h.logger)
		return
	}

	secret, otpauthURL, err := h.authService.SetupMFA(c.Request.Context(), userID)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusOK, gin.H{
		"secret":      secret,
		"otpauth_url": otpauthURL,
	})
}

type verifyMFARequest struct {
	Code string `json:"code" binding:"required,len=6"`
}

// VerifyMFA confirms a TOTP code; the first success enables MFA.
// POST /api/v1/auth/mfa/verify
func (h *AuthHandler) VerifyMFA(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondWithError(c, http.StatusUnauthorized, "unauthorized", "unauthorized", h.logger)
		return
	}

	var req verifyMFARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondWithError(c, http.StatusBadRequest, "Invalid request payload", "bad_request", h.logger)
		return
	}

	if err := h.authService.VerifyMFA(c.Request.Context(), userID, req.Code); err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithMessage(c, http.StatusOK, "MFA enabled")
}
