package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pptgenie-backend/internal/domains/user"
	"pptgenie-backend/internal/shared/middleware"
	"pptgenie-backend/internal/shared/response"
	"pptgenie-backend/pkg/logger"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// ════════════════════════════════════════════════════════════════════
// POST /api/v1/auth/register
// ════════════════════════════════════════════════════════════════════

func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	dto, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": dto})
}

// ════════════════════════════════════════════════════════════════════
// POST /api/v1/auth/login
// ════════════════════════════════════════════════════════════════════

func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	clientIP := middleware.GetClientIPFromContext(c.Request.Context())
	if clientIP == "" {
		clientIP = c.ClientIP()
	}

	resp, err := h.service.Login(c.Request.Context(), req, clientIP)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════════
// POST /api/v1/auth/refresh
// ════════════════════════════════════════════════════════════════════

func (h *UserHandler) Refresh(c *gin.Context) {
	var req user.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		response.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════════
// GET /api/v1/users/me
// ════════════════════════════════════════════════════════════════════

func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	dto, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": dto})
}

func (h *UserHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, user.ErrTooManyAttempts):
		response.TooManyRequests(c, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "User not found")
	default:
		var vErrs validation.Errors
		if errors.As(err, &vErrs) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("User operation failed", err)
		response.InternalServerError(c, "Failed to process request")
	}
}
