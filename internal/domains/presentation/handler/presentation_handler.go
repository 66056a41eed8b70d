package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pptgenie-backend/internal/domains/presentation/model"
	"pptgenie-backend/internal/domains/presentation/service"
	"pptgenie-backend/internal/shared/middleware"
	"pptgenie-backend/internal/shared/response"
	"pptgenie-backend/pkg/logger"
)

type PresentationHandler struct {
	service service.Service
}

func NewPresentationHandler(svc service.Service) *PresentationHandler {
	return &PresentationHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/presentations
// ════════════════════════════════════════════════════════════════

func (h *PresentationHandler) Generate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.GenerateRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":      p.ID,
		"message": "Presentation generated successfully",
	})
}

// ════════════════════════════════════════════════════════════════
// READ: List - GET /v1/presentations
// ════════════════════════════════════════════════════════════════

func (h *PresentationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	summaries, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"presentations": summaries,
	})
}

// ════════════════════════════════════════════════════════════════
// READ: Get - GET /v1/presentations/:id
// ════════════════════════════════════════════════════════════════

func (h *PresentationHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable id cannot name an existing record
		response.NotFound(c, "Presentation not found")
		return
	}

	p, err := h.service.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"presentation": p.ToResponse(),
	})
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PATCH /v1/presentations/:id
// ════════════════════════════════════════════════════════════════

func (h *PresentationHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Presentation not found")
		return
	}

	var req model.UpdateRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"presentation": p.ToResponse(),
	})
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/presentations/:id
// ════════════════════════════════════════════════════════════════

func (h *PresentationHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Presentation not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Presentation deleted successfully",
	})
}

// ════════════════════════════════════════════════════════════════
// ERROR MAPPING
// ════════════════════════════════════════════════════════════════

// writeError maps service errors onto the HTTP taxonomy. Store failures
// are logged with detail server-side but surface as a generic message.
func (h *PresentationHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrPresentationNotFound):
		response.NotFound(c, "Presentation not found")
	case errors.Is(err, model.ErrInvalidArgument):
		response.BadRequest(c, err.Error())
	default:
		logger.Error("presentation request failed", err)
		response.InternalServerError(c, "Failed to process presentation")
	}
}
