package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bitfantasy/masterlist/internal/masterlist/service"
	"github.com/bitfantasy/masterlist/internal/masterlist/validate"
)

// ProcessHandler 工艺接口
type ProcessHandler struct {
	svc *service.ProcessService
}

func NewProcessHandler(svc *service.ProcessService) *ProcessHandler {
	return &ProcessHandler{svc: svc}
}

// List GET /api/v1/processes
func (h *ProcessHandler) List(c *gin.Context) {
	Success(c, h.svc.List(c.Request.Context()))
}

// Get GET /api/v1/processes/:id
func (h *ProcessHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "process not found")
		return
	}
	Success(c, p)
}

// Create POST /api/v1/processes
func (h *ProcessHandler) Create(c *gin.Context) {
	var row validate.ProcessRow
	if err := c.ShouldBindJSON(&row); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	p, rowErrs, err := h.svc.Create(c.Request.Context(), &row)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	if len(rowErrs) > 0 {
		ValidationFailed(c, rowErrs)
		return
	}
	Created(c, p)
}

// Update PUT /api/v1/processes/:id
func (h *ProcessHandler) Update(c *gin.Context) {
	var upd service.ProcessUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	p, rowErrs, err := h.svc.Update(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		respondServiceError(c, err, "process not found")
		return
	}
	if len(rowErrs) > 0 {
		ValidationFailed(c, rowErrs)
		return
	}
	Success(c, p)
}

// Delete DELETE /api/v1/processes/:id
func (h *ProcessHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "process not found")
		return
	}
	Success(c, gin.H{"message": "process deleted"})
}
