package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bitfantasy/masterlist/internal/masterlist/service"
	"github.com/bitfantasy/masterlist/internal/masterlist/validate"
)

// ProcessStepHandler 工序接口
type ProcessStepHandler struct {
	svc *service.ProcessStepService
}

func NewProcessStepHandler(svc *service.ProcessStepService) *ProcessStepHandler {
	return &ProcessStepHandler{svc: svc}
}

// List GET /api/v1/process-steps?process_id=xxx
func (h *ProcessStepHandler) List(c *gin.Context) {
	Success(c, h.svc.List(c.Request.Context(), c.Query("process_id")))
}

// Get GET /api/v1/process-steps/:id
func (h *ProcessStepHandler) Get(c *gin.Context) {
	step, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "process step not found")
		return
	}
	Success(c, step)
}

// Create POST /api/v1/process-steps
func (h *ProcessStepHandler) Create(c *gin.Context) {
	var row validate.ProcessStepRow
	if err := c.ShouldBindJSON(&row); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	step, rowErrs, err := h.svc.Create(c.Request.Context(), &row)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	if len(rowErrs) > 0 {
		ValidationFailed(c, rowErrs)
		return
	}
	Created(c, step)
}

// Update PUT /api/v1/process-steps/:id
func (h *ProcessStepHandler) Update(c *gin.Context) {
	var upd service.ProcessStepUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	step, rowErrs, err := h.svc.Update(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		respondServiceError(c, err, "process step not found")
		return
	}
	if len(rowErrs) > 0 {
		ValidationFailed(c, rowErrs)
		return
	}
	Success(c, step)
}

// Delete DELETE /api/v1/process-steps/:id
func (h *ProcessStepHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "process step not found")
		return
	}
	Success(c, gin.H{"message": "process step deleted"})
}
