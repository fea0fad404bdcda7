package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bitfantasy/masterlist/internal/masterlist/service"
	"github.com/bitfantasy/masterlist/internal/masterlist/validate"
)

// WorkCenterHandler 工作中心接口
type WorkCenterHandler struct {
	svc *service.WorkCenterService
}

func NewWorkCenterHandler(svc *service.WorkCenterService) *WorkCenterHandler {
	return &WorkCenterHandler{svc: svc}
}

// List GET /api/v1/work-centers
func (h *WorkCenterHandler) List(c *gin.Context) {
	Success(c, h.svc.List(c.Request.Context()))
}

// Get GET /api/v1/work-centers/:id
func (h *WorkCenterHandler) Get(c *gin.Context) {
	wc, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "work center not found")
		return
	}
	Success(c, wc)
}

// Create POST /api/v1/work-centers
func (h *WorkCenterHandler) Create(c *gin.Context) {
	var row validate.WorkCenterRow
	if err := c.ShouldBindJSON(&row); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	wc, rowErrs, err := h.svc.Create(c.Request.Context(), &row)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	if len(rowErrs) > 0 {
		ValidationFailed(c, rowErrs)
		return
	}
	Created(c, wc)
}

// Delete DELETE /api/v1/work-centers/:id
func (h *WorkCenterHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "work center not found")
		return
	}
	Success(c, gin.H{"message": "work center deleted"})
}
