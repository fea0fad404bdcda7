package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bitfantasy/masterlist/internal/masterlist/service"
	"github.com/bitfantasy/masterlist/internal/masterlist/validate"
)

// BOMHandler BOM接口
type BOMHandler struct {
	svc *service.BOMService
}

func NewBOMHandler(svc *service.BOMService) *BOMHandler {
	return &BOMHandler{svc: svc}
}

// List GET /api/v1/bom
func (h *BOMHandler) List(c *gin.Context) {
	Success(c, h.svc.List(c.Request.Context()))
}

// Get GET /api/v1/bom/:id
func (h *BOMHandler) Get(c *gin.Context) {
	entry, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "bom entry not found")
		return
	}
	Success(c, entry)
}

// Create POST /api/v1/bom
func (h *BOMHandler) Create(c *gin.Context) {
	var row validate.BOMRow
	if err := c.ShouldBindJSON(&row); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	entry, rowErrs, err := h.svc.Create(c.Request.Context(), &row)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	if len(rowErrs) > 0 {
		ValidationFailed(c, rowErrs)
		return
	}
	Created(c, entry)
}

// Update PUT /api/v1/bom/:id
func (h *BOMHandler) Update(c *gin.Context) {
	var upd service.BOMUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	entry, rowErrs, err := h.svc.Update(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		respondServiceError(c, err, "bom entry not found")
		return
	}
	if len(rowErrs) > 0 {
		ValidationFailed(c, rowErrs)
		return
	}
	Success(c, entry)
}

// Delete DELETE /api/v1/bom/:id
func (h *BOMHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "bom entry not found")
		return
	}
	Success(c, gin.H{"message": "bom entry deleted"})
}
