package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bitfantasy/masterlist/internal/masterlist/service"
	"github.com/bitfantasy/masterlist/internal/masterlist/validate"
)

// ItemHandler 物料接口
type ItemHandler struct {
	svc *service.ItemService
}

func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// List GET /api/v1/items
func (h *ItemHandler) List(c *gin.Context) {
	Success(c, h.svc.List(c.Request.Context()))
}

// Get GET /api/v1/items/:id
func (h *ItemHandler) Get(c *gin.Context) {
	item, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "item not found")
		return
	}
	Success(c, item)
}

// Create POST /api/v1/items
func (h *ItemHandler) Create(c *gin.Context) {
	var row validate.ItemRow
	if err := c.ShouldBindJSON(&row); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	item, rowErrs, err := h.svc.Create(c.Request.Context(), &row)
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	if len(rowErrs) > 0 {
		ValidationFailed(c, rowErrs)
		return
	}
	Created(c, item)
}

// Update PUT /api/v1/items/:id
func (h *ItemHandler) Update(c *gin.Context) {
	var upd service.ItemUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	item, rowErrs, err := h.svc.Update(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		respondServiceError(c, err, "item not found")
		return
	}
	if len(rowErrs) > 0 {
		ValidationFailed(c, rowErrs)
		return
	}
	Success(c, item)
}

// Delete DELETE /api/v1/items/:id
func (h *ItemHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "item not found")
		return
	}
	Success(c, gin.H{"message": "item deleted"})
}
