// Package handler HTTP接口层
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitfantasy/masterlist/internal/masterlist/repository"
	"github.com/bitfantasy/masterlist/internal/masterlist/service"
	"github.com/bitfantasy/masterlist/internal/masterlist/tabular"
)

// Handlers 处理器集合
type Handlers struct {
	Item        *ItemHandler
	BOM         *BOMHandler
	Process     *ProcessHandler
	ProcessStep *ProcessStepHandler
	WorkCenter  *WorkCenterHandler
	Import      *ImportHandler
}

// NewHandlers 创建处理器集合
func NewHandlers(svcs *service.Services) *Handlers {
	return &Handlers{
		Item:        NewItemHandler(svcs.Item),
		BOM:         NewBOMHandler(svcs.BOM),
		Process:     NewProcessHandler(svcs.Process),
		ProcessStep: NewProcessStepHandler(svcs.ProcessStep),
		WorkCenter:  NewWorkCenterHandler(svcs.WorkCenter),
		Import:      NewImportHandler(svcs.Import),
	}
}

// RegisterRoutes 注册业务路由
func RegisterRoutes(r *gin.Engine, h *Handlers) {
	v1 := r.Group("/api/v1")
	{
		items := v1.Group("/items")
		{
			items.GET("", h.Item.List)
			items.POST("", h.Item.Create)
			items.GET("/template", h.Import.ItemTemplate)
			items.POST("/import", h.Import.ImportItems)
			items.GET("/:id", h.Item.Get)
			items.PUT("/:id", h.Item.Update)
			items.DELETE("/:id", h.Item.Delete)
		}

		bom := v1.Group("/bom")
		{
			bom.GET("", h.BOM.List)
			bom.POST("", h.BOM.Create)
			bom.GET("/template", h.Import.BOMTemplate)
			bom.POST("/import", h.Import.ImportBOM)
			bom.GET("/:id", h.BOM.Get)
			bom.PUT("/:id", h.BOM.Update)
			bom.DELETE("/:id", h.BOM.Delete)
		}

		processes := v1.Group("/processes")
		{
			processes.GET("", h.Process.List)
			processes.POST("", h.Process.Create)
			processes.GET("/:id", h.Process.Get)
			processes.PUT("/:id", h.Process.Update)
			processes.DELETE("/:id", h.Process.Delete)
		}

		steps := v1.Group("/process-steps")
		{
			steps.GET("", h.ProcessStep.List)
			steps.POST("", h.ProcessStep.Create)
			steps.GET("/:id", h.ProcessStep.Get)
			steps.PUT("/:id", h.ProcessStep.Update)
			steps.DELETE("/:id", h.ProcessStep.Delete)
		}

		centers := v1.Group("/work-centers")
		{
			centers.GET("", h.WorkCenter.List)
			centers.POST("", h.WorkCenter.Create)
			centers.GET("/:id", h.WorkCenter.Get)
			centers.DELETE("/:id", h.WorkCenter.Delete)
		}

		v1.POST("/import/errors/export", h.Import.ExportErrorReport)
	}
}

// Success 200响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// BadRequest 400响应
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

// NotFound 404响应
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

// InternalError 500响应
func InternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{"message": message})
}

// ValidationFailed 400响应，携带行级错误清单
func ValidationFailed(c *gin.Context, errs []tabular.RowError) {
	c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
}

// respondServiceError 区分404与500
func respondServiceError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, repository.ErrNotFound) {
		NotFound(c, notFoundMsg)
		return
	}
	InternalError(c, err.Error())
}
