package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/bitfantasy/masterlist/internal/masterlist/service"
	"github.com/bitfantasy/masterlist/internal/masterlist/tabular"
)

// ImportHandler 文件导入与模板下载接口
type ImportHandler struct {
	svc *service.ImportService
}

func NewImportHandler(svc *service.ImportService) *ImportHandler {
	return &ImportHandler{svc: svc}
}

// ImportItems POST /api/v1/items/import
func (h *ImportHandler) ImportItems(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	result, err := h.svc.ImportItems(c.Request.Context(), header.Filename, file)
	if err != nil {
		respondImportError(c, err)
		return
	}
	if len(result.Errors) > 0 {
		ValidationFailed(c, result.Errors)
		return
	}
	Success(c, result)
}

// ImportBOM POST /api/v1/bom/import
func (h *ImportHandler) ImportBOM(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	result, err := h.svc.ImportBOM(c.Request.Context(), header.Filename, file)
	if err != nil {
		respondImportError(c, err)
		return
	}
	if len(result.Errors) > 0 {
		ValidationFailed(c, result.Errors)
		return
	}
	Success(c, result)
}

// ItemTemplate GET /api/v1/items/template?format=csv|xlsx
func (h *ImportHandler) ItemTemplate(c *gin.Context) {
	serveTemplate(c, tabular.ItemTemplate)
}

// BOMTemplate GET /api/v1/bom/template?format=csv|xlsx
func (h *ImportHandler) BOMTemplate(c *gin.Context) {
	serveTemplate(c, tabular.BOMTemplate)
}

// ExportErrorReport POST /api/v1/import/errors/export?format=csv|xlsx
// 请求体是导入接口返回的错误清单，生成可下载的报告文件。
func (h *ImportHandler) ExportErrorReport(c *gin.Context) {
	var body struct {
		Errors []tabular.RowError `json:"errors"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if len(body.Errors) == 0 {
		BadRequest(c, "errors must not be empty")
		return
	}

	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		f, err := tabular.ErrorReportXLSX(body.Errors)
		if err != nil {
			InternalError(c, err.Error())
			return
		}
		serveXLSX(c, f, "import_errors.xlsx")
	case "csv":
		data, err := tabular.ErrorReportCSV(body.Errors)
		if err != nil {
			InternalError(c, err.Error())
			return
		}
		serveCSV(c, data, "import_errors.csv")
	default:
		BadRequest(c, "format must be csv or xlsx")
	}
}

func serveTemplate(c *gin.Context, t tabular.Template) {
	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		f, err := t.XLSX()
		if err != nil {
			InternalError(c, err.Error())
			return
		}
		serveXLSX(c, f, t.Name+"_template.xlsx")
	case "csv":
		data, err := t.CSV()
		if err != nil {
			InternalError(c, err.Error())
			return
		}
		serveCSV(c, data, t.Name+"_template.csv")
	default:
		BadRequest(c, "format must be csv or xlsx")
	}
}

func serveCSV(c *gin.Context, data []byte, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

func serveXLSX(c *gin.Context, f *excelize.File, filename string) {
	defer f.Close()
	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// respondImportError 结构性解析错误映射为400，其余按500处理
func respondImportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tabular.ErrEmptyFile),
		errors.Is(err, tabular.ErrFileTooLarge),
		errors.Is(err, tabular.ErrUnreadable):
		BadRequest(c, err.Error())
	default:
		InternalError(c, err.Error())
	}
}
