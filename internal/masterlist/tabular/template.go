package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Template 导入模板：表头加一条示例数据行
type Template struct {
	Name    string
	Headers []string
	Example []string
}

// ItemTemplate 物料导入模板
var ItemTemplate = Template{
	Name: "items",
	Headers: []string{
		"internal_item_name", "type", "uom",
		"min_buffer", "max_buffer", "scrap_type",
		"item_description", "customer_item_name", "is_job_work",
	},
	Example: []string{
		"Steel Rod", "purchase", "kgs",
		"5", "10", "",
		"Raw steel rod stock", "", "FALSE",
	},
}

// BOMTemplate BOM导入模板
var BOMTemplate = Template{
	Name: "bom",
	Headers: []string{
		"item_id", "component_id", "quantity",
		"uom", "scrap_percentage", "is_active",
	},
	Example: []string{
		"1", "2", "10",
		"nos", "2.5", "TRUE",
	},
}

// CSV 生成CSV模板内容
func (t Template) CSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Headers); err != nil {
		return nil, fmt.Errorf("write template header: %w", err)
	}
	if err := w.Write(t.Example); err != nil {
		return nil, fmt.Errorf("write template example: %w", err)
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// XLSX 生成xlsx模板，表头加粗
func (t Template) XLSX() (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Template"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("new style: %w", err)
	}

	for i, h := range t.Headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
		f.SetColWidth(sheet, col, col, 18)
	}
	for i, v := range t.Example {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(sheet, col+"2", v)
	}
	return f, nil
}
