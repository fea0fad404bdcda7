package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// 错误报告列
var reportHeaders = []string{"Row", "Field", "Value", "Error", "Suggestion"}

// ErrorReportCSV 生成可下载的错误报告CSV
func ErrorReportCSV(errs []RowError) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(reportHeaders); err != nil {
		return nil, fmt.Errorf("write report header: %w", err)
	}
	for _, e := range errs {
		rec := []string{strconv.Itoa(e.Row), e.Field, e.Value, e.Message, e.Suggestion}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("write report row: %w", err)
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// ErrorReportXLSX 生成可下载的错误报告xlsx
func ErrorReportXLSX(errs []RowError) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Errors"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#FCE4EC"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("new style: %w", err)
	}

	for i, h := range reportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for rowIdx, e := range errs {
		row := rowIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), e.Row)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), e.Field)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), e.Value)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), e.Message)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), e.Suggestion)
	}

	colWidths := []float64{6, 18, 18, 40, 40}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}
	return f, nil
}
