package tabular

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	csvData := "Internal_Item_Name, Type ,UOM\nSteel Rod,purchase,kgs\n\nWidget,sell,nos\n"
	rows, err := ParseCSV(strings.NewReader(csvData), 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows (blank line skipped), got %d", len(rows))
	}
	if rows[0].Get("internal_item_name") != "Steel Rod" {
		t.Errorf("Header not normalized: %v", rows[0])
	}
	if rows[1].Get("type") != "sell" {
		t.Errorf("Expected sell, got %s", rows[1].Get("type"))
	}
}

func TestParseCSVShortRecord(t *testing.T) {
	csvData := "a,b,c\n1,2\n"
	rows, err := ParseCSV(strings.NewReader(csvData), 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rows[0].Get("c") != "" {
		t.Errorf("Expected missing field to be empty, got %q", rows[0].Get("c"))
	}
}

func TestParseEmptyFile(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""), 0)
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("Expected ErrEmptyFile, got %v", err)
	}

	_, err = ParseCSV(strings.NewReader("   \n  "), 0)
	if !errors.Is(err, ErrEmptyFile) {
		t.Errorf("Expected ErrEmptyFile for whitespace, got %v", err)
	}
}

func TestParseFileTooLarge(t *testing.T) {
	data := strings.Repeat("x", 100)
	_, err := ParseCSV(strings.NewReader(data), 50)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("Expected ErrFileTooLarge, got %v", err)
	}
}

func TestParseXLSXRoundTrip(t *testing.T) {
	f, err := ItemTemplate.XLSX()
	if err != nil {
		t.Fatalf("Failed to build template: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write xlsx: %v", err)
	}

	rows, err := ParseXLSX(bytes.NewReader(buf.Bytes()), 0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("Expected 1 example row, got %d", len(rows))
	}
	if rows[0].Get("internal_item_name") != "Steel Rod" {
		t.Errorf("Unexpected example row: %v", rows[0])
	}
}

func TestParseDispatchByExtension(t *testing.T) {
	csvData := "a,b\n1,2\n"
	rows, err := Parse("data.csv", strings.NewReader(csvData), 0)
	if err != nil || len(rows) != 1 {
		t.Fatalf("Expected 1 row from csv, got %d (%v)", len(rows), err)
	}

	_, err = Parse("data.xlsx", strings.NewReader(csvData), 0)
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("Expected ErrUnreadable for csv bytes with xlsx extension, got %v", err)
	}
}

func TestTemplateCSV(t *testing.T) {
	data, err := BOMTemplate.CSV()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header and example, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "item_id,component_id,quantity") {
		t.Errorf("Unexpected header: %s", lines[0])
	}
}

func TestErrorReportCSV(t *testing.T) {
	errs := []RowError{
		{Row: 2, Field: "type", Value: "consumable", Message: "invalid value for type", Suggestion: "Valid options are: sell, purchase, component"},
	}
	data, err := ErrorReportCSV(errs)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "Row,Field,Value,Error,Suggestion") {
		t.Errorf("Missing report header: %s", out)
	}
	if !strings.Contains(out, "invalid value for type") {
		t.Errorf("Missing error row: %s", out)
	}
}

func TestErrorReportXLSX(t *testing.T) {
	errs := []RowError{{Row: 3, Field: "quantity", Message: "quantity must be a number"}}
	f, err := ErrorReportXLSX(errs)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer f.Close()

	val, err := f.GetCellValue("Errors", "D2")
	if err != nil {
		t.Fatalf("Failed to read cell: %v", err)
	}
	if val != "quantity must be a number" {
		t.Errorf("Expected error message in D2, got %q", val)
	}
}
