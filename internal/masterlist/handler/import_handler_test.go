package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/bitfantasy/masterlist/internal/masterlist/testutil"
)

func TestImportItemsUpload(t *testing.T) {
	env := testutil.Setup(t)

	csvData := "internal_item_name,type,uom,min_buffer\n" +
		"Steel Rod,purchase,kgs,5\n"
	w := testutil.DoUpload(env.Router, "/api/v1/items/import", "items.csv", []byte(csvData))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	data, ok := resp["data"].([]interface{})
	if !ok || len(data) != 1 {
		t.Fatalf("Expected 1 imported item, got %v", resp)
	}

	// 落库可见
	w = testutil.DoRequest(env.Router, "GET", "/api/v1/items", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Steel Rod") {
		t.Errorf("Expected imported item in list: %s", w.Body.String())
	}
}

func TestImportItemsRowErrors(t *testing.T) {
	env := testutil.Setup(t)

	csvData := "internal_item_name,type,uom\n" +
		"Bad Widget,consumable,kgs\n"
	w := testutil.DoUpload(env.Router, "/api/v1/items/import", "items.csv", []byte(csvData))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	if _, ok := resp["errors"].([]interface{}); !ok {
		t.Fatalf("Expected errors list, got %v", resp)
	}
}

func TestImportEmptyFile(t *testing.T) {
	env := testutil.Setup(t)

	w := testutil.DoUpload(env.Router, "/api/v1/items/import", "items.csv", []byte("  "))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if msg := testutil.ParseResponse(w)["message"]; msg != "file is empty" {
		t.Errorf("Unexpected message: %v", msg)
	}
}

func TestImportMissingFile(t *testing.T) {
	env := testutil.Setup(t)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/items/import", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
}

func TestItemTemplateDownload(t *testing.T) {
	env := testutil.Setup(t)

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/items/template", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "items_template.csv") {
		t.Errorf("Unexpected Content-Disposition: %s", cd)
	}
	if !strings.HasPrefix(w.Body.String(), "internal_item_name,") {
		t.Errorf("Unexpected template body: %s", w.Body.String())
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/v1/items/template?format=xlsx", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 for xlsx, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Unexpected Content-Type: %s", ct)
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/v1/items/template?format=pdf", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unsupported format, got %d", w.Code)
	}
}

func TestErrorReportExport(t *testing.T) {
	env := testutil.Setup(t)

	body := map[string]interface{}{
		"errors": []map[string]interface{}{
			{"row": 2, "field": "type", "value": "consumable", "message": "invalid value for type"},
		},
	}
	w := testutil.DoRequest(env.Router, "POST", "/api/v1/import/errors/export", body)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "invalid value for type") {
		t.Errorf("Expected error row in report: %s", w.Body.String())
	}

	w = testutil.DoRequest(env.Router, "POST", "/api/v1/import/errors/export", map[string]interface{}{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for empty errors, got %d", w.Code)
	}
}

func TestImportBOMUpload(t *testing.T) {
	env := testutil.Setup(t)

	// 先创建参与BOM的物料
	w := testutil.DoRequest(env.Router, "POST", "/api/v1/items", map[string]interface{}{
		"internal_item_name": "Widget", "type": "sell", "uom": "nos",
		"min_buffer": 1, "scrap_type": "offcut",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Failed to create sell item: %s", w.Body.String())
	}
	sellID := testutil.ParseResponse(w)["id"].(string)

	w = testutil.DoRequest(env.Router, "POST", "/api/v1/items", map[string]interface{}{
		"internal_item_name": "Bolt", "type": "component", "uom": "nos",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Failed to create component item: %s", w.Body.String())
	}
	compID := testutil.ParseResponse(w)["id"].(string)

	csvData := "item_id,component_id,quantity\n" + sellID + "," + compID + ",4\n"
	w = testutil.DoUpload(env.Router, "/api/v1/bom/import", "bom.csv", []byte(csvData))
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
