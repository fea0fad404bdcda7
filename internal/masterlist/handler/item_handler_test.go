package handler_test

import (
	"net/http"
	"testing"

	"github.com/bitfantasy/masterlist/internal/masterlist/testutil"
)

func TestItemCRUD(t *testing.T) {
	env := testutil.Setup(t)

	// Create
	w := testutil.DoRequest(env.Router, "POST", "/api/v1/items", map[string]interface{}{
		"internal_item_name": "Steel Rod",
		"type":               "purchase",
		"uom":                "kgs",
		"min_buffer":         5,
		"max_buffer":         10,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	id, _ := resp["id"].(string)
	if id == "" {
		t.Fatalf("Expected id in response: %v", resp)
	}

	// Get
	w = testutil.DoRequest(env.Router, "GET", "/api/v1/items/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if got := testutil.ParseResponse(w)["internal_item_name"]; got != "Steel Rod" {
		t.Errorf("Expected Steel Rod, got %v", got)
	}

	// Update
	w = testutil.DoRequest(env.Router, "PUT", "/api/v1/items/"+id, map[string]interface{}{
		"max_buffer": 20,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := testutil.ParseResponse(w)["max_buffer"]; got != float64(20) {
		t.Errorf("Expected max_buffer 20, got %v", got)
	}

	// Delete
	w = testutil.DoRequest(env.Router, "DELETE", "/api/v1/items/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	// Gone
	w = testutil.DoRequest(env.Router, "GET", "/api/v1/items/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", w.Code)
	}
}

func TestItemCreateValidation(t *testing.T) {
	env := testutil.Setup(t)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/items", map[string]interface{}{
		"internal_item_name": "Bad Widget",
		"type":               "consumable",
		"uom":                "kgs",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	errs, ok := resp["errors"].([]interface{})
	if !ok || len(errs) != 1 {
		t.Fatalf("Expected 1 validation error, got %v", resp)
	}
	first := errs[0].(map[string]interface{})
	if first["field"] != "type" {
		t.Errorf("Expected error on field type, got %v", first)
	}
}

func TestItemCreateBufferOrder(t *testing.T) {
	env := testutil.Setup(t)

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/items", map[string]interface{}{
		"internal_item_name": "Steel Rod",
		"type":               "purchase",
		"uom":                "kgs",
		"min_buffer":         10,
		"max_buffer":         5,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestItemNotFound(t *testing.T) {
	env := testutil.Setup(t)

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/items/no-such-id", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", w.Code)
	}
	if msg := testutil.ParseResponse(w)["message"]; msg != "item not found" {
		t.Errorf("Unexpected message: %v", msg)
	}
}

func TestItemDuplicateNameRejected(t *testing.T) {
	env := testutil.Setup(t)

	body := map[string]interface{}{
		"internal_item_name": "Steel Rod",
		"type":               "component",
		"uom":                "kgs",
	}
	if w := testutil.DoRequest(env.Router, "POST", "/api/v1/items", body); w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	w := testutil.DoRequest(env.Router, "POST", "/api/v1/items", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for duplicate name, got %d", w.Code)
	}
}
