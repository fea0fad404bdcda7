package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bitfantasy/masterlist/internal/masterlist/testutil"
)

func jsonUnmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func seedItem(t *testing.T, env *testutil.TestEnv, name, typ, uom string) string {
	t.Helper()
	body := map[string]interface{}{
		"internal_item_name": name, "type": typ, "uom": uom,
	}
	if typ == "sell" {
		body["scrap_type"] = "offcut"
		body["min_buffer"] = 1
	}
	if typ == "purchase" {
		body["min_buffer"] = 1
	}
	w := testutil.DoRequest(env.Router, "POST", "/api/v1/items", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("Failed to seed item %s: %s", name, w.Body.String())
	}
	return testutil.ParseResponse(w)["id"].(string)
}

func TestBOMCRUD(t *testing.T) {
	env := testutil.Setup(t)
	sellID := seedItem(t, env, "Widget", "sell", "nos")
	compID := seedItem(t, env, "Bolt", "component", "nos")

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/bom", map[string]interface{}{
		"item_id": sellID, "component_id": compID, "quantity": 4,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	id := resp["id"].(string)
	if resp["is_active"] != true {
		t.Errorf("Expected is_active default true, got %v", resp["is_active"])
	}

	// 重复组合被拒
	w = testutil.DoRequest(env.Router, "POST", "/api/v1/bom", map[string]interface{}{
		"item_id": sellID, "component_id": compID, "quantity": 2,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for duplicate pair, got %d", w.Code)
	}

	// 更新数量
	w = testutil.DoRequest(env.Router, "PUT", "/api/v1/bom/"+id, map[string]interface{}{
		"quantity": 6,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := testutil.ParseResponse(w)["quantity"]; got != float64(6) {
		t.Errorf("Expected quantity 6, got %v", got)
	}

	// 硬删除后可重建同组合
	w = testutil.DoRequest(env.Router, "DELETE", "/api/v1/bom/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	w = testutil.DoRequest(env.Router, "POST", "/api/v1/bom", map[string]interface{}{
		"item_id": sellID, "component_id": compID, "quantity": 4,
	})
	if w.Code != http.StatusCreated {
		t.Errorf("Expected pair reusable after delete, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBOMSelfReference(t *testing.T) {
	env := testutil.Setup(t)
	compID := seedItem(t, env, "Bolt", "component", "nos")

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/bom", map[string]interface{}{
		"item_id": compID, "component_id": compID, "quantity": 1,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestBOMTypeRules(t *testing.T) {
	env := testutil.Setup(t)
	purID := seedItem(t, env, "Raw Steel", "purchase", "kgs")
	sellID := seedItem(t, env, "Widget", "sell", "nos")

	// purchase不能作为成品侧
	w := testutil.DoRequest(env.Router, "POST", "/api/v1/bom", map[string]interface{}{
		"item_id": purID, "component_id": sellID, "quantity": 1,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := jsonUnmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to parse errors: %v", err)
	}
	if len(body.Errors) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(body.Errors))
	}
}
