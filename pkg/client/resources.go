package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// ListItems GET /api/v1/items
func (c *Client) ListItems(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem GET /api/v1/items/:id
func (c *Client) GetItem(ctx context.Context, id string) (*Item, error) {
	var item Item
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/items/"+id, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem POST /api/v1/items
func (c *Client) CreateItem(ctx context.Context, in *ItemInput) (*Item, error) {
	var item Item
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/items", in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem PUT /api/v1/items/:id
func (c *Client) UpdateItem(ctx context.Context, id string, patch *ItemPatch) (*Item, error) {
	var item Item
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/items/"+id, patch, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem DELETE /api/v1/items/:id
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/v1/items/"+id, nil, nil)
}

// ListBOM GET /api/v1/bom
func (c *Client) ListBOM(ctx context.Context) ([]BOMEntry, error) {
	var entries []BOMEntry
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/bom", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetBOMEntry GET /api/v1/bom/:id
func (c *Client) GetBOMEntry(ctx context.Context, id string) (*BOMEntry, error) {
	var entry BOMEntry
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/bom/"+id, nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateBOMEntry POST /api/v1/bom
func (c *Client) CreateBOMEntry(ctx context.Context, in *BOMInput) (*BOMEntry, error) {
	var entry BOMEntry
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/bom", in, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// UpdateBOMEntry PUT /api/v1/bom/:id
func (c *Client) UpdateBOMEntry(ctx context.Context, id string, patch *BOMPatch) (*BOMEntry, error) {
	var entry BOMEntry
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/bom/"+id, patch, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// DeleteBOMEntry DELETE /api/v1/bom/:id
func (c *Client) DeleteBOMEntry(ctx context.Context, id string) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/v1/bom/"+id, nil, nil)
}

// ListProcesses GET /api/v1/processes
func (c *Client) ListProcesses(ctx context.Context) ([]Process, error) {
	var procs []Process
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/processes", nil, &procs); err != nil {
		return nil, err
	}
	return procs, nil
}

// GetProcess GET /api/v1/processes/:id
func (c *Client) GetProcess(ctx context.Context, id string) (*Process, error) {
	var p Process
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/processes/"+id, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProcess POST /api/v1/processes
func (c *Client) CreateProcess(ctx context.Context, in *ProcessInput) (*Process, error) {
	var p Process
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/processes", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProcess PUT /api/v1/processes/:id
func (c *Client) UpdateProcess(ctx context.Context, id string, patch *ProcessPatch) (*Process, error) {
	var p Process
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/processes/"+id, patch, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProcess DELETE /api/v1/processes/:id
func (c *Client) DeleteProcess(ctx context.Context, id string) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/v1/processes/"+id, nil, nil)
}

// ListProcessSteps GET /api/v1/process-steps?process_id=xxx
// processID为空时返回全部工序。
func (c *Client) ListProcessSteps(ctx context.Context, processID string) ([]ProcessStep, error) {
	path := "/api/v1/process-steps"
	if processID != "" {
		path += "?process_id=" + processID
	}
	var steps []ProcessStep
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &steps); err != nil {
		return nil, err
	}
	return steps, nil
}

// GetProcessStep GET /api/v1/process-steps/:id
func (c *Client) GetProcessStep(ctx context.Context, id string) (*ProcessStep, error) {
	var step ProcessStep
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/process-steps/"+id, nil, &step); err != nil {
		return nil, err
	}
	return &step, nil
}

// CreateProcessStep POST /api/v1/process-steps
func (c *Client) CreateProcessStep(ctx context.Context, in *ProcessStepInput) (*ProcessStep, error) {
	var step ProcessStep
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/process-steps", in, &step); err != nil {
		return nil, err
	}
	return &step, nil
}

// UpdateProcessStep PUT /api/v1/process-steps/:id
func (c *Client) UpdateProcessStep(ctx context.Context, id string, patch *ProcessStepPatch) (*ProcessStep, error) {
	var step ProcessStep
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/process-steps/"+id, patch, &step); err != nil {
		return nil, err
	}
	return &step, nil
}

// DeleteProcessStep DELETE /api/v1/process-steps/:id
func (c *Client) DeleteProcessStep(ctx context.Context, id string) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/v1/process-steps/"+id, nil, nil)
}

// ListWorkCenters GET /api/v1/work-centers
func (c *Client) ListWorkCenters(ctx context.Context) ([]WorkCenter, error) {
	var centers []WorkCenter
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/work-centers", nil, &centers); err != nil {
		return nil, err
	}
	return centers, nil
}

// CreateWorkCenter POST /api/v1/work-centers
func (c *Client) CreateWorkCenter(ctx context.Context, in *WorkCenterInput) (*WorkCenter, error) {
	var wc WorkCenter
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/work-centers", in, &wc); err != nil {
		return nil, err
	}
	return &wc, nil
}

// DeleteWorkCenter DELETE /api/v1/work-centers/:id
func (c *Client) DeleteWorkCenter(ctx context.Context, id string) error {
	return c.doRequest(ctx, http.MethodDelete, "/api/v1/work-centers/"+id, nil, nil)
}

// ImportItems POST /api/v1/items/import
// 校验失败时返回的结果带Errors清单而不是error。
func (c *Client) ImportItems(ctx context.Context, filename string, content io.Reader) (*ItemImportResult, error) {
	var result ItemImportResult
	if err := c.doImport(ctx, "/api/v1/items/import", filename, content, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ImportBOM POST /api/v1/bom/import
func (c *Client) ImportBOM(ctx context.Context, filename string, content io.Reader) (*BOMImportResult, error) {
	var result BOMImportResult
	if err := c.doImport(ctx, "/api/v1/bom/import", filename, content, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// doImport 上传导入文件。400响应若携带errors清单则解进result，
// 其余非2xx按APIError处理。
func (c *Client) doImport(ctx context.Context, path, filename string, content io.Reader, result interface{}) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(fw, content); err != nil {
		return fmt.Errorf("copy file content: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusBadRequest {
		var probe struct {
			Errors []RowError `json:"errors"`
		}
		if json.Unmarshal(data, &probe) == nil && len(probe.Errors) > 0 {
			return json.Unmarshal(data, result)
		}
	}
	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var body struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &body) == nil {
			apiErr.Message = body.Message
		}
		return apiErr
	}
	return json.Unmarshal(data, result)
}
