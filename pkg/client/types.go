package client

import "time"

// Item 主数据物料
type Item struct {
	ID               string    `json:"id"`
	InternalItemName string    `json:"internal_item_name"`
	TenantID         int       `json:"tenant_id"`
	ItemDescription  string    `json:"item_description,omitempty"`
	CustomerItemName string    `json:"customer_item_name,omitempty"`
	Type             string    `json:"type"`
	UoM              string    `json:"uom"`
	MinBuffer        *float64  `json:"min_buffer,omitempty"`
	MaxBuffer        *float64  `json:"max_buffer,omitempty"`
	ScrapType        string    `json:"scrap_type,omitempty"`
	IsJobWork        bool      `json:"is_job_work"`
	IsDeleted        bool      `json:"is_deleted"`
	CreatedBy        string    `json:"created_by"`
	LastUpdatedBy    string    `json:"last_updated_by"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ItemInput 创建物料的请求体
type ItemInput struct {
	InternalItemName string   `json:"internal_item_name"`
	Type             string   `json:"type"`
	UoM              string   `json:"uom"`
	MinBuffer        *float64 `json:"min_buffer,omitempty"`
	MaxBuffer        *float64 `json:"max_buffer,omitempty"`
	ScrapType        string   `json:"scrap_type,omitempty"`
	ItemDescription  string   `json:"item_description,omitempty"`
	CustomerItemName string   `json:"customer_item_name,omitempty"`
	IsJobWork        bool     `json:"is_job_work,omitempty"`
}

// ItemPatch 部分更新物料，nil字段保持不变
type ItemPatch struct {
	InternalItemName *string  `json:"internal_item_name,omitempty"`
	Type             *string  `json:"type,omitempty"`
	UoM              *string  `json:"uom,omitempty"`
	MinBuffer        *float64 `json:"min_buffer,omitempty"`
	MaxBuffer        *float64 `json:"max_buffer,omitempty"`
	ScrapType        *string  `json:"scrap_type,omitempty"`
	ItemDescription  *string  `json:"item_description,omitempty"`
	CustomerItemName *string  `json:"customer_item_name,omitempty"`
	IsJobWork        *bool    `json:"is_job_work,omitempty"`
}

// BOMEntry BOM条目
type BOMEntry struct {
	ID              string    `json:"id"`
	ItemID          string    `json:"item_id"`
	ComponentID     string    `json:"component_id"`
	Quantity        float64   `json:"quantity"`
	UoM             string    `json:"uom,omitempty"`
	ScrapPercentage *float64  `json:"scrap_percentage,omitempty"`
	IsActive        bool      `json:"is_active"`
	TenantID        int       `json:"tenant_id"`
	CreatedBy       string    `json:"created_by"`
	LastUpdatedBy   string    `json:"last_updated_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BOMInput 创建BOM条目的请求体
type BOMInput struct {
	ItemID          string   `json:"item_id"`
	ComponentID     string   `json:"component_id"`
	Quantity        float64  `json:"quantity"`
	UoM             string   `json:"uom,omitempty"`
	ScrapPercentage *float64 `json:"scrap_percentage,omitempty"`
	IsActive        *bool    `json:"is_active,omitempty"`
}

// BOMPatch 部分更新BOM条目，组合键不可变
type BOMPatch struct {
	Quantity        *float64 `json:"quantity,omitempty"`
	UoM             *string  `json:"uom,omitempty"`
	ScrapPercentage *float64 `json:"scrap_percentage,omitempty"`
	IsActive        *bool    `json:"is_active,omitempty"`
}

// Process 工艺
type Process struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Description   string    `json:"description,omitempty"`
	WorkCenterID  string    `json:"work_center_id"`
	StandardTime  float64   `json:"standard_time"`
	Status        string    `json:"status"`
	TenantID      int       `json:"tenant_id"`
	CreatedBy     string    `json:"created_by"`
	LastUpdatedBy string    `json:"last_updated_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProcessInput 创建工艺的请求体
type ProcessInput struct {
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Description  string  `json:"description,omitempty"`
	WorkCenterID string  `json:"work_center_id"`
	StandardTime float64 `json:"standard_time,omitempty"`
	Status       string  `json:"status,omitempty"`
}

// ProcessPatch 部分更新工艺
type ProcessPatch struct {
	Name         *string  `json:"name,omitempty"`
	Type         *string  `json:"type,omitempty"`
	Description  *string  `json:"description,omitempty"`
	WorkCenterID *string  `json:"work_center_id,omitempty"`
	StandardTime *float64 `json:"standard_time,omitempty"`
	Status       *string  `json:"status,omitempty"`
}

// ProcessStep 工序
type ProcessStep struct {
	ID             string    `json:"id"`
	ProcessID      string    `json:"process_id"`
	Name           string    `json:"name"`
	StepNumber     int       `json:"step_number"`
	Type           string    `json:"type"`
	Description    string    `json:"description,omitempty"`
	StandardTime   float64   `json:"standard_time"`
	Status         string    `json:"status"`
	IsMandatory    bool      `json:"is_mandatory"`
	PredecessorIDs []string  `json:"predecessor_ids,omitempty"`
	TenantID       int       `json:"tenant_id"`
	CreatedBy      string    `json:"created_by"`
	LastUpdatedBy  string    `json:"last_updated_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProcessStepInput 创建工序的请求体
type ProcessStepInput struct {
	ProcessID      string   `json:"process_id"`
	Name           string   `json:"name"`
	StepNumber     int      `json:"step_number"`
	Type           string   `json:"type"`
	Description    string   `json:"description,omitempty"`
	StandardTime   float64  `json:"standard_time,omitempty"`
	Status         string   `json:"status,omitempty"`
	IsMandatory    *bool    `json:"is_mandatory,omitempty"`
	PredecessorIDs []string `json:"predecessor_ids,omitempty"`
}

// ProcessStepPatch 部分更新工序
type ProcessStepPatch struct {
	Name           *string   `json:"name,omitempty"`
	StepNumber     *int      `json:"step_number,omitempty"`
	Type           *string   `json:"type,omitempty"`
	Description    *string   `json:"description,omitempty"`
	StandardTime   *float64  `json:"standard_time,omitempty"`
	Status         *string   `json:"status,omitempty"`
	IsMandatory    *bool     `json:"is_mandatory,omitempty"`
	PredecessorIDs *[]string `json:"predecessor_ids,omitempty"`
}

// WorkCenter 工作中心
type WorkCenter struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Description   string    `json:"description,omitempty"`
	Status        string    `json:"status"`
	IsDeleted     bool      `json:"is_deleted"`
	TenantID      int       `json:"tenant_id"`
	CreatedBy     string    `json:"created_by"`
	LastUpdatedBy string    `json:"last_updated_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// WorkCenterInput 创建工作中心的请求体
type WorkCenterInput struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// RowError 导入接口返回的行级错误
type RowError struct {
	Row        int    `json:"row"`
	Field      string `json:"field,omitempty"`
	Value      string `json:"value,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ItemImportResult 物料导入结果
type ItemImportResult struct {
	Data   []Item     `json:"data,omitempty"`
	Errors []RowError `json:"errors,omitempty"`
}

// BOMImportResult BOM导入结果
type BOMImportResult struct {
	Data   []BOMEntry `json:"data,omitempty"`
	Errors []RowError `json:"errors,omitempty"`
}
