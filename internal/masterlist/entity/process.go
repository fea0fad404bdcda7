package entity

import (
	"time"
)

// ProcessType 工艺类型
const (
	ProcessTypeManufacturing = "manufacturing"
	ProcessTypeAssembly      = "assembly"
	ProcessTypeQualityCheck  = "quality_check"
)

// Status 通用启用状态
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

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
