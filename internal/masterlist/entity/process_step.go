package entity

import (
	"time"
)

// StepType 工序类型
const (
	StepTypeOperation  = "operation"
	StepTypeInspection = "inspection"
	StepTypeTransport  = "transport"
	StepTypeDelay      = "delay"
	StepTypeStorage    = "storage"
)

// ProcessStep 工序：隶属于某个工艺，按step_number排序
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
