package entity

import (
	"time"
)

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
