package entity

import (
	"time"
)

// BOMEntry BOM条目：item(成品侧)对component(用料侧)的用量关系
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

// PairKey (item_id, component_id)组合键，用于重复检测
func (b *BOMEntry) PairKey() string {
	return b.ItemID + "\x00" + b.ComponentID
}
