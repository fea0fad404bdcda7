package entity

import (
	"time"
)

// ItemType 物料类型
const (
	ItemTypeSell      = "sell"
	ItemTypePurchase  = "purchase"
	ItemTypeComponent = "component"
)

// UoM 计量单位
const (
	UoMKgs = "kgs"
	UoMNos = "nos"
)

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

// RequiresBuffer 该类型是否要求安全库存水位
func (i *Item) RequiresBuffer() bool {
	return i.Type == ItemTypeSell || i.Type == ItemTypePurchase
}
