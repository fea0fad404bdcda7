package validate

import (
	"github.com/bitfantasy/masterlist/internal/masterlist/entity"
	"github.com/bitfantasy/masterlist/internal/masterlist/tabular"
)

// ItemRow 物料的类型化输入行。JSON创建和文件导入共用。
type ItemRow struct {
	InternalItemName string   `json:"internal_item_name" validate:"required,max=100"`
	Type             string   `json:"type" validate:"required,oneof=sell purchase component"`
	UoM              string   `json:"uom" validate:"required,oneof=kgs nos"`
	MinBuffer        *float64 `json:"min_buffer" validate:"omitempty,gte=0"`
	MaxBuffer        *float64 `json:"max_buffer" validate:"omitempty,gte=0"`
	ScrapType        string   `json:"scrap_type" validate:"omitempty,max=100"`
	ItemDescription  string   `json:"item_description"`
	CustomerItemName string   `json:"customer_item_name"`
	IsJobWork        bool     `json:"is_job_work"`
}

// ItemRowFromRecord 把原始行转换成类型化行。
// 数值/布尔文本转换失败作为模式错误上报，该行不再继续校验。
func ItemRowFromRecord(raw tabular.Row, n int) (*ItemRow, []tabular.RowError) {
	var errs []tabular.RowError
	row := &ItemRow{
		InternalItemName: raw.Get("internal_item_name"),
		Type:             raw.Get("type"),
		UoM:              raw.Get("uom"),
		ScrapType:        raw.Get("scrap_type"),
		ItemDescription:  raw.Get("item_description"),
		CustomerItemName: raw.Get("customer_item_name"),
	}

	if f, ok := parseOptionalNumber(raw.Get("min_buffer")); ok {
		row.MinBuffer = f
	} else {
		errs = append(errs, schemaError(n, "min_buffer", raw.Get("min_buffer"),
			"min_buffer must be a number", "Expected a numeric value"))
	}
	if f, ok := parseOptionalNumber(raw.Get("max_buffer")); ok {
		row.MaxBuffer = f
	} else {
		errs = append(errs, schemaError(n, "max_buffer", raw.Get("max_buffer"),
			"max_buffer must be a number", "Expected a numeric value"))
	}
	if b, ok := parseOptionalBool(raw.Get("is_job_work")); ok {
		if b != nil {
			row.IsJobWork = *b
		}
	} else {
		errs = append(errs, schemaError(n, "is_job_work", raw.Get("is_job_work"),
			"is_job_work must be TRUE or FALSE", "Use TRUE or FALSE"))
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return row, nil
}

// CheckItem 物料业务规则。existing为当前未删除物料快照，
// seenNames为同一文件中已接受行的名称集合(先到先得)。
func CheckItem(row *ItemRow, n int, existing []entity.Item, seenNames map[string]struct{}) []tabular.RowError {
	var errs []tabular.RowError

	name := NormName(row.InternalItemName)
	dup := false
	for i := range existing {
		if NormName(existing[i].InternalItemName) == name {
			dup = true
			break
		}
	}
	if !dup {
		_, dup = seenNames[name]
	}
	if dup {
		errs = append(errs, tabular.RowError{
			Row: n, Field: "internal_item_name", Value: row.InternalItemName,
			Message:    "an item with this name already exists",
			Suggestion: "Use a unique internal_item_name",
		})
	}

	if row.Type == entity.ItemTypeSell && row.ScrapType == "" {
		errs = append(errs, tabular.RowError{
			Row: n, Field: "scrap_type",
			Message:    "Scrap type is required for Sell items",
			Suggestion: "Provide a scrap_type for sell items",
		})
	}

	if (row.Type == entity.ItemTypeSell || row.Type == entity.ItemTypePurchase) && row.MinBuffer == nil {
		errs = append(errs, tabular.RowError{
			Row: n, Field: "min_buffer",
			Message:    "Min buffer is required for Sell and Purchase items",
			Suggestion: "Provide a min_buffer of 0 or more",
		})
	}

	if row.MinBuffer != nil && row.MaxBuffer != nil && *row.MaxBuffer < *row.MinBuffer {
		errs = append(errs, tabular.RowError{
			Row: n, Field: "max_buffer",
			Message:    "Max buffer must be greater than or equal to Min buffer",
			Suggestion: "Increase max_buffer or decrease min_buffer",
		})
	}

	return errs
}
