package validate

import (
	"github.com/bitfantasy/masterlist/internal/masterlist/entity"
	"github.com/bitfantasy/masterlist/internal/masterlist/tabular"
)

// BOMRow BOM条目的类型化输入行
type BOMRow struct {
	ItemID          string   `json:"item_id" validate:"required"`
	ComponentID     string   `json:"component_id" validate:"required"`
	Quantity        float64  `json:"quantity" validate:"required,gt=0"`
	UoM             string   `json:"uom" validate:"omitempty,oneof=kgs nos"`
	ScrapPercentage *float64 `json:"scrap_percentage" validate:"omitempty,gte=0,lte=100"`
	IsActive        *bool    `json:"is_active"`
}

// PairKey (item_id, component_id)组合键
func (r *BOMRow) PairKey() string {
	return r.ItemID + "\x00" + r.ComponentID
}

// BOMRowFromRecord 把原始行转换成类型化行
func BOMRowFromRecord(raw tabular.Row, n int) (*BOMRow, []tabular.RowError) {
	var errs []tabular.RowError
	row := &BOMRow{
		ItemID:      raw.Get("item_id"),
		ComponentID: raw.Get("component_id"),
		UoM:         raw.Get("uom"),
	}

	if f, ok := parseOptionalNumber(raw.Get("quantity")); ok {
		if f != nil {
			row.Quantity = *f
		}
	} else {
		errs = append(errs, schemaError(n, "quantity", raw.Get("quantity"),
			"quantity must be a number", "Expected a numeric value"))
	}
	if f, ok := parseOptionalNumber(raw.Get("scrap_percentage")); ok {
		row.ScrapPercentage = f
	} else {
		errs = append(errs, schemaError(n, "scrap_percentage", raw.Get("scrap_percentage"),
			"scrap_percentage must be a number", "Expected a numeric value between 0 and 100"))
	}
	if b, ok := parseOptionalBool(raw.Get("is_active")); ok {
		row.IsActive = b
	} else {
		errs = append(errs, schemaError(n, "is_active", raw.Get("is_active"),
			"is_active must be TRUE or FALSE", "Use TRUE or FALSE"))
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return row, nil
}

// CheckBOM BOM业务规则。items按ID索引当前未删除物料，
// pairExists回答组合键是否已落库，seenPairs为同文件已接受组合。
func CheckBOM(row *BOMRow, n int, items map[string]entity.Item, pairExists func(itemID, componentID string) bool, seenPairs map[string]struct{}) []tabular.RowError {
	var errs []tabular.RowError

	if row.ItemID == row.ComponentID {
		errs = append(errs, tabular.RowError{
			Row: n, Field: "component_id", Value: row.ComponentID,
			Message:    "an item cannot be a component of itself",
			Suggestion: "Use different item_id and component_id",
		})
		return errs
	}

	item, itemOK := items[row.ItemID]
	if !itemOK {
		errs = append(errs, tabular.RowError{
			Row: n, Field: "item_id", Value: row.ItemID,
			Message:    "referenced item does not exist",
			Suggestion: "Create the item first or fix the item_id",
		})
	}
	component, compOK := items[row.ComponentID]
	if !compOK {
		errs = append(errs, tabular.RowError{
			Row: n, Field: "component_id", Value: row.ComponentID,
			Message:    "referenced component does not exist",
			Suggestion: "Create the item first or fix the component_id",
		})
	}
	if len(errs) > 0 {
		return errs
	}

	if item.Type == entity.ItemTypePurchase {
		errs = append(errs, tabular.RowError{
			Row: n, Field: "item_id", Value: row.ItemID,
			Message:    "Purchase items cannot be used as main items in BOM",
			Suggestion: "Use a sell or component item on the assembly side",
		})
	}
	if component.Type == entity.ItemTypeSell {
		errs = append(errs, tabular.RowError{
			Row: n, Field: "component_id", Value: row.ComponentID,
			Message:    "Sell items cannot be used as components in BOM",
			Suggestion: "Use a purchase or component item on the component side",
		})
	}

	if item.UoM == entity.UoMNos && component.UoM == entity.UoMNos && !isWhole(row.Quantity) {
		errs = append(errs, tabular.RowError{
			Row: n, Field: "quantity", Value: "",
			Message:    "quantity must be a whole number when both items use nos",
			Suggestion: "Use an integer quantity",
		})
	}

	dup := pairExists != nil && pairExists(row.ItemID, row.ComponentID)
	if !dup {
		_, dup = seenPairs[row.PairKey()]
	}
	if dup {
		errs = append(errs, tabular.RowError{
			Row: n, Field: "component_id", Value: row.ComponentID,
			Message:    "This item and component combination already exists",
			Suggestion: "Remove the duplicate row or change the pair",
		})
	}

	return errs
}
