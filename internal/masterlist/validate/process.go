package validate

import (
	"github.com/bitfantasy/masterlist/internal/masterlist/entity"
	"github.com/bitfantasy/masterlist/internal/masterlist/tabular"
)

// ProcessRow 工艺的类型化输入
type ProcessRow struct {
	Name         string  `json:"name" validate:"required,max=100"`
	Type         string  `json:"type" validate:"required,oneof=manufacturing assembly quality_check"`
	Description  string  `json:"description"`
	WorkCenterID string  `json:"work_center_id" validate:"required"`
	StandardTime float64 `json:"standard_time" validate:"gte=0"`
	Status       string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CheckProcess 工艺业务规则：工作中心必须存在
func CheckProcess(row *ProcessRow, n int, centers []entity.WorkCenter) []tabular.RowError {
	for i := range centers {
		if centers[i].ID == row.WorkCenterID {
			return nil
		}
	}
	return []tabular.RowError{{
		Row: n, Field: "work_center_id", Value: row.WorkCenterID,
		Message:    "referenced work center does not exist",
		Suggestion: "Use the id of an existing work center",
	}}
}

// WorkCenterRow 工作中心的类型化输入
type WorkCenterRow struct {
	Name        string `json:"name" validate:"required,max=100"`
	Code        string `json:"code" validate:"required,max=20"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// CheckWorkCenter 工作中心业务规则：code唯一
func CheckWorkCenter(row *WorkCenterRow, n int, existing []entity.WorkCenter) []tabular.RowError {
	for i := range existing {
		if existing[i].Code == row.Code {
			return []tabular.RowError{{
				Row: n, Field: "code", Value: row.Code,
				Message:    "a work center with this code already exists",
				Suggestion: "Use a unique code",
			}}
		}
	}
	return nil
}
