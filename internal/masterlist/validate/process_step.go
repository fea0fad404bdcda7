package validate

import (
	"github.com/bitfantasy/masterlist/internal/masterlist/entity"
	"github.com/bitfantasy/masterlist/internal/masterlist/tabular"
)

// ProcessStepRow 工序的类型化输入
type ProcessStepRow struct {
	ProcessID      string   `json:"process_id" validate:"required"`
	Name           string   `json:"name" validate:"required,max=100"`
	StepNumber     int      `json:"step_number" validate:"required,gt=0"`
	Type           string   `json:"type" validate:"required,oneof=operation inspection transport delay storage"`
	Description    string   `json:"description"`
	StandardTime   float64  `json:"standard_time" validate:"gte=0"`
	Status         string   `json:"status" validate:"omitempty,oneof=active inactive"`
	IsMandatory    *bool    `json:"is_mandatory"`
	PredecessorIDs []string `json:"predecessor_ids"`
}

// CheckProcessStep 工序业务规则：工艺存在、step_number在工艺内唯一、
// 前置工序必须属于同一工艺。
func CheckProcessStep(row *ProcessStepRow, n int, processes []entity.Process, siblings []entity.ProcessStep) []tabular.RowError {
	var errs []tabular.RowError

	found := false
	for i := range processes {
		if processes[i].ID == row.ProcessID {
			found = true
			break
		}
	}
	if !found {
		errs = append(errs, tabular.RowError{
			Row: n, Field: "process_id", Value: row.ProcessID,
			Message:    "referenced process does not exist",
			Suggestion: "Create the process first or fix the process_id",
		})
		return errs
	}

	sameProcess := make(map[string]struct{})
	for i := range siblings {
		if siblings[i].ProcessID != row.ProcessID {
			continue
		}
		sameProcess[siblings[i].ID] = struct{}{}
		if siblings[i].StepNumber == row.StepNumber {
			errs = append(errs, tabular.RowError{
				Row: n, Field: "step_number",
				Message:    "step_number is already used within this process",
				Suggestion: "Use the next free step_number",
			})
		}
	}

	for _, pred := range row.PredecessorIDs {
		if _, ok := sameProcess[pred]; !ok {
			errs = append(errs, tabular.RowError{
				Row: n, Field: "predecessor_ids", Value: pred,
				Message:    "predecessor step does not belong to this process",
				Suggestion: "Reference only steps of the same process",
			})
		}
	}

	return errs
}
