package service

import (
	"context"
	"fmt"

	"github.com/bitfantasy/masterlist/internal/config"
	"github.com/bitfantasy/masterlist/internal/masterlist/entity"
	"github.com/bitfantasy/masterlist/internal/masterlist/repository"
	"github.com/bitfantasy/masterlist/internal/masterlist/tabular"
	"github.com/bitfantasy/masterlist/internal/masterlist/validate"
)

// ProcessStepService 工序服务
type ProcessStepService struct {
	repo      *repository.ProcessStepRepository
	processes *repository.ProcessRepository
	cfg       *config.Config
}

func NewProcessStepService(repo *repository.ProcessStepRepository, processes *repository.ProcessRepository, cfg *config.Config) *ProcessStepService {
	return &ProcessStepService{repo: repo, processes: processes, cfg: cfg}
}

// ProcessStepUpdate 工序部分更新请求
type ProcessStepUpdate struct {
	Name           *string   `json:"name"`
	StepNumber     *int      `json:"step_number"`
	Type           *string   `json:"type"`
	Description    *string   `json:"description"`
	StandardTime   *float64  `json:"standard_time"`
	Status         *string   `json:"status"`
	IsMandatory    *bool     `json:"is_mandatory"`
	PredecessorIDs *[]string `json:"predecessor_ids"`
}

// List 工序列表，processID非空时限定工艺并按序号排序
func (s *ProcessStepService) List(ctx context.Context, processID string) []entity.ProcessStep {
	if processID != "" {
		return s.repo.ListByProcess(ctx, processID)
	}
	return s.repo.List(ctx)
}

// Get 单个工序
func (s *ProcessStepService) Get(ctx context.Context, id string) (*entity.ProcessStep, error) {
	return s.repo.Get(ctx, id)
}

// Create 创建工序
func (s *ProcessStepService) Create(ctx context.Context, row *validate.ProcessStepRow) (*entity.ProcessStep, []tabular.RowError, error) {
	if errs := validate.FieldErrors(row, 0, nil); len(errs) > 0 {
		return nil, errs, nil
	}
	if errs := validate.CheckProcessStep(row, 0, s.processes.List(ctx), s.repo.List(ctx)); len(errs) > 0 {
		return nil, errs, nil
	}

	status := row.Status
	if status == "" {
		status = entity.StatusActive
	}
	mandatory := true
	if row.IsMandatory != nil {
		mandatory = *row.IsMandatory
	}
	step := &entity.ProcessStep{
		ProcessID:      row.ProcessID,
		Name:           row.Name,
		StepNumber:     row.StepNumber,
		Type:           row.Type,
		Description:    row.Description,
		StandardTime:   row.StandardTime,
		Status:         status,
		IsMandatory:    mandatory,
		PredecessorIDs: row.PredecessorIDs,
		TenantID:       s.cfg.Import.DefaultTenant,
		CreatedBy:      s.cfg.Import.SystemUser,
		LastUpdatedBy:  s.cfg.Import.SystemUser,
	}
	created, err := s.repo.Create(ctx, step)
	if err != nil {
		return nil, nil, fmt.Errorf("create process step: %w", err)
	}
	return created, nil, nil
}

// Update 部分更新工序后整体重新校验
func (s *ProcessStepService) Update(ctx context.Context, id string, upd *ProcessStepUpdate) (*entity.ProcessStep, []tabular.RowError, error) {
	step, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if upd.Name != nil {
		step.Name = *upd.Name
	}
	if upd.StepNumber != nil {
		step.StepNumber = *upd.StepNumber
	}
	if upd.Type != nil {
		step.Type = *upd.Type
	}
	if upd.Description != nil {
		step.Description = *upd.Description
	}
	if upd.StandardTime != nil {
		step.StandardTime = *upd.StandardTime
	}
	if upd.Status != nil {
		step.Status = *upd.Status
	}
	if upd.IsMandatory != nil {
		step.IsMandatory = *upd.IsMandatory
	}
	if upd.PredecessorIDs != nil {
		step.PredecessorIDs = *upd.PredecessorIDs
	}

	row := &validate.ProcessStepRow{
		ProcessID:      step.ProcessID,
		Name:           step.Name,
		StepNumber:     step.StepNumber,
		Type:           step.Type,
		Description:    step.Description,
		StandardTime:   step.StandardTime,
		Status:         step.Status,
		IsMandatory:    &step.IsMandatory,
		PredecessorIDs: step.PredecessorIDs,
	}
	if errs := validate.FieldErrors(row, 0, nil); len(errs) > 0 {
		return nil, errs, nil
	}
	// 序号唯一性检查排除自身
	siblings := make([]entity.ProcessStep, 0)
	for _, st := range s.repo.List(ctx) {
		if st.ID != id {
			siblings = append(siblings, st)
		}
	}
	if errs := validate.CheckProcessStep(row, 0, s.processes.List(ctx), siblings); len(errs) > 0 {
		return nil, errs, nil
	}

	step.LastUpdatedBy = s.cfg.Import.SystemUser
	updated, err := s.repo.Update(ctx, step)
	if err != nil {
		return nil, nil, err
	}
	return updated, nil, nil
}

// Delete 删除工序
func (s *ProcessStepService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
