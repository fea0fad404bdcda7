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

// ProcessService 工艺服务
type ProcessService struct {
	repo    *repository.ProcessRepository
	centers *repository.WorkCenterRepository
	cfg     *config.Config
}

func NewProcessService(repo *repository.ProcessRepository, centers *repository.WorkCenterRepository, cfg *config.Config) *ProcessService {
	return &ProcessService{repo: repo, centers: centers, cfg: cfg}
}

// ProcessUpdate 工艺部分更新请求
type ProcessUpdate struct {
	Name         *string  `json:"name"`
	Type         *string  `json:"type"`
	Description  *string  `json:"description"`
	WorkCenterID *string  `json:"work_center_id"`
	StandardTime *float64 `json:"standard_time"`
	Status       *string  `json:"status"`
}

// List 所有工艺
func (s *ProcessService) List(ctx context.Context) []entity.Process {
	return s.repo.List(ctx)
}

// Get 单个工艺
func (s *ProcessService) Get(ctx context.Context, id string) (*entity.Process, error) {
	return s.repo.Get(ctx, id)
}

// Create 创建工艺
func (s *ProcessService) Create(ctx context.Context, row *validate.ProcessRow) (*entity.Process, []tabular.RowError, error) {
	if errs := validate.FieldErrors(row, 0, nil); len(errs) > 0 {
		return nil, errs, nil
	}
	if errs := validate.CheckProcess(row, 0, s.centers.List(ctx)); len(errs) > 0 {
		return nil, errs, nil
	}

	status := row.Status
	if status == "" {
		status = entity.StatusActive
	}
	p := &entity.Process{
		Name:          row.Name,
		Type:          row.Type,
		Description:   row.Description,
		WorkCenterID:  row.WorkCenterID,
		StandardTime:  row.StandardTime,
		Status:        status,
		TenantID:      s.cfg.Import.DefaultTenant,
		CreatedBy:     s.cfg.Import.SystemUser,
		LastUpdatedBy: s.cfg.Import.SystemUser,
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, nil, fmt.Errorf("create process: %w", err)
	}
	return created, nil, nil
}

// Update 部分更新工艺后整体重新校验
func (s *ProcessService) Update(ctx context.Context, id string, upd *ProcessUpdate) (*entity.Process, []tabular.RowError, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Type != nil {
		p.Type = *upd.Type
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.WorkCenterID != nil {
		p.WorkCenterID = *upd.WorkCenterID
	}
	if upd.StandardTime != nil {
		p.StandardTime = *upd.StandardTime
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}

	row := &validate.ProcessRow{
		Name:         p.Name,
		Type:         p.Type,
		Description:  p.Description,
		WorkCenterID: p.WorkCenterID,
		StandardTime: p.StandardTime,
		Status:       p.Status,
	}
	if errs := validate.FieldErrors(row, 0, nil); len(errs) > 0 {
		return nil, errs, nil
	}
	if errs := validate.CheckProcess(row, 0, s.centers.List(ctx)); len(errs) > 0 {
		return nil, errs, nil
	}

	p.LastUpdatedBy = s.cfg.Import.SystemUser
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, nil, err
	}
	return updated, nil, nil
}

// Delete 删除工艺
func (s *ProcessService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
