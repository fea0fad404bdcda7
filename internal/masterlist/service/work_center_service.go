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

// WorkCenterService 工作中心服务
type WorkCenterService struct {
	repo *repository.WorkCenterRepository
	cfg  *config.Config
}

func NewWorkCenterService(repo *repository.WorkCenterRepository, cfg *config.Config) *WorkCenterService {
	return &WorkCenterService{repo: repo, cfg: cfg}
}

// List 未删除工作中心
func (s *WorkCenterService) List(ctx context.Context) []entity.WorkCenter {
	return s.repo.List(ctx)
}

// Get 单个工作中心
func (s *WorkCenterService) Get(ctx context.Context, id string) (*entity.WorkCenter, error) {
	return s.repo.Get(ctx, id)
}

// Create 创建工作中心
func (s *WorkCenterService) Create(ctx context.Context, row *validate.WorkCenterRow) (*entity.WorkCenter, []tabular.RowError, error) {
	if errs := validate.FieldErrors(row, 0, nil); len(errs) > 0 {
		return nil, errs, nil
	}
	if errs := validate.CheckWorkCenter(row, 0, s.repo.List(ctx)); len(errs) > 0 {
		return nil, errs, nil
	}

	status := row.Status
	if status == "" {
		status = entity.StatusActive
	}
	wc := &entity.WorkCenter{
		Name:          row.Name,
		Code:          row.Code,
		Description:   row.Description,
		Status:        status,
		TenantID:      s.cfg.Import.DefaultTenant,
		CreatedBy:     s.cfg.Import.SystemUser,
		LastUpdatedBy: s.cfg.Import.SystemUser,
	}
	created, err := s.repo.Create(ctx, wc)
	if err != nil {
		return nil, nil, fmt.Errorf("create work center: %w", err)
	}
	return created, nil, nil
}

// Delete 软删除工作中心
func (s *WorkCenterService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SeedDefaults 写入缺省工作中心，启动时调用，已有数据则跳过
func (s *WorkCenterService) SeedDefaults(ctx context.Context) error {
	if len(s.repo.List(ctx)) > 0 {
		return nil
	}
	defaults := []validate.WorkCenterRow{
		{Name: "Assembly Line 1", Code: "AL001", Description: "Main assembly line", Status: entity.StatusActive},
		{Name: "Quality Control Station", Code: "QC001", Description: "Quality inspection area", Status: entity.StatusActive},
		{Name: "Manufacturing Cell 1", Code: "MC001", Description: "Primary manufacturing cell", Status: entity.StatusActive},
	}
	for i := range defaults {
		if _, _, err := s.Create(ctx, &defaults[i]); err != nil {
			return fmt.Errorf("seed work center %s: %w", defaults[i].Code, err)
		}
	}
	return nil
}
