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

// BOMService BOM服务
type BOMService struct {
	repo  *repository.BOMRepository
	items *repository.ItemRepository
	cfg   *config.Config
}

func NewBOMService(repo *repository.BOMRepository, items *repository.ItemRepository, cfg *config.Config) *BOMService {
	return &BOMService{repo: repo, items: items, cfg: cfg}
}

// BOMUpdate BOM部分更新请求
type BOMUpdate struct {
	Quantity        *float64 `json:"quantity"`
	UoM             *string  `json:"uom"`
	ScrapPercentage *float64 `json:"scrap_percentage"`
	IsActive        *bool    `json:"is_active"`
}

// List 所有BOM条目
func (s *BOMService) List(ctx context.Context) []entity.BOMEntry {
	return s.repo.List(ctx)
}

// Get 单个BOM条目
func (s *BOMService) Get(ctx context.Context, id string) (*entity.BOMEntry, error) {
	return s.repo.Get(ctx, id)
}

// Create 创建BOM条目，校验与导入管线同源
func (s *BOMService) Create(ctx context.Context, row *validate.BOMRow) (*entity.BOMEntry, []tabular.RowError, error) {
	if errs := validate.FieldErrors(row, 0, nil); len(errs) > 0 {
		return nil, errs, nil
	}
	if errs := validate.CheckBOM(row, 0, s.itemIndex(ctx), s.pairExists(ctx), nil); len(errs) > 0 {
		return nil, errs, nil
	}

	entry := s.buildEntry(row)
	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return nil, nil, fmt.Errorf("create bom entry: %w", err)
	}
	return created, nil, nil
}

// Update 部分更新BOM条目。组合键不可变，只允许调整数量等属性。
func (s *BOMService) Update(ctx context.Context, id string, upd *BOMUpdate) (*entity.BOMEntry, []tabular.RowError, error) {
	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if upd.Quantity != nil {
		entry.Quantity = *upd.Quantity
	}
	if upd.UoM != nil {
		entry.UoM = *upd.UoM
	}
	if upd.ScrapPercentage != nil {
		entry.ScrapPercentage = upd.ScrapPercentage
	}
	if upd.IsActive != nil {
		entry.IsActive = *upd.IsActive
	}

	row := &validate.BOMRow{
		ItemID:          entry.ItemID,
		ComponentID:     entry.ComponentID,
		Quantity:        entry.Quantity,
		UoM:             entry.UoM,
		ScrapPercentage: entry.ScrapPercentage,
		IsActive:        &entry.IsActive,
	}
	if errs := validate.FieldErrors(row, 0, nil); len(errs) > 0 {
		return nil, errs, nil
	}
	// 重复组合检查对更新无意义(组合键不变)，只复核类型约束
	if errs := validate.CheckBOM(row, 0, s.itemIndex(ctx), nil, nil); len(errs) > 0 {
		return nil, errs, nil
	}

	entry.LastUpdatedBy = s.cfg.Import.SystemUser
	updated, err := s.repo.Update(ctx, entry)
	if err != nil {
		return nil, nil, err
	}
	return updated, nil, nil
}

// Delete 硬删除BOM条目
func (s *BOMService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *BOMService) itemIndex(ctx context.Context) map[string]entity.Item {
	items := s.items.List(ctx)
	idx := make(map[string]entity.Item, len(items))
	for _, it := range items {
		idx[it.ID] = it
	}
	return idx
}

func (s *BOMService) pairExists(ctx context.Context) func(itemID, componentID string) bool {
	return func(itemID, componentID string) bool {
		return s.repo.ExistsPair(ctx, itemID, componentID)
	}
}

func (s *BOMService) buildEntry(row *validate.BOMRow) *entity.BOMEntry {
	active := true
	if row.IsActive != nil {
		active = *row.IsActive
	}
	return &entity.BOMEntry{
		ItemID:          row.ItemID,
		ComponentID:     row.ComponentID,
		Quantity:        row.Quantity,
		UoM:             row.UoM,
		ScrapPercentage: row.ScrapPercentage,
		IsActive:        active,
		TenantID:        s.cfg.Import.DefaultTenant,
		CreatedBy:       s.cfg.Import.SystemUser,
		LastUpdatedBy:   s.cfg.Import.SystemUser,
	}
}
