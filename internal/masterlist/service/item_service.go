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

// ItemService 物料服务
type ItemService struct {
	repo *repository.ItemRepository
	cfg  *config.Config
}

func NewItemService(repo *repository.ItemRepository, cfg *config.Config) *ItemService {
	return &ItemService{repo: repo, cfg: cfg}
}

// ItemUpdate 物料部分更新请求，nil字段保持不变
type ItemUpdate struct {
	InternalItemName *string  `json:"internal_item_name"`
	Type             *string  `json:"type"`
	UoM              *string  `json:"uom"`
	MinBuffer        *float64 `json:"min_buffer"`
	MaxBuffer        *float64 `json:"max_buffer"`
	ScrapType        *string  `json:"scrap_type"`
	ItemDescription  *string  `json:"item_description"`
	CustomerItemName *string  `json:"customer_item_name"`
	IsJobWork        *bool    `json:"is_job_work"`
}

// List 未删除物料列表
func (s *ItemService) List(ctx context.Context) []entity.Item {
	return s.repo.List(ctx)
}

// Get 单个物料
func (s *ItemService) Get(ctx context.Context, id string) (*entity.Item, error) {
	return s.repo.Get(ctx, id)
}

// Create 创建物料。字段校验和业务校验与导入管线同源。
func (s *ItemService) Create(ctx context.Context, row *validate.ItemRow) (*entity.Item, []tabular.RowError, error) {
	if errs := validate.FieldErrors(row, 0, nil); len(errs) > 0 {
		return nil, errs, nil
	}
	if errs := validate.CheckItem(row, 0, s.repo.List(ctx), nil); len(errs) > 0 {
		return nil, errs, nil
	}

	item := s.buildItem(row)
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, nil, fmt.Errorf("create item: %w", err)
	}
	return created, nil, nil
}

// Update 部分更新物料后整体重新校验
func (s *ItemService) Update(ctx context.Context, id string, upd *ItemUpdate) (*entity.Item, []tabular.RowError, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if upd.InternalItemName != nil {
		item.InternalItemName = *upd.InternalItemName
	}
	if upd.Type != nil {
		item.Type = *upd.Type
	}
	if upd.UoM != nil {
		item.UoM = *upd.UoM
	}
	if upd.MinBuffer != nil {
		item.MinBuffer = upd.MinBuffer
	}
	if upd.MaxBuffer != nil {
		item.MaxBuffer = upd.MaxBuffer
	}
	if upd.ScrapType != nil {
		item.ScrapType = *upd.ScrapType
	}
	if upd.ItemDescription != nil {
		item.ItemDescription = *upd.ItemDescription
	}
	if upd.CustomerItemName != nil {
		item.CustomerItemName = *upd.CustomerItemName
	}
	if upd.IsJobWork != nil {
		item.IsJobWork = *upd.IsJobWork
	}

	row := &validate.ItemRow{
		InternalItemName: item.InternalItemName,
		Type:             item.Type,
		UoM:              item.UoM,
		MinBuffer:        item.MinBuffer,
		MaxBuffer:        item.MaxBuffer,
		ScrapType:        item.ScrapType,
		ItemDescription:  item.ItemDescription,
		CustomerItemName: item.CustomerItemName,
		IsJobWork:        item.IsJobWork,
	}
	if errs := validate.FieldErrors(row, 0, nil); len(errs) > 0 {
		return nil, errs, nil
	}
	// 唯一性检查排除自身
	others := make([]entity.Item, 0)
	for _, it := range s.repo.List(ctx) {
		if it.ID != id {
			others = append(others, it)
		}
	}
	if errs := validate.CheckItem(row, 0, others, nil); len(errs) > 0 {
		return nil, errs, nil
	}

	item.LastUpdatedBy = s.cfg.Import.SystemUser
	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, nil, err
	}
	return updated, nil, nil
}

// Delete 软删除物料
func (s *ItemService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ItemService) buildItem(row *validate.ItemRow) *entity.Item {
	minBuf := row.MinBuffer
	if minBuf == nil {
		zero := 0.0
		minBuf = &zero
	}
	return &entity.Item{
		InternalItemName: row.InternalItemName,
		TenantID:         s.cfg.Import.DefaultTenant,
		Type:             row.Type,
		UoM:              row.UoM,
		MinBuffer:        minBuf,
		MaxBuffer:        row.MaxBuffer,
		ScrapType:        row.ScrapType,
		ItemDescription:  row.ItemDescription,
		CustomerItemName: row.CustomerItemName,
		IsJobWork:        row.IsJobWork,
		IsDeleted:        false,
		CreatedBy:        s.cfg.Import.SystemUser,
		LastUpdatedBy:    s.cfg.Import.SystemUser,
	}
}
