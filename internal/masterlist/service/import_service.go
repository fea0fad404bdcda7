package service

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/bitfantasy/masterlist/internal/config"
	"github.com/bitfantasy/masterlist/internal/masterlist/entity"
	"github.com/bitfantasy/masterlist/internal/masterlist/metrics"
	"github.com/bitfantasy/masterlist/internal/masterlist/repository"
	"github.com/bitfantasy/masterlist/internal/masterlist/tabular"
	"github.com/bitfantasy/masterlist/internal/masterlist/validate"
)

// ImportService 批量导入管线。整体语义是all-or-nothing：
// 任何一行出错则整个文件不落库，返回完整的错误清单。
type ImportService struct {
	items  *repository.ItemRepository
	bom    *repository.BOMRepository
	cfg    *config.Config
	logger *zap.Logger
}

func NewImportService(items *repository.ItemRepository, bom *repository.BOMRepository, cfg *config.Config, logger *zap.Logger) *ImportService {
	return &ImportService{items: items, bom: bom, cfg: cfg, logger: logger}
}

// ItemImportResult 物料导入结果。Errors非空时Data必为空。
type ItemImportResult struct {
	Data   []entity.Item     `json:"data,omitempty"`
	Errors []tabular.RowError `json:"errors,omitempty"`
}

// BOMImportResult BOM导入结果
type BOMImportResult struct {
	Data   []entity.BOMEntry  `json:"data,omitempty"`
	Errors []tabular.RowError `json:"errors,omitempty"`
}

// ImportItems 解析并校验物料文件。结构性错误(空文件、超限、不可读)
// 直接返回error；行级错误收集进结果。
func (s *ImportService) ImportItems(ctx context.Context, filename string, r io.Reader) (*ItemImportResult, error) {
	rows, err := tabular.Parse(filename, r, s.cfg.Import.MaxUploadBytes)
	if err != nil {
		return nil, err
	}

	existing := s.items.List(ctx)
	seenNames := make(map[string]struct{})

	var valid []entity.Item
	var errs []tabular.RowError
	for i, raw := range rows {
		n := i + 2 // 表头占第1行

		row, rowErrs := validate.ItemRowFromRecord(raw, n)
		if len(rowErrs) > 0 {
			errs = append(errs, rowErrs...)
			continue
		}
		if rowErrs := validate.FieldErrors(row, n, raw); len(rowErrs) > 0 {
			errs = append(errs, rowErrs...)
			continue
		}
		if rowErrs := validate.CheckItem(row, n, existing, seenNames); len(rowErrs) > 0 {
			errs = append(errs, rowErrs...)
			continue
		}

		// 先到先得：后续同名行按重复拒绝
		seenNames[validate.NormName(row.InternalItemName)] = struct{}{}
		valid = append(valid, *s.itemFromRow(row))
	}

	metrics.RecordImportRows("items", len(valid), len(errs))
	if len(errs) > 0 {
		s.logger.Warn("item import rejected",
			zap.String("file", filename),
			zap.Int("rows", len(rows)),
			zap.Int("errors", len(errs)),
		)
		return &ItemImportResult{Errors: errs}, nil
	}

	stored, err := s.items.BatchCreate(ctx, valid)
	if err != nil {
		return nil, fmt.Errorf("persist items: %w", err)
	}
	s.logger.Info("item import persisted",
		zap.String("file", filename),
		zap.Int("rows", len(stored)),
	)
	return &ItemImportResult{Data: stored}, nil
}

// ImportBOM 解析并校验BOM文件
func (s *ImportService) ImportBOM(ctx context.Context, filename string, r io.Reader) (*BOMImportResult, error) {
	rows, err := tabular.Parse(filename, r, s.cfg.Import.MaxUploadBytes)
	if err != nil {
		return nil, err
	}

	items := s.items.List(ctx)
	idx := make(map[string]entity.Item, len(items))
	for _, it := range items {
		idx[it.ID] = it
	}
	pairExists := func(itemID, componentID string) bool {
		return s.bom.ExistsPair(ctx, itemID, componentID)
	}
	seenPairs := make(map[string]struct{})

	var valid []entity.BOMEntry
	var errs []tabular.RowError
	for i, raw := range rows {
		n := i + 2

		row, rowErrs := validate.BOMRowFromRecord(raw, n)
		if len(rowErrs) > 0 {
			errs = append(errs, rowErrs...)
			continue
		}
		if rowErrs := validate.FieldErrors(row, n, raw); len(rowErrs) > 0 {
			errs = append(errs, rowErrs...)
			continue
		}
		if rowErrs := validate.CheckBOM(row, n, idx, pairExists, seenPairs); len(rowErrs) > 0 {
			errs = append(errs, rowErrs...)
			continue
		}

		seenPairs[row.PairKey()] = struct{}{}
		valid = append(valid, *s.bomFromRow(row))
	}

	metrics.RecordImportRows("bom", len(valid), len(errs))
	if len(errs) > 0 {
		s.logger.Warn("bom import rejected",
			zap.String("file", filename),
			zap.Int("rows", len(rows)),
			zap.Int("errors", len(errs)),
		)
		return &BOMImportResult{Errors: errs}, nil
	}

	stored, err := s.bom.BatchCreate(ctx, valid)
	if err != nil {
		return nil, fmt.Errorf("persist bom entries: %w", err)
	}
	s.logger.Info("bom import persisted",
		zap.String("file", filename),
		zap.Int("rows", len(stored)),
	)
	return &BOMImportResult{Data: stored}, nil
}

func (s *ImportService) itemFromRow(row *validate.ItemRow) *entity.Item {
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

func (s *ImportService) bomFromRow(row *validate.BOMRow) *entity.BOMEntry {
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
