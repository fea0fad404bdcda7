package repository

import (
	"context"
	"sync"
	"time"

	"github.com/bitfantasy/masterlist/internal/masterlist/entity"
)

// ItemRepository 物料内存仓库
type ItemRepository struct {
	mu    sync.RWMutex
	items []entity.Item
}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

// Policy 物料被BOM等处引用，删除只做软删
func (r *ItemRepository) Policy() DeletePolicy {
	return DeleteSoft
}

// List 获取所有未删除物料
func (r *ItemRepository) List(ctx context.Context) []entity.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Item, 0, len(r.items))
	for _, it := range r.items {
		if !it.IsDeleted {
			out = append(out, it)
		}
	}
	return out
}

// Get 根据ID查找物料
func (r *ItemRepository) Get(ctx context.Context, id string) (*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].ID == id && !r.items[i].IsDeleted {
			it := r.items[i]
			return &it, nil
		}
	}
	return nil, ErrNotFound
}

// Create 创建物料，ID为空时自动生成
func (r *ItemRepository) Create(ctx context.Context, item *entity.Item) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if item.ID == "" {
		item.ID = NewID()
	}
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items = append(r.items, *item)
	return item, nil
}

// BatchCreate 批量创建物料，导入管线校验通过后一次性落库
func (r *ItemRepository) BatchCreate(ctx context.Context, items []entity.Item) ([]entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = NewID()
		}
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
		r.items = append(r.items, items[i])
	}
	return items, nil
}

// Update 整体保存物料，updated_at由仓库统一打点
func (r *ItemRepository) Update(ctx context.Context, item *entity.Item) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == item.ID && !r.items[i].IsDeleted {
			item.CreatedAt = r.items[i].CreatedAt
			item.UpdatedAt = time.Now()
			r.items[i] = *item
			return item, nil
		}
	}
	return nil, ErrNotFound
}

// Delete 软删除物料
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id && !r.items[i].IsDeleted {
			r.items[i].IsDeleted = true
			r.items[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}
