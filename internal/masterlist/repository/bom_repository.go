package repository

import (
	"context"
	"sync"
	"time"

	"github.com/bitfantasy/masterlist/internal/masterlist/entity"
)

// BOMRepository BOM条目内存仓库
type BOMRepository struct {
	mu      sync.RWMutex
	entries []entity.BOMEntry
}

func NewBOMRepository() *BOMRepository {
	return &BOMRepository{}
}

// Policy BOM关系是可弃置的连接记录，直接硬删
func (r *BOMRepository) Policy() DeletePolicy {
	return DeleteHard
}

// List 获取所有BOM条目
func (r *BOMRepository) List(ctx context.Context) []entity.BOMEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.BOMEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Get 根据ID查找BOM条目
func (r *BOMRepository) Get(ctx context.Context, id string) (*entity.BOMEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].ID == id {
			e := r.entries[i]
			return &e, nil
		}
	}
	return nil, ErrNotFound
}

// Create 创建BOM条目
func (r *BOMRepository) Create(ctx context.Context, e *entity.BOMEntry) (*entity.BOMEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if e.ID == "" {
		e.ID = NewID()
	}
	e.CreatedAt = now
	e.UpdatedAt = now
	r.entries = append(r.entries, *e)
	return e, nil
}

// BatchCreate 批量创建BOM条目
func (r *BOMRepository) BatchCreate(ctx context.Context, entries []entity.BOMEntry) ([]entity.BOMEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for i := range entries {
		if entries[i].ID == "" {
			entries[i].ID = NewID()
		}
		entries[i].CreatedAt = now
		entries[i].UpdatedAt = now
		r.entries = append(r.entries, entries[i])
	}
	return entries, nil
}

// Update 整体保存BOM条目
func (r *BOMRepository) Update(ctx context.Context, e *entity.BOMEntry) (*entity.BOMEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].ID == e.ID {
			e.CreatedAt = r.entries[i].CreatedAt
			e.UpdatedAt = time.Now()
			r.entries[i] = *e
			return e, nil
		}
	}
	return nil, ErrNotFound
}

// Delete 硬删除BOM条目
func (r *BOMRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ExistsPair (item_id, component_id)组合是否已存在
func (r *BOMRepository) ExistsPair(ctx context.Context, itemID, componentID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].ItemID == itemID && r.entries[i].ComponentID == componentID {
			return true
		}
	}
	return false
}
