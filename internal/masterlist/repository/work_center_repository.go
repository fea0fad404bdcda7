package repository

import (
	"context"
	"sync"
	"time"

	"github.com/bitfantasy/masterlist/internal/masterlist/entity"
)

// WorkCenterRepository 工作中心内存仓库
type WorkCenterRepository struct {
	mu      sync.RWMutex
	centers []entity.WorkCenter
}

func NewWorkCenterRepository() *WorkCenterRepository {
	return &WorkCenterRepository{}
}

// Policy 工作中心被工艺引用，只做软删
func (r *WorkCenterRepository) Policy() DeletePolicy {
	return DeleteSoft
}

// List 获取所有未删除工作中心
func (r *WorkCenterRepository) List(ctx context.Context) []entity.WorkCenter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.WorkCenter, 0, len(r.centers))
	for _, c := range r.centers {
		if !c.IsDeleted {
			out = append(out, c)
		}
	}
	return out
}

// Get 根据ID查找工作中心
func (r *WorkCenterRepository) Get(ctx context.Context, id string) (*entity.WorkCenter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.centers {
		if r.centers[i].ID == id && !r.centers[i].IsDeleted {
			c := r.centers[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

// Create 创建工作中心
func (r *WorkCenterRepository) Create(ctx context.Context, c *entity.WorkCenter) (*entity.WorkCenter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if c.ID == "" {
		c.ID = NewID()
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	r.centers = append(r.centers, *c)
	return c, nil
}

// Update 整体保存工作中心
func (r *WorkCenterRepository) Update(ctx context.Context, c *entity.WorkCenter) (*entity.WorkCenter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.centers {
		if r.centers[i].ID == c.ID && !r.centers[i].IsDeleted {
			c.CreatedAt = r.centers[i].CreatedAt
			c.UpdatedAt = time.Now()
			r.centers[i] = *c
			return c, nil
		}
	}
	return nil, ErrNotFound
}

// Delete 软删除工作中心
func (r *WorkCenterRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.centers {
		if r.centers[i].ID == id && !r.centers[i].IsDeleted {
			r.centers[i].IsDeleted = true
			r.centers[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}
