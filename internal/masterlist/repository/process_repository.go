package repository

import (
	"context"
	"sync"
	"time"

	"github.com/bitfantasy/masterlist/internal/masterlist/entity"
)

// ProcessRepository 工艺内存仓库
type ProcessRepository struct {
	mu        sync.RWMutex
	processes []entity.Process
}

func NewProcessRepository() *ProcessRepository {
	return &ProcessRepository{}
}

func (r *ProcessRepository) Policy() DeletePolicy {
	return DeleteHard
}

// List 获取所有工艺
func (r *ProcessRepository) List(ctx context.Context) []entity.Process {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Process, len(r.processes))
	copy(out, r.processes)
	return out
}

// Get 根据ID查找工艺
func (r *ProcessRepository) Get(ctx context.Context, id string) (*entity.Process, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.processes {
		if r.processes[i].ID == id {
			p := r.processes[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// Create 创建工艺
func (r *ProcessRepository) Create(ctx context.Context, p *entity.Process) (*entity.Process, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if p.ID == "" {
		p.ID = NewID()
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	r.processes = append(r.processes, *p)
	return p, nil
}

// Update 整体保存工艺
func (r *ProcessRepository) Update(ctx context.Context, p *entity.Process) (*entity.Process, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.processes {
		if r.processes[i].ID == p.ID {
			p.CreatedAt = r.processes[i].CreatedAt
			p.UpdatedAt = time.Now()
			r.processes[i] = *p
			return p, nil
		}
	}
	return nil, ErrNotFound
}

// Delete 硬删除工艺
func (r *ProcessRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.processes {
		if r.processes[i].ID == id {
			r.processes = append(r.processes[:i], r.processes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
