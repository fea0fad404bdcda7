package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bitfantasy/masterlist/internal/masterlist/entity"
)

// ProcessStepRepository 工序内存仓库
type ProcessStepRepository struct {
	mu    sync.RWMutex
	steps []entity.ProcessStep
}

func NewProcessStepRepository() *ProcessStepRepository {
	return &ProcessStepRepository{}
}

func (r *ProcessStepRepository) Policy() DeletePolicy {
	return DeleteHard
}

// List 获取所有工序
func (r *ProcessStepRepository) List(ctx context.Context) []entity.ProcessStep {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.ProcessStep, len(r.steps))
	copy(out, r.steps)
	return out
}

// ListByProcess 获取某工艺下的工序，按step_number升序
func (r *ProcessStepRepository) ListByProcess(ctx context.Context, processID string) []entity.ProcessStep {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.ProcessStep
	for i := range r.steps {
		if r.steps[i].ProcessID == processID {
			out = append(out, r.steps[i])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StepNumber < out[j].StepNumber
	})
	return out
}

// Get 根据ID查找工序
func (r *ProcessStepRepository) Get(ctx context.Context, id string) (*entity.ProcessStep, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.steps {
		if r.steps[i].ID == id {
			s := r.steps[i]
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

// Create 创建工序
func (r *ProcessStepRepository) Create(ctx context.Context, s *entity.ProcessStep) (*entity.ProcessStep, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if s.ID == "" {
		s.ID = NewID()
	}
	s.CreatedAt = now
	s.UpdatedAt = now
	r.steps = append(r.steps, *s)
	return s, nil
}

// Update 整体保存工序
func (r *ProcessStepRepository) Update(ctx context.Context, s *entity.ProcessStep) (*entity.ProcessStep, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.steps {
		if r.steps[i].ID == s.ID {
			s.CreatedAt = r.steps[i].CreatedAt
			s.UpdatedAt = time.Now()
			r.steps[i] = *s
			return s, nil
		}
	}
	return nil, ErrNotFound
}

// Delete 硬删除工序
func (r *ProcessStepRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.steps {
		if r.steps[i].ID == id {
			r.steps = append(r.steps[:i], r.steps[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
