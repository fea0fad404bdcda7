package repository

import (
	"errors"

	"github.com/google/uuid"
)

// 错误定义
var (
	ErrNotFound = errors.New("record not found")
)

// DeletePolicy 删除策略：物料等被引用的实体只做软删，BOM关系直接移除
type DeletePolicy int

const (
	DeleteSoft DeletePolicy = iota
	DeleteHard
)

// Repositories 仓库集合。每个实例持有自己的内存集合，
// 进程启动时创建一次，测试中按用例各建各的。
type Repositories struct {
	Item        *ItemRepository
	BOM         *BOMRepository
	Process     *ProcessRepository
	ProcessStep *ProcessStepRepository
	WorkCenter  *WorkCenterRepository
}

// NewRepositories 创建仓库集合
func NewRepositories() *Repositories {
	return &Repositories{
		Item:        NewItemRepository(),
		BOM:         NewBOMRepository(),
		Process:     NewProcessRepository(),
		ProcessStep: NewProcessStepRepository(),
		WorkCenter:  NewWorkCenterRepository(),
	}
}

// NewID 生成记录ID
func NewID() string {
	return uuid.New().String()[:32]
}
