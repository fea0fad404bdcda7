package service

import (
	"go.uber.org/zap"

	"github.com/bitfantasy/masterlist/internal/config"
	"github.com/bitfantasy/masterlist/internal/masterlist/repository"
)

// Services 服务集合
type Services struct {
	Item        *ItemService
	BOM         *BOMService
	Process     *ProcessService
	ProcessStep *ProcessStepService
	WorkCenter  *WorkCenterService
	Import      *ImportService
}

// NewServices 创建服务集合
func NewServices(repos *repository.Repositories, cfg *config.Config, logger *zap.Logger) *Services {
	return &Services{
		Item:        NewItemService(repos.Item, cfg),
		BOM:         NewBOMService(repos.BOM, repos.Item, cfg),
		Process:     NewProcessService(repos.Process, repos.WorkCenter, cfg),
		ProcessStep: NewProcessStepService(repos.ProcessStep, repos.Process, cfg),
		WorkCenter:  NewWorkCenterService(repos.WorkCenter, cfg),
		Import:      NewImportService(repos.Item, repos.BOM, cfg, logger),
	}
}
