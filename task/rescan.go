package task

import (
	"sync"
	"time"

	"gitee.com/taoJie_1/erp-agent/global"
	"gitee.com/taoJie_1/erp-agent/service"
)

var (
	rescanTimer *time.Timer
	rescanMutex sync.Mutex
)

// RebuildCatalog 从内置页面定义重建菜单目录
func (m *Manager) RebuildCatalog() {
	tree := service.Service.UserServiceGroup.MenuService.RebuildTree()
	global.Log.Infof("菜单目录已重建, 共 %d 个分类", len(tree.Categories))
}

// DebounceCatalogRescan 为目录重建提供防抖调用
// 每次调用都会重置定时器
func (m *Manager) DebounceCatalogRescan() {
	delay := time.Duration(global.Config.Ai.RescanDebounce) * time.Second
	if delay <= 0 {
		m.RebuildCatalog()
		return
	}

	rescanMutex.Lock()
	defer rescanMutex.Unlock()

	if rescanTimer != nil {
		rescanTimer.Stop()
	}

	rescanTimer = time.AfterFunc(delay, func() {
		global.Log.Info("触发经防抖处理的目录重建任务...")
		m.RebuildCatalog()
	})
	global.Log.Infof("目录重建任务已调度在 %v 后执行", delay)
}
