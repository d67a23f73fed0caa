package initialize

import (
	"context"

	"gitee.com/taoJie_1/erp-agent/global"
	"gitee.com/taoJie_1/erp-agent/task"
)

// loadData 加载业务所需数据
func (i *Initializer) loadData(taskManager *task.Manager) {
	taskManager.RebuildCatalog()

	// 预热不阻塞启动, 失败只影响首次响应速度
	go func() {
		if err := taskManager.WarmupCache(context.Background()); err != nil {
			global.Log.Warnln("启动时预热缓存失败:", err)
		}
	}()
}
