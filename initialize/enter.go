package initialize

import (
	"context"
	"io"
	"sync"

	"gitee.com/taoJie_1/erp-agent/global"
	"gitee.com/taoJie_1/erp-agent/task"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// Initializer 统一管理项目的所有初始化工作
type Initializer struct {
	cron           *cron.Cron
	logFileClosers []io.Closer
	reloadLock     sync.Mutex
}

// Run 并发执行所有核心服务的初始化
func (i *Initializer) Run() error {
	eg, _ := errgroup.WithContext(context.Background())

	// 关键任务, 失败会终止程序
	eg.Go(i.dbStart)

	// 非关键任务, 失败只打印日志, 不影响启动
	// Redis与LLM不可用时分别降级为单层缓存与本地规则兜底
	eg.Go(func() error {
		_ = i.initRedis()
		return nil
	})
	eg.Go(func() error {
		_ = i.initLlm()
		return nil
	})
	eg.Go(func() error {
		_ = i.initErpData()
		return nil
	})

	return eg.Wait()
}

// Close 优雅地关闭和释放所有资源
func (i *Initializer) Close() {
	if err := i.dbClose(); err != nil {
		global.Log.Warnf("关闭数据库连接失败: %v", err)
	}
	if err := i.redisClose(); err != nil {
		global.Log.Warnf("关闭Redis连接失败: %v", err)
	}
	i.timerStop()
	for _, closer := range i.logFileClosers {
		_ = closer.Close()
	}
}

// StartSystem 启动系统级服务, 如定时器和数据加载
func (i *Initializer) StartSystem(taskManager *task.Manager) {
	if err := i.timerStart(taskManager); err != nil {
		panic(err)
	}
	i.loadData(taskManager)
}
