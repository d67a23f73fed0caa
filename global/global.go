package global

import (
	"sync"
	"time"

	"gitee.com/taoJie_1/erp-agent/internal/erpdata"
	"gitee.com/taoJie_1/erp-agent/internal/llm"
	"gitee.com/taoJie_1/erp-agent/internal/redis"
	"gitee.com/taoJie_1/erp-agent/model/config"
	"gitee.com/taoJie_1/erp-agent/model/dto"
	"gitee.com/taoJie_1/erp-agent/model/enum"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// 全局变量
// 业务逻辑禁止修改
var (
	Config      *config.Config = new(config.Config) //指针类型, 给与其内存空间
	Log         *logrus.Logger
	Tz          *time.Location
	Llm         map[enum.LlmSize]*openai.Client = make(map[enum.LlmSize]*openai.Client, 3)
	LlmService  llm.Service
	RedisClient redis.Service
	ErpStore    *erpdata.Store
	MenuCatalog *MenuCatalogStore = &MenuCatalogStore{}
)

// MenuCatalogStore 菜单目录的内存副本, 更新接口整体替换
type MenuCatalogStore struct {
	sync.RWMutex
	Data dto.MenuTree
}

// Snapshot 返回目录的浅拷贝, 调用方不得修改其中切片
func (m *MenuCatalogStore) Snapshot() dto.MenuTree {
	m.RLock()
	defer m.RUnlock()
	return m.Data
}

func (m *MenuCatalogStore) Replace(tree dto.MenuTree) {
	m.Lock()
	defer m.Unlock()
	m.Data = tree
}
