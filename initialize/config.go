package initialize

import (
	"flag"
	"fmt"

	"gitee.com/taoJie_1/erp-agent/global"
	"gitee.com/taoJie_1/erp-agent/model/config"
	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

var (
	Conf string
	Act  string
)

func init() {
	flag.StringVar(&Conf, "c", "", "choose config file.")
	flag.StringVar(&Act, "a", "", `行为,默认为空,即启动服务; "warmup": 预热常见问题缓存;`)
}

// New 创建一个新的初始化器, 并加载配置文件
func New() *Initializer {
	var configPath string
	if gin.Mode() != gin.TestMode {
		flag.Parse()
		if Conf != "" {
			configPath = Conf
		}
	}
	if configPath == "" {
		configPath = `config.yaml`
	}

	ini := &Initializer{}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		panic("读取配置失败[u9ij]: " + configPath + err.Error())
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("配置文件变化[djiads]: ", e.Name)
		oldConfig := global.Config.DeepCopy()
		if err := v.Unmarshal(global.Config); err != nil {
			fmt.Println(err)
			return
		}
		handleConfig(global.Config)
		ini.HandleConfigChange(oldConfig, global.Config)
	})

	if err := v.Unmarshal(global.Config); err != nil {
		panic("出错[dhfal]: " + err.Error())
	}

	handleConfig(global.Config)

	return ini
}

// handleConfig 处理和设置配置的默认值
func handleConfig(c *config.Config) {
	if c.ProjectName == "" {
		c.ProjectName = "ERP智能助手"
	}
	if c.GinAddr == "" {
		c.GinAddr = ":80"
	}
	if c.GinLogPath == "" {
		c.GinLogPath = "log/gin.log"
	}
	if c.RunLogPath == "" {
		c.RunLogPath = "log/run.log"
	}
	if c.LogRetentionDays == 0 {
		c.LogRetentionDays = 30
	}
	if c.Tz == "" {
		// 面向韩国客户, 默认首尔时区
		c.Tz = "Asia/Seoul"
	}
	if c.Database.Type == "" {
		c.Database.Type = "sqlite3"
	}
	if c.Database.SqlitePath == "" {
		c.Database.SqlitePath = "data.db"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Redis.CachePrefix == "" {
		c.Redis.CachePrefix = "erp:qa:"
	}
	for i := range c.Llm {
		if c.Llm[i].Timeout == 0 {
			c.Llm[i].Timeout = 30
		}
	}
	if c.Ai.MaxQueryLength == 0 {
		c.Ai.MaxQueryLength = 500
	}
	if c.Ai.ProviderTimeout == 0 {
		c.Ai.ProviderTimeout = 30
	}
	if c.Ai.RescanDebounce == 0 {
		c.Ai.RescanDebounce = 3
	}
	if len(c.Ai.WarmupQueries) == 0 {
		c.Ai.WarmupQueries = []string{
			"영업 고객 추가방법 알려줘",
			"재고 관리는 어떻게 하나요?",
			"생산 오더 등록 방법",
			"급여 관리 방법 알려줘",
			"구매 발주는 어떻게 하나요?",
			"출하 관리 방법",
			"회계 처리 방법",
		}
	}
}
