package config

type Database struct {
	Type          string `json:"type" mapstructure:"type" yaml:"type"`
	SqlitePath    string `json:"sqlite_path" mapstructure:"sqlite_path" yaml:"sqlite_path"`
	MysqlHost     string `json:"mysql_host" mapstructure:"mysql_host" yaml:"mysql_host"`
	MysqlPort     string `json:"mysql_port" mapstructure:"mysql_port" yaml:"mysql_port"`
	MysqlDbname   string `json:"mysql_dbname" mapstructure:"mysql_dbname" yaml:"mysql_dbname"`
	MysqlUsername string `json:"mysql_username" mapstructure:"mysql_username" yaml:"mysql_username"`
	MysqlPassword string `json:"mysql_password" mapstructure:"mysql_password" yaml:"mysql_password"`
}

type Redis struct {
	Addr        string `json:"addr" mapstructure:"addr" yaml:"addr"`
	Password    string `json:"password" mapstructure:"password" yaml:"password"`
	DB          int64  `json:"db" mapstructure:"db" yaml:"db"`
	CachePrefix string `json:"cache_prefix" mapstructure:"cache_prefix" yaml:"cache_prefix"`
}

type Llm struct {
	Url     string `json:"url" mapstructure:"url" yaml:"url"`
	Model   string `json:"model" mapstructure:"model" yaml:"model"`
	Auth    string `json:"auth" mapstructure:"auth" yaml:"auth"`
	Size    string `json:"size" mapstructure:"size" yaml:"size"`
	Timeout int64  `json:"timeout" mapstructure:"timeout" yaml:"timeout"`
	// Temperature 为空时使用模型默认值
	Temperature *float32 `json:"temperature" mapstructure:"temperature" yaml:"temperature"`
}

type Ai struct {
	MaxQueryLength uint `json:"max_query_length" mapstructure:"max_query_length" yaml:"max_query_length"`
	// ProviderTimeout LLM单次问答的超时秒数, 超时视为回答失败并走本地兜底
	ProviderTimeout int64    `json:"provider_timeout" mapstructure:"provider_timeout" yaml:"provider_timeout"`
	WarmupQueries   []string `json:"warmup_queries" mapstructure:"warmup_queries" yaml:"warmup_queries"`
	// RescanDebounce 菜单目录更新后延迟重建的秒数
	RescanDebounce int64 `json:"rescan_debounce" mapstructure:"rescan_debounce" yaml:"rescan_debounce"`
}

// ErpData ERP演示数据源, 键为数据源名, 值为JSON文件路径
type ErpData struct {
	Sources map[string]string `json:"sources" mapstructure:"sources" yaml:"sources"`
}
