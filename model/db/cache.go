package db

// QueryCache 问答缓存的持久化记录, 每个缓存键一行
// 记录一旦写入不再失效(无TTL), 重复提问直接复用
type QueryCache struct {
	BaseField
	CacheKey string `db:"cache_key" json:"cache_key" info:"查询内容的稳定哈希"`
	Query    string `db:"query" json:"query" info:"原始查询文本"`
	Mode     string `db:"mode" json:"mode" info:"端点变体, 空或enhanced"`
	Response string `db:"response" json:"response" info:"StructuredAnswer的JSON"`
	MenuPath string `db:"menu_path" json:"menu_path" info:"MenuPath的JSON"`
	// Timestamp 首次解答时刻(ISO-8601), 命中缓存时原样返回, 不刷新
	Timestamp string `db:"timestamp" json:"timestamp"`
}

func (QueryCache) TableName() string {
	return `query_cache`
}
