package enum

type DbType string

const (
	MYSQL  DbType = `mysql`
	SQLITE DbType = `sqlite3`
)

type Msg string

const (
	DefaultSuccessMsg Msg = `ok`
	DefaultFailMsg    Msg = `错误`
)

type ResCode int8

const (
	SuccessCode   ResCode = 0
	ErrorCode     ResCode = 1
	AuthErrorCode ResCode = 2
)

type LlmSize string

const (
	ModelSmall  LlmSize = "small"
	ModelMedium LlmSize = "medium"
	ModelLarge  LlmSize = "large"
)

// DataSource 标识一次回答的来源层级
type DataSource string

const (
	DataSourceBackend DataSource = "backend" // LLM基于ERP数据生成
	DataSourceCache   DataSource = "cache"   // 命中历史缓存
	DataSourceLocal   DataSource = "local"   // 本地规则兜底
)

// Intent 意图分类器可识别的用户意图
// 评估顺序固定, 见 IntentPriority
type Intent string

const (
	IntentCreateOrder     Intent = "create_order"     // 新建销售订单
	IntentAddCustomer     Intent = "add_customer"     // 新增客户
	IntentCheckInventory  Intent = "check_inventory"  // 查询库存
	IntentManagePayroll   Intent = "manage_payroll"   // 薪资管理
	IntentProductionOrder Intent = "production_order" // 生产订单
	IntentViewDashboard   Intent = "view_dashboard"   // 查看仪表盘
)

// IntentPriority 意图优先级, 多个意图同时超过阈值时按此顺序取第一个
// 依赖map遍历顺序会导致结果不稳定, 必须使用该切片
var IntentPriority = []Intent{
	IntentCreateOrder,
	IntentAddCustomer,
	IntentCheckInventory,
	IntentManagePayroll,
	IntentProductionOrder,
	IntentViewDashboard,
}
