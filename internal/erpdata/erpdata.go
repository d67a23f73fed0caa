package erpdata

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// sheetKeywords 查询关键词到数据源的路由表
// 数据源名需与配置中 erp_data.sources 的键一致
var sheetKeywords = map[string][]string{
	"attendance": {"근태", "출근", "퇴근", "휴가", "연차"},
	"payroll":    {"급여", "연봉", "월급", "수당", "상여"},
	"production": {"생산", "작업지시", "작업 지시", "공정", "mrp"},
	"inventory":  {"재고", "입고", "출고", "창고", "자재"},
	"sales":      {"판매", "주문", "매출", "수주", "견적"},
	"customers":  {"고객", "거래처", "crm"},
	"purchase":   {"구매", "발주", "공급업체", "매입"},
	"accounting": {"회계", "세금", "예산", "전표", "정산"},
	"bom":        {"bom", "부품", "소요량"},
	"shipping":   {"출하", "배송", "납품", "운송"},
	"hr":         {"인사", "직원", "사원", "조직"},
}

const (
	maxRowsPerSheet = 50
	maxContextRunes = 8000
)

// Store ERP演示数据的只读内存仓库
// 每个数据源是一份JSON行集, 启动时全量加载
type Store struct {
	log    *logrus.Logger
	mu     sync.RWMutex
	sheets map[string]json.RawMessage
}

func NewStore(log *logrus.Logger) *Store {
	return &Store{
		log:    log,
		sheets: make(map[string]json.RawMessage),
	}
}

// Load 加载全部数据源, 单个文件失败不中断其余加载
func (s *Store) Load(sources map[string]string) error {
	loaded := make(map[string]json.RawMessage, len(sources))
	var lastErr error
	for name, path := range sources {
		raw, err := os.ReadFile(path)
		if err != nil {
			s.log.Warnf("读取ERP数据源[%s]失败: %v", name, err)
			lastErr = err
			continue
		}
		if !json.Valid(raw) {
			s.log.Warnf("ERP数据源[%s]不是合法JSON, 已跳过", name)
			lastErr = fmt.Errorf("数据源[%s]格式错误", name)
			continue
		}
		loaded[name] = compact(name, raw)
	}

	s.mu.Lock()
	s.sheets = loaded
	s.mu.Unlock()
	return lastErr
}

// compact 截断过大的行集, 避免提示词超长
func compact(name string, raw json.RawMessage) json.RawMessage {
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		// 非数组结构(如汇总对象)原样保留
		return raw
	}
	if len(rows) <= maxRowsPerSheet {
		return raw
	}
	out, err := json.Marshal(rows[:maxRowsPerSheet])
	if err != nil {
		return raw
	}
	return out
}

// SheetNames 返回已加载的数据源名, 排序保证稳定
func (s *Store) SheetNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.sheets))
	for name := range s.sheets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExtractRelevant 根据查询中的领域关键词挑选相关数据源, 拼装为提示词上下文
// 无任何关键词命中时返回全部数据源的截断内容
func (s *Store) ExtractRelevant(query string) string {
	lowered := strings.ToLower(query)

	matched := make([]string, 0, 4)
	for _, name := range s.SheetNames() {
		for _, kw := range sheetKeywords[name] {
			if strings.Contains(lowered, kw) {
				matched = append(matched, name)
				break
			}
		}
	}
	if len(matched) == 0 {
		matched = s.SheetNames()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	for _, name := range matched {
		raw, ok := s.sheets[name]
		if !ok {
			continue
		}
		section := fmt.Sprintf("### %s\n%s\n", name, raw)
		if len([]rune(b.String()))+len([]rune(section)) > maxContextRunes {
			break
		}
		b.WriteString(section)
	}
	return b.String()
}
