package user

import (
	"errors"
	"fmt"
	"strings"

	"gitee.com/taoJie_1/erp-agent/global"
	"gitee.com/taoJie_1/erp-agent/model/dto"
	"gitee.com/taoJie_1/erp-agent/utils"
)

// defaultMenuPath 所有解析失败时的兜底路径
var defaultMenuPath = dto.MenuPath{"reports-analytics", "dashboard"}

// answerPathRule 从自由文本推断路径的扁平规则, 无子规则, 首个命中即返回
type answerPathRule struct {
	keyword string
	path    dto.MenuPath
}

// answerPathRules 顺序即优先级
var answerPathRules = []answerPathRule{
	{"근태", dto.MenuPath{"hr-payroll", "attendance"}},
	{"급여", dto.MenuPath{"hr-payroll", "payroll"}},
	{"인사", dto.MenuPath{"hr-payroll", "employees"}},
	{"생산", dto.MenuPath{"production-mrp", "production-orders"}},
	{"작업", dto.MenuPath{"production-mrp", "work-instructions"}},
	{"BOM", dto.MenuPath{"production-mrp", "bom"}},
	{"재고", dto.MenuPath{"inventory-purchase", "inventory"}},
	{"구매", dto.MenuPath{"inventory-purchase", "purchase-orders"}},
	{"공급", dto.MenuPath{"inventory-purchase", "suppliers"}},
	{"판매", dto.MenuPath{"sales-customer", "sales-orders"}},
	{"고객", dto.MenuPath{"sales-customer", "customers"}},
	{"CRM", dto.MenuPath{"sales-customer", "crm-pipeline"}},
	{"출하", dto.MenuPath{"logistics-shipping", "shipping"}},
	{"배송", dto.MenuPath{"logistics-shipping", "delivery"}},
	{"회계", dto.MenuPath{"finance-accounting", "accounting"}},
	{"예산", dto.MenuPath{"finance-accounting", "budget"}},
	{"세금", dto.MenuPath{"finance-accounting", "tax"}},
	{"보고서", dto.MenuPath{"reports-analytics", "reports"}},
	{"분석", dto.MenuPath{"reports-analytics", "analytics"}},
	{"대시보드", dto.MenuPath{"reports-analytics", "dashboard"}},
}

type IMenuService interface {
	// Tree 每次调用从目录源取最新快照
	Tree() dto.MenuTree
	// ReplaceTree 整体替换目录
	ReplaceTree(categories []dto.MenuCategory) error
	// RebuildTree 从内置页面定义重建目录
	RebuildTree() dto.MenuTree
	// Resolve 按问题文本解析菜单路径, 见规则链
	Resolve(query string) dto.MenuPath
	// ResolveFromText 从回答文本推断路径的扁平规则变体
	ResolveFromText(text string) dto.MenuPath
	// CoercePath 校验路径在目录中存在, 不存在则降级
	CoercePath(path dto.MenuPath) dto.MenuPath
	BuildNavigationPath(categoryID, menuID string) *dto.NavigationPath
	BuildDriverSteps(nav *dto.NavigationPath, includeActionButton bool) []dto.DriverStep
}

type MenuService struct{}

func NewMenuService() *MenuService {
	return &MenuService{}
}

// DefaultMenuTree 内置的页面目录
// 扫描接口的目录源是黑盒, 这里以静态页面表代替
func DefaultMenuTree() dto.MenuTree {
	return dto.MenuTree{Categories: []dto.MenuCategory{
		{ID: "sales-customer", Name: "영업/고객", Children: []dto.MenuItem{
			{ID: "crm-pipeline", Name: "CRM 파이프라인", Path: "/crm-pipeline", Description: "영업 기회 관리 및 고객 파이프라인 추적"},
			{ID: "sales-orders", Name: "판매 주문", Path: "/sales-orders", Description: "판매 주문 접수 및 처리"},
			{ID: "customers", Name: "고객 관리", Path: "/customers", Description: "고객 정보 등록, 수정, 조회", ActionButtons: []string{"새 고객 추가"}},
			{ID: "orders", Name: "주문 관리", Path: "/orders", Description: "고객 주문 접수 및 처리", ActionButtons: []string{"새 주문 생성"}},
			{ID: "quotes", Name: "견적 관리", Path: "/quotes", Description: "고객 견적서 작성 및 관리"},
			{ID: "sales-analytics", Name: "영업 분석", Path: "/sales-analytics", Description: "영업 실적 및 성과 분석"},
		}},
		{ID: "production-mrp", Name: "생산/MRP", Children: []dto.MenuItem{
			{ID: "production-orders", Name: "생산 오더", Path: "/production-orders", Description: "생산 계획 및 작업 지시 관리"},
			{ID: "work-instructions", Name: "작업 지시", Path: "/work-instructions", Description: "상세 작업 지시 및 진행 상황 관리"},
			{ID: "bom", Name: "BOM 관리", Path: "/bom", Description: "제품 구성 정보 및 자재 소요량 관리"},
		}},
		{ID: "inventory-purchase", Name: "재고/구매", Children: []dto.MenuItem{
			{ID: "inventory", Name: "재고 관리", Path: "/inventory", Description: "재고 현황 조회 및 입출고 관리"},
			{ID: "purchase-orders", Name: "구매 발주", Path: "/purchase-orders", Description: "구매 발주 및 입고 처리"},
			{ID: "suppliers", Name: "공급업체", Path: "/suppliers", Description: "공급업체 정보 및 거래 관리"},
		}},
		{ID: "hr-payroll", Name: "인사/급여", Children: []dto.MenuItem{
			{ID: "employees", Name: "직원 관리", Path: "/employees", Description: "직원 정보 및 조직 관리"},
			{ID: "attendance", Name: "근태 관리", Path: "/attendance", Description: "출퇴근 및 근무 시간 관리"},
			{ID: "payroll", Name: "급여 관리", Path: "/payroll", Description: "급여 계산 및 지급 관리"},
		}},
		{ID: "logistics-shipping", Name: "물류/출하", Children: []dto.MenuItem{
			{ID: "shipping", Name: "출하 관리", Path: "/shipping", Description: "제품 출하 및 배송 관리"},
			{ID: "delivery", Name: "배송 관리", Path: "/delivery", Description: "배송 일정 및 상태 관리"},
		}},
		{ID: "finance-accounting", Name: "재무/회계", Children: []dto.MenuItem{
			{ID: "accounting", Name: "회계 관리", Path: "/accounting", Description: "회계 처리 및 장부 관리"},
			{ID: "budget", Name: "예산 관리", Path: "/budget", Description: "예산 계획 및 실행 관리"},
			{ID: "tax", Name: "세금 관리", Path: "/tax", Description: "세무 신고 및 관리"},
		}},
		{ID: "reports-analytics", Name: "보고서/분석", Children: []dto.MenuItem{
			{ID: "reports", Name: "보고서", Path: "/reports", Description: "각종 업무 보고서 조회"},
			{ID: "analytics", Name: "분석", Path: "/analytics", Description: "업무 데이터 분석"},
			{ID: "dashboard", Name: "대시보드", Path: "/dashboard", Description: "주요 지표 및 그래프 조회"},
		}},
	}}
}

func (s *MenuService) Tree() dto.MenuTree {
	return global.MenuCatalog.Snapshot()
}

func (s *MenuService) ReplaceTree(categories []dto.MenuCategory) error {
	seen := make(map[string]struct{}, len(categories))
	for i := range categories {
		if categories[i].ID == "" || categories[i].Name == "" {
			return fmt.Errorf("第%d个分类缺少id或name", i+1)
		}
		if _, ok := seen[categories[i].ID]; ok {
			return errors.New("分类id重复: " + categories[i].ID)
		}
		seen[categories[i].ID] = struct{}{}
	}

	global.MenuCatalog.Replace(dto.MenuTree{Categories: categories})
	return nil
}

func (s *MenuService) RebuildTree() dto.MenuTree {
	tree := DefaultMenuTree()
	global.MenuCatalog.Replace(tree)
	return tree
}

// Resolve 对原文做子串匹配, 不归一化, 以保留领域缩写的精确命中
func (s *MenuService) Resolve(query string) dto.MenuPath {
	for i := range categoryRules {
		rule := &categoryRules[i]
		if !utils.ContainsAny(query, rule.keywords) {
			continue
		}
		for j := range rule.sub {
			if utils.ContainsAny(query, rule.sub[j].keywords) {
				return s.CoercePath(rule.sub[j].path)
			}
		}
		return s.CoercePath(rule.path)
	}
	return s.CoercePath(defaultMenuPath)
}

func (s *MenuService) ResolveFromText(text string) dto.MenuPath {
	path, _ := inferPathFromText(text)
	return s.CoercePath(path)
}

// inferPathFromText 返回未校验的路径与是否命中
func inferPathFromText(text string) (dto.MenuPath, bool) {
	for _, rule := range answerPathRules {
		if strings.Contains(text, rule.keyword) {
			return rule.path, true
		}
	}
	return defaultMenuPath, false
}

// CoercePath 保证返回的路径指向目录中真实存在的分类与页面
// 分类不存在降级为默认路径, 默认分类也不存在时返回空路径
func (s *MenuService) CoercePath(path dto.MenuPath) dto.MenuPath {
	tree := s.Tree()
	if len(path) == 0 {
		return path
	}

	cat := tree.FindCategory(path[0])
	if cat == nil {
		if path.Equal(defaultMenuPath) {
			return dto.MenuPath{}
		}
		return s.CoercePath(defaultMenuPath)
	}
	if len(path) == 1 {
		return path
	}

	for i := range cat.Children {
		if cat.Children[i].ID == path[1] {
			return path
		}
	}
	// 页面不在该分类下, 退为仅分类定位
	return dto.MenuPath{path[0]}
}

func (s *MenuService) BuildNavigationPath(categoryID, menuID string) *dto.NavigationPath {
	tree := s.Tree()
	cat, item := tree.FindItem(categoryID, menuID)
	if cat == nil || item == nil {
		return nil
	}

	desc := item.Description
	if desc == "" {
		desc = "해당 페이지에서 작업을 진행하세요."
	}
	return &dto.NavigationPath{
		CategoryID:   cat.ID,
		CategoryName: cat.Name,
		MenuID:       item.ID,
		MenuName:     item.Name,
		Path:         item.Path,
		Steps: []string{
			fmt.Sprintf("좌측 메뉴에서 \"%s\" 섹션을 클릭하세요.", cat.Name),
			fmt.Sprintf("\"%s\" 메뉴를 선택하세요.", item.Name),
			desc,
		},
	}
}

// BuildDriverSteps 生成前端逐步高亮的引导步骤
// 固定两步定位, customers/orders 页面可追加操作按钮第三步
func (s *MenuService) BuildDriverSteps(nav *dto.NavigationPath, includeActionButton bool) []dto.DriverStep {
	if nav == nil {
		return nil
	}

	steps := []dto.DriverStep{
		{
			Element: fmt.Sprintf(`[data-section-id="%s"]`, nav.CategoryID),
			Popover: dto.DriverStepPopover{
				Title:       "1단계: 메뉴 섹션",
				Description: fmt.Sprintf("\"%s\" 섹션을 클릭하여 확장하세요.", nav.CategoryName),
				Side:        "right",
				Align:       "start",
			},
		},
		{
			Element: fmt.Sprintf(`[data-menu="%s"]`, nav.MenuID),
			Popover: dto.DriverStepPopover{
				Title:       "2단계: 메뉴 항목",
				Description: fmt.Sprintf("\"%s\" 메뉴를 클릭하여 해당 페이지로 이동하세요.", nav.MenuName),
				Side:        "right",
				Align:       "start",
			},
		},
	}

	if !includeActionButton {
		return steps
	}

	switch nav.MenuID {
	case "customers":
		steps = append(steps, dto.DriverStep{
			Element: `[data-action="add-customer"]`,
			Popover: dto.DriverStepPopover{
				Title:       "3단계: 새 고객 추가",
				Description: "이 버튼을 클릭하여 새로운 고객을 추가하세요.",
				Side:        "right",
				Align:       "start",
			},
		})
	case "orders":
		steps = append(steps, dto.DriverStep{
			Element: `[data-action="create-order"]`,
			Popover: dto.DriverStepPopover{
				Title:       "3단계: 새 주문 생성",
				Description: "이 버튼을 클릭하여 새로운 주문을 생성하세요.",
				Side:        "right",
				Align:       "start",
			},
		})
	}
	return steps
}
