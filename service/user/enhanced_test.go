package user

import (
	"context"
	"errors"
	"math"
	"testing"

	"gitee.com/taoJie_1/erp-agent/model/common"
	"gitee.com/taoJie_1/erp-agent/model/dto"
	"gitee.com/taoJie_1/erp-agent/model/enum"
)

// 专属检测器命中: 手工编排回答 + 固定置信度0.95
func TestEnhancedPatternAddCustomer(t *testing.T) {
	cache := newMemCache()
	s := newTestQueryService(cache, &stubProvider{err: errors.New("down")})

	resp := s.HandleEnhancedQuery(context.Background(), &common.EnhancedQueryRequest{
		Query:              "영업 고객 추가방법 알려줘",
		IncludeNavigation:  true,
		IncludeDriverSteps: true,
	})

	if resp.Response.Title != "고객 추가 방법" {
		t.Errorf("title = %q", resp.Response.Title)
	}
	if !resp.MenuPath.Equal(dto.MenuPath{"sales-customer", "customers"}) {
		t.Errorf("menuPath = %v", resp.MenuPath)
	}
	if resp.Confidence != patternConfidence {
		t.Errorf("confidence = %v, 期望 %v", resp.Confidence, patternConfidence)
	}
	if resp.DataSource != enum.DataSourceLocal {
		t.Errorf("dataSource = %v", resp.DataSource)
	}

	if resp.NavigationPath == nil {
		t.Fatal("请求了导航但响应缺失")
	}
	if resp.NavigationPath.MenuID != "customers" {
		t.Errorf("导航菜单 = %q", resp.NavigationPath.MenuID)
	}

	// 问题含"추가"且定位到customers页面 → 追加操作按钮第三步
	if !resp.IncludeActionButton {
		t.Error("应标记操作按钮")
	}
	if len(resp.DriverSteps) != 3 {
		t.Fatalf("driverSteps = %d, 期望 3", len(resp.DriverSteps))
	}
	if resp.DriverSteps[2].Element != `[data-action="add-customer"]` {
		t.Errorf("第三步选择器 = %q", resp.DriverSteps[2].Element)
	}
}

func TestEnhancedPatternCreateOrder(t *testing.T) {
	cache := newMemCache()
	s := newTestQueryService(cache, &stubProvider{err: errors.New("down")})

	resp := s.HandleEnhancedQuery(context.Background(), &common.EnhancedQueryRequest{
		Query:              "새 주문 생성 방법",
		IncludeDriverSteps: true,
	})

	if resp.Response.Title != "새 주문 생성 방법" {
		t.Errorf("title = %q", resp.Response.Title)
	}
	if len(resp.Response.Steps) != 5 {
		t.Errorf("steps = %d, 期望 5", len(resp.Response.Steps))
	}
	if !resp.MenuPath.Equal(dto.MenuPath{"sales-customer", "orders"}) {
		t.Errorf("menuPath = %v", resp.MenuPath)
	}
	if resp.Confidence != patternConfidence {
		t.Errorf("confidence = %v", resp.Confidence)
	}
	// 未请求导航时不返回导航体, 但引导步骤照常
	if resp.NavigationPath != nil {
		t.Error("未请求导航不应返回导航体")
	}
	if len(resp.DriverSteps) != 3 || resp.DriverSteps[2].Element != `[data-action="create-order"]` {
		t.Errorf("driverSteps不符: %+v", resp.DriverSteps)
	}
}

// 非专属意图走通用解析, 置信度按问题词与菜单名的重合度估算
func TestEnhancedFallbackConfidence(t *testing.T) {
	cache := newMemCache()
	s := newTestQueryService(cache, &stubProvider{err: errors.New("down")})

	resp := s.HandleEnhancedQuery(context.Background(), &common.EnhancedQueryRequest{
		Query: "재고 관리는 어떻게 하나요?",
	})

	if resp.Response.Title != "재고 관리 방법" {
		t.Errorf("title = %q", resp.Response.Title)
	}
	// 4词中仅"재고"与"재고/구매 재고 관리"重合 → 0.25
	if math.Abs(resp.Confidence-0.25) > 1e-9 {
		t.Errorf("confidence = %v, 期望 0.25", resp.Confidence)
	}
	if resp.DataSource != enum.DataSourceLocal {
		t.Errorf("dataSource = %v", resp.DataSource)
	}
}

// 通用引导回答的置信度固定为0.5
func TestEnhancedGenericConfidence(t *testing.T) {
	cache := newMemCache()
	s := newTestQueryService(cache, &stubProvider{err: errors.New("down")})

	resp := s.HandleEnhancedQuery(context.Background(), &common.EnhancedQueryRequest{
		Query: "오늘 점심 추천해줘",
	})
	if resp.Response.Title != "도움이 필요하신가요?" {
		t.Errorf("title = %q", resp.Response.Title)
	}
	if resp.Confidence != 0.5 {
		t.Errorf("confidence = %v, 期望 0.5", resp.Confidence)
	}
}

// 增强缓存: 回答与路径来自缓存, 导航/引导/置信度每次重算
func TestEnhancedCacheHit(t *testing.T) {
	cache := newMemCache()
	s := newTestQueryService(cache, &stubProvider{err: errors.New("down")})

	req := &common.EnhancedQueryRequest{
		Query:              "영업 고객 추가방법 알려줘",
		IncludeNavigation:  true,
		IncludeDriverSteps: true,
	}

	first := s.HandleEnhancedQuery(context.Background(), req)
	second := s.HandleEnhancedQuery(context.Background(), req)

	if !second.FromCache {
		t.Fatal("复问应命中缓存")
	}
	if second.DataSource != enum.DataSourceCache {
		t.Errorf("dataSource = %v, 期望 cache", second.DataSource)
	}
	if second.Response.Title != first.Response.Title {
		t.Error("缓存回答与首答不一致")
	}
	if second.Timestamp != first.Timestamp {
		t.Error("缓存时间戳应保持首答时刻")
	}
	if second.NavigationPath == nil || len(second.DriverSteps) != 3 {
		t.Error("缓存命中时导航与引导应重算附加")
	}
}

// 标准与增强问答的缓存互相隔离
func TestEnhancedCacheIsolatedFromBasic(t *testing.T) {
	cache := newMemCache()
	s := newTestQueryService(cache, &stubProvider{err: errors.New("down")})

	s.HandleQuery(context.Background(), "급여 관리 방법 알려줘")
	resp := s.HandleEnhancedQuery(context.Background(), &common.EnhancedQueryRequest{Query: "급여 관리 방법 알려줘"})
	if resp.FromCache {
		t.Error("增强问答不应命中标准问答的缓存")
	}
}

func TestEnhancedPanicDegraded(t *testing.T) {
	cache := newMemCache()
	s := newTestQueryService(cache, &panicProvider{})

	resp := s.HandleEnhancedQuery(context.Background(), &common.EnhancedQueryRequest{Query: "이상한 질문"})
	if resp == nil {
		t.Fatal("panic后仍应返回响应")
	}
	if resp.Response.Title != "오류 발생" {
		t.Errorf("title = %q", resp.Response.Title)
	}
	if resp.Confidence != 0 {
		t.Errorf("降级回答置信度 = %v, 期望 0", resp.Confidence)
	}
}
