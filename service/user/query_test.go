package user

import (
	"context"
	"errors"
	"testing"

	"gitee.com/taoJie_1/erp-agent/model/db"
	"gitee.com/taoJie_1/erp-agent/model/dto"
)

// memCache 内存缓存桩
type memCache struct {
	records map[string]*db.QueryCache
	getErr  error
	putErr  error
}

func newMemCache() *memCache {
	return &memCache{records: make(map[string]*db.QueryCache)}
}

func (c *memCache) Get(ctx context.Context, cacheKey string) (*db.QueryCache, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.records[cacheKey], nil
}

func (c *memCache) Put(ctx context.Context, rec *db.QueryCache) error {
	if c.putErr != nil {
		return c.putErr
	}
	c.records[rec.CacheKey] = rec
	return nil
}

// stubProvider 生成式回答桩
type stubProvider struct {
	text string
	err  error
}

func (p *stubProvider) Answer(ctx context.Context, query string) (string, error) {
	return p.text, p.err
}

type panicProvider struct{}

func (p *panicProvider) Answer(ctx context.Context, query string) (string, error) {
	panic("provider exploded")
}

func newTestQueryService(cache CacheStore, provider IAnswerService) *QueryService {
	return NewQueryService(cache, provider, NewMenuService(), NewIntentService(), NewPostProcessService())
}

func TestHandleQueryProviderSuccess(t *testing.T) {
	cache := newMemCache()
	s := newTestQueryService(cache, &stubProvider{text: "### 재고 현황\n볼트 M8 재고는 120개입니다."})

	resp := s.HandleQuery(context.Background(), "볼트 재고 얼마나 남았어?")
	if resp.Response.Title != "ERP 데이터 분석 결과" {
		t.Errorf("title = %q", resp.Response.Title)
	}
	if resp.Response.Content == "" {
		t.Error("正文不应为空")
	}
	// 路径从回答文本推断: 回答含"재고"
	if !resp.MenuPath.Equal(dto.MenuPath{"inventory-purchase", "inventory"}) {
		t.Errorf("menuPath = %v", resp.MenuPath)
	}
	if resp.FromCache {
		t.Error("首答不应标记缓存命中")
	}
	if resp.Timestamp == "" {
		t.Error("时间戳不应为空")
	}
}

func TestHandleQueryProviderFailureFallback(t *testing.T) {
	cache := newMemCache()
	s := newTestQueryService(cache, &stubProvider{err: errors.New("quota exceeded")})

	// 置信意图 → 专属回答
	resp := s.HandleQuery(context.Background(), "새 주문 생성 방법")
	if resp.Response.Title != "새 주문 생성 방법" {
		t.Errorf("title = %q", resp.Response.Title)
	}
	if len(resp.Response.Steps) != 5 {
		t.Errorf("steps = %d, 期望 5", len(resp.Response.Steps))
	}
	if !resp.MenuPath.Equal(dto.MenuPath{"sales-customer", "orders"}) {
		t.Errorf("menuPath = %v", resp.MenuPath)
	}

	// 意图不置信 → 分类规则链
	resp = s.HandleQuery(context.Background(), "재고 관리는 어떻게 하나요?")
	if resp.Response.Title != "재고 관리 방법" {
		t.Errorf("title = %q", resp.Response.Title)
	}
	if !resp.MenuPath.Equal(dto.MenuPath{"inventory-purchase", "inventory"}) {
		t.Errorf("menuPath = %v", resp.MenuPath)
	}

	// 规则链全部未命中 → 通用引导
	resp = s.HandleQuery(context.Background(), "오늘 점심 추천해줘")
	if resp.Response.Title != "도움이 필요하신가요?" {
		t.Errorf("title = %q", resp.Response.Title)
	}
	if !resp.MenuPath.Equal(dto.MenuPath{"reports-analytics", "dashboard"}) {
		t.Errorf("menuPath = %v", resp.MenuPath)
	}
}

// 同一问题重复提问: 第二次命中缓存, 回答与路径不变, 时间戳保持首答时刻
func TestHandleQueryCacheIdempotent(t *testing.T) {
	cache := newMemCache()
	s := newTestQueryService(cache, &stubProvider{err: errors.New("down")})

	first := s.HandleQuery(context.Background(), "급여 관리 방법 알려줘")
	if first.FromCache {
		t.Fatal("首答不应命中缓存")
	}

	second := s.HandleQuery(context.Background(), "급여 관리 방법 알려줘")
	if !second.FromCache {
		t.Fatal("复问应命中缓存")
	}
	if second.Response.Title != first.Response.Title || second.Response.Content != first.Response.Content {
		t.Error("缓存回答与首答不一致")
	}
	if !second.MenuPath.Equal(first.MenuPath) {
		t.Errorf("缓存路径 %v != 首答路径 %v", second.MenuPath, first.MenuPath)
	}
	if second.Timestamp != first.Timestamp {
		t.Errorf("缓存时间戳应保持首答时刻: %q != %q", second.Timestamp, first.Timestamp)
	}
}

// 缓存键只看问题文本, 不同问题互不串扰
func TestHandleQueryCacheKeyedByQuery(t *testing.T) {
	cache := newMemCache()
	s := newTestQueryService(cache, &stubProvider{err: errors.New("down")})

	a := s.HandleQuery(context.Background(), "급여 관리 방법 알려줘")
	b := s.HandleQuery(context.Background(), "출하 관리 방법")
	if a.Response.Title == b.Response.Title {
		t.Error("不同问题不应串缓存")
	}
	if b.FromCache {
		t.Error("新问题不应命中缓存")
	}
}

// 缓存层完全不可用时服务照常回答
func TestHandleQueryCacheUnavailable(t *testing.T) {
	cache := newMemCache()
	cache.getErr = errors.New("redis down")
	cache.putErr = errors.New("db down")
	s := newTestQueryService(cache, &stubProvider{err: errors.New("down")})

	resp := s.HandleQuery(context.Background(), "재고 관리는 어떻게 하나요?")
	if resp.Response.IsEmpty() {
		t.Error("缓存不可用时仍应返回回答")
	}
	if resp.FromCache {
		t.Error("缓存不可用不应标记命中")
	}
}

// 缓存记录损坏按未命中处理, 重新解答
func TestHandleQueryCorruptedCache(t *testing.T) {
	cache := newMemCache()
	s := newTestQueryService(cache, &stubProvider{err: errors.New("down")})

	first := s.HandleQuery(context.Background(), "출하 관리 방법")
	for key, rec := range cache.records {
		rec.Response = "{not json"
		cache.records[key] = rec
	}

	resp := s.HandleQuery(context.Background(), "출하 관리 방법")
	if resp.FromCache {
		t.Error("损坏记录不应算命中")
	}
	if resp.Response.Title != first.Response.Title {
		t.Error("重新解答结果应与首答一致")
	}
}

// 任何内部panic都转为降级回答, 不向上传播
func TestHandleQueryPanicDegraded(t *testing.T) {
	cache := newMemCache()
	s := newTestQueryService(cache, &panicProvider{})

	resp := s.HandleQuery(context.Background(), "이상한 질문")
	if resp == nil {
		t.Fatal("panic后仍应返回响应")
	}
	if resp.Response.Title != "오류 발생" {
		t.Errorf("title = %q, 期望降级回答", resp.Response.Title)
	}
	if len(resp.MenuPath) == 0 {
		t.Error("降级回答也应带路径")
	}
}
