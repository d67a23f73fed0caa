package user

import (
	"context"
	"encoding/json"
	"time"

	"gitee.com/taoJie_1/erp-agent/global"
	"gitee.com/taoJie_1/erp-agent/model/common"
	"gitee.com/taoJie_1/erp-agent/model/db"
	"gitee.com/taoJie_1/erp-agent/model/dto"
	"gitee.com/taoJie_1/erp-agent/model/enum"
	"gitee.com/taoJie_1/erp-agent/utils"
)

// CacheStore 问答缓存的存取契约, 由dao层实现
type CacheStore interface {
	Get(ctx context.Context, cacheKey string) (*db.QueryCache, error)
	Put(ctx context.Context, rec *db.QueryCache) error
}

type IQueryService interface {
	// HandleQuery 标准问答, 任何内部错误都转为降级回答, 不向上抛
	HandleQuery(ctx context.Context, query string) *common.ChatbotResponse
	// HandleEnhancedQuery 增强问答, 附带导航与引导步骤
	HandleEnhancedQuery(ctx context.Context, req *common.EnhancedQueryRequest) *common.EnhancedChatbotResponse
}

// QueryService 问答路由: 缓存 → 生成式回答 → 本地规则兜底
type QueryService struct {
	cache    CacheStore
	provider IAnswerService
	menu     IMenuService
	intents  IIntentService
	post     IPostProcessService
}

func NewQueryService(cache CacheStore, provider IAnswerService, menu IMenuService, intents IIntentService, post IPostProcessService) *QueryService {
	return &QueryService{
		cache:    cache,
		provider: provider,
		menu:     menu,
		intents:  intents,
		post:     post,
	}
}

// degradedAnswer 路由边界兜底的降级回答
var degradedAnswer = common.StructuredAnswer{
	Title:   "오류 발생",
	Content: "죄송합니다. 질문 처리 중 오류가 발생했습니다. 다시 시도해주세요.",
}

func nowISO() string {
	now := time.Now()
	if global.Tz != nil {
		now = now.In(global.Tz)
	}
	return now.Format(time.RFC3339)
}

func (s *QueryService) HandleQuery(ctx context.Context, query string) (resp *common.ChatbotResponse) {
	defer func() {
		if r := recover(); r != nil {
			global.Log.Errorf("问答处理panic: %v", r)
			resp = &common.ChatbotResponse{
				Response:  degradedAnswer,
				MenuPath:  s.menu.CoercePath(defaultMenuPath),
				FromCache: false,
				Timestamp: nowISO(),
			}
		}
	}()

	key := utils.Hash(query)
	if answer, path, ts := s.readCache(ctx, key); answer != nil {
		// 命中缓存, 时间戳保持首次解答时刻
		return &common.ChatbotResponse{
			Response:  *answer,
			MenuPath:  path,
			FromCache: true,
			Timestamp: ts,
		}
	}

	answer, path, _ := s.resolve(ctx, query)
	resp = &common.ChatbotResponse{
		Response:  answer,
		MenuPath:  path,
		FromCache: false,
		Timestamp: nowISO(),
	}
	s.writeCache(ctx, key, query, "", resp.Response, resp.MenuPath, resp.Timestamp)
	return resp
}

// resolve 依次尝试生成式回答与本地规则, 返回回答/路径/来源
func (s *QueryService) resolve(ctx context.Context, query string) (common.StructuredAnswer, dto.MenuPath, enum.DataSource) {
	text, err := s.provider.Answer(ctx, query)
	if err == nil {
		cleaned := s.post.Clean(text, query)
		return common.StructuredAnswer{
			Title:   "ERP 데이터 분석 결과",
			Content: cleaned,
		}, s.providerPath(query, text), enum.DataSourceBackend
	}

	global.Log.Warnf("生成式回答失败, 走本地兜底: %v", err)
	return s.fallback(query)
}

// providerPath 先从回答文本推断路径, 无命中再看问题文本
func (s *QueryService) providerPath(query, answerText string) dto.MenuPath {
	if path, ok := inferPathFromText(answerText); ok {
		return s.menu.CoercePath(path)
	}
	path, _ := inferPathFromText(query)
	return s.menu.CoercePath(path)
}

// fallback 本地规则: 置信意图 → 分类规则链 → 通用引导
func (s *QueryService) fallback(query string) (common.StructuredAnswer, dto.MenuPath, enum.DataSource) {
	if intent, _, ok := s.intents.Classify(query); ok {
		if h, exists := intentAnswers[intent]; exists {
			return h.answer, s.menu.CoercePath(h.path), enum.DataSourceLocal
		}
	}

	if path, answer := matchCategoryRule(query); answer != nil {
		return *answer, s.menu.CoercePath(path), enum.DataSourceLocal
	}

	return genericHelpAnswer, s.menu.CoercePath(defaultMenuPath), enum.DataSourceLocal
}

// readCache 返回 (nil, nil, "") 表示未命中, 记录损坏按未命中处理
func (s *QueryService) readCache(ctx context.Context, key string) (*common.StructuredAnswer, dto.MenuPath, string) {
	rec, err := s.cache.Get(ctx, key)
	if err != nil {
		global.Log.Warnf("读取问答缓存失败, 降级为无缓存: %v", err)
		return nil, nil, ""
	}
	if rec == nil {
		return nil, nil, ""
	}

	var answer common.StructuredAnswer
	if err := json.Unmarshal([]byte(rec.Response), &answer); err != nil || answer.IsEmpty() {
		global.Log.Warnf("缓存回答损坏, 按未命中处理: key=%s", key)
		return nil, nil, ""
	}

	var path dto.MenuPath
	if rec.MenuPath != "" {
		if err := json.Unmarshal([]byte(rec.MenuPath), &path); err != nil {
			global.Log.Warnf("缓存路径损坏, 按未命中处理: key=%s", key)
			return nil, nil, ""
		}
	}
	return &answer, path, rec.Timestamp
}

// writeCache 缓存写入尽力而为, 失败只记日志
func (s *QueryService) writeCache(ctx context.Context, key, query, mode string, answer common.StructuredAnswer, path dto.MenuPath, timestamp string) {
	respRaw, err := json.Marshal(answer)
	if err != nil {
		return
	}
	pathRaw, err := json.Marshal(path)
	if err != nil {
		return
	}

	rec := &db.QueryCache{
		CacheKey:  key,
		Query:     query,
		Mode:      mode,
		Response:  string(respRaw),
		MenuPath:  string(pathRaw),
		Timestamp: timestamp,
	}
	if err := s.cache.Put(ctx, rec); err != nil {
		global.Log.Warnf("写入问答缓存失败: %v", err)
	}
}
