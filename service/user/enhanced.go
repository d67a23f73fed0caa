package user

import (
	"context"
	"strings"

	"gitee.com/taoJie_1/erp-agent/global"
	"gitee.com/taoJie_1/erp-agent/model/common"
	"gitee.com/taoJie_1/erp-agent/model/dto"
	"gitee.com/taoJie_1/erp-agent/model/enum"
	"gitee.com/taoJie_1/erp-agent/utils"
)

// 专属模式检测命中时的置信度
const patternConfidence = 0.95

// actionWords 出现时表示用户要执行新增类操作, 引导步骤可追加操作按钮
var actionWords = []string{"추가", "등록", "생성"}

// enhancedPatternIntents 增强模式的专属检测器对应的意图
// 命中后以手工编排的回答与导航覆盖通用解析结果
var enhancedPatternIntents = []enum.Intent{
	enum.IntentCreateOrder,
	enum.IntentAddCustomer,
}

func (s *QueryService) HandleEnhancedQuery(ctx context.Context, req *common.EnhancedQueryRequest) (resp *common.EnhancedChatbotResponse) {
	defer func() {
		if r := recover(); r != nil {
			global.Log.Errorf("增强问答处理panic: %v", r)
			resp = &common.EnhancedChatbotResponse{
				ChatbotResponse: common.ChatbotResponse{
					Response:  degradedAnswer,
					MenuPath:  s.menu.CoercePath(defaultMenuPath),
					FromCache: false,
					Timestamp: nowISO(),
				},
				Confidence: 0,
				DataSource: enum.DataSourceLocal,
			}
		}
	}()

	key := utils.Hash(req.Query + "|enhanced")
	if answer, path, ts := s.readCache(ctx, key); answer != nil {
		resp = &common.EnhancedChatbotResponse{
			ChatbotResponse: common.ChatbotResponse{
				Response:  *answer,
				MenuPath:  path,
				FromCache: true,
				Timestamp: ts,
			},
			Confidence: s.pathConfidence(req.Query, path),
			DataSource: enum.DataSourceCache,
		}
		s.attachNavigation(resp, req)
		return resp
	}

	answer, path, confidence, src := s.resolveEnhanced(ctx, req.Query)
	resp = &common.EnhancedChatbotResponse{
		ChatbotResponse: common.ChatbotResponse{
			Response:  answer,
			MenuPath:  path,
			FromCache: false,
			Timestamp: nowISO(),
		},
		Confidence: confidence,
		DataSource: src,
	}
	s.attachNavigation(resp, req)
	s.writeCache(ctx, key, req.Query, "enhanced", resp.Response, resp.MenuPath, resp.Timestamp)
	return resp
}

func (s *QueryService) resolveEnhanced(ctx context.Context, query string) (common.StructuredAnswer, dto.MenuPath, float64, enum.DataSource) {
	// 专属检测器优先于通用解析
	if intent, ok := s.detectPattern(query); ok {
		h := intentAnswers[intent]
		return h.answer, s.menu.CoercePath(h.path), patternConfidence, enum.DataSourceLocal
	}

	answer, path, src := s.resolve(ctx, query)
	confidence := s.pathConfidence(query, path)
	if src == enum.DataSourceLocal && answer.Title == genericHelpAnswer.Title {
		// 通用引导回答, 置信度固定
		confidence = 0.5
	}
	return answer, path, confidence, src
}

// detectPattern 仅对配有手工编排载荷的意图生效
func (s *QueryService) detectPattern(query string) (enum.Intent, bool) {
	intent, _, ok := s.intents.Classify(query)
	if !ok {
		return "", false
	}
	if utils.InSlice(enhancedPatternIntents, intent) == -1 {
		return "", false
	}
	return intent, true
}

// pathConfidence 以问题词与定位菜单名的重合度估算置信度, 上限0.95
func (s *QueryService) pathConfidence(query string, path dto.MenuPath) float64 {
	if len(path) < 2 {
		return 0.5
	}
	nav := s.menu.BuildNavigationPath(path[0], path[1])
	if nav == nil {
		return 0.5
	}

	words := strings.Fields(normalizeQuery(query))
	if len(words) == 0 {
		return 0.5
	}
	pathText := strings.ToLower(nav.CategoryName + " " + nav.MenuName)

	matches := 0
	for _, w := range words {
		if strings.Contains(pathText, w) {
			matches++
		}
	}
	confidence := float64(matches) / float64(len(words))
	if confidence > patternConfidence {
		confidence = patternConfidence
	}
	return confidence
}

// attachNavigation 按请求开关附加导航定位与引导步骤
func (s *QueryService) attachNavigation(resp *common.EnhancedChatbotResponse, req *common.EnhancedQueryRequest) {
	if len(resp.MenuPath) < 2 {
		return
	}
	nav := s.menu.BuildNavigationPath(resp.MenuPath[0], resp.MenuPath[1])
	if nav == nil {
		return
	}

	resp.IncludeActionButton = utils.ContainsAny(req.Query, actionWords) &&
		(nav.MenuID == "customers" || nav.MenuID == "orders")

	if req.IncludeNavigation {
		resp.NavigationPath = nav
	}
	if req.IncludeDriverSteps {
		resp.DriverSteps = s.menu.BuildDriverSteps(nav, resp.IncludeActionButton)
	}
}
