package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitee.com/taoJie_1/erp-agent/global"
	"gitee.com/taoJie_1/erp-agent/model/enum"
)

// IAnswerService 生成式回答提供方
// 任何失败(网络/配额/超时)都只返回error, 由路由层降级处理
type IAnswerService interface {
	Answer(ctx context.Context, query string) (string, error)
}

type AnswerService struct{}

func NewAnswerService() *AnswerService {
	return &AnswerService{}
}

func (s *AnswerService) Answer(ctx context.Context, query string) (string, error) {
	if global.LlmService == nil {
		return "", errors.New("LLM服务未初始化")
	}
	if global.ErpStore == nil {
		return "", errors.New("ERP数据源未初始化")
	}

	// 提供方可能挂起, 必须带超时, 超时视为失败并走本地兜底
	timeout := time.Duration(global.Config.Ai.ProviderTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	content := fmt.Sprintf("사용자 질문: %s\n\n관련 ERP 데이터:\n%s\n\n위 데이터를 기반으로 사용자 질문에 답변해주세요.",
		query, global.ErpStore.ExtractRelevant(query))

	return global.LlmService.ChatCompletion(ctx, enum.ModelLarge, enum.SystemPromptErpAssistant, content, 0.2)
}
