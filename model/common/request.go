package common

import "gitee.com/taoJie_1/erp-agent/model/dto"

// ChatbotQueryRequest 标准问答请求体
type ChatbotQueryRequest struct {
	Query string `json:"query"`
}

// EnhancedQueryRequest 增强问答请求体, 可附带导航与引导步骤
type EnhancedQueryRequest struct {
	Query              string `json:"query"`
	IncludeNavigation  bool   `json:"includeNavigation"`
	IncludeDriverSteps bool   `json:"includeDriverSteps"`
}

// MenuTreeUpdateRequest 整体替换菜单目录的请求体
type MenuTreeUpdateRequest struct {
	Categories []dto.MenuCategory `json:"categories" binding:"required,min=1"`
}
