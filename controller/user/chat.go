package user

import (
	"github.com/gin-gonic/gin"

	"gitee.com/taoJie_1/erp-agent/model/common"
	"gitee.com/taoJie_1/erp-agent/service"
)

type ChatApi struct{}

// HandleQuery 标准问答
func (d *ChatApi) HandleQuery(ctx *gin.Context) {
	var req common.ChatbotQueryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "参数无效")
		return
	}

	if err := service.Service.UserServiceGroup.Validator.ValidatorQuery(req.Query); err != nil {
		common.Fail(ctx, err.Error())
		return
	}

	resp := service.Service.UserServiceGroup.QueryService.HandleQuery(ctx.Request.Context(), req.Query)
	common.Success(ctx, resp)
}

// HandleEnhancedQuery 增强问答, 附带导航定位与引导步骤
func (d *ChatApi) HandleEnhancedQuery(ctx *gin.Context) {
	var req common.EnhancedQueryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "参数无效")
		return
	}

	if err := service.Service.UserServiceGroup.Validator.ValidatorQuery(req.Query); err != nil {
		common.Fail(ctx, err.Error())
		return
	}

	resp := service.Service.UserServiceGroup.QueryService.HandleEnhancedQuery(ctx.Request.Context(), &req)
	common.Success(ctx, resp)
}
