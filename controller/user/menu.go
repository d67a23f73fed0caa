package user

import (
	"github.com/gin-gonic/gin"

	"gitee.com/taoJie_1/erp-agent/model/common"
	"gitee.com/taoJie_1/erp-agent/service"
	"gitee.com/taoJie_1/erp-agent/task"
)

type MenuApi struct{}

// GetMenuTree 返回完整菜单目录, 每次调用取最新快照
func (d *MenuApi) GetMenuTree(ctx *gin.Context) {
	common.Success(ctx, service.Service.UserServiceGroup.MenuService.Tree())
}

// UpdateMenuTree 整体替换菜单目录
func (d *MenuApi) UpdateMenuTree(ctx *gin.Context) {
	var req common.MenuTreeUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		common.Fail(ctx, "参数无效")
		return
	}

	if err := service.Service.UserServiceGroup.MenuService.ReplaceTree(req.Categories); err != nil {
		common.Fail(ctx, err.Error())
		return
	}
	common.SuccessOk(ctx, "菜单目录已更新")
}

// ScanMenuTree 触发目录重建, 重建经防抖合并
func (d *MenuApi) ScanMenuTree(ctx *gin.Context) {
	task.NewManager().DebounceCatalogRescan()
	common.SuccessOk(ctx, "菜单目录重建任务已提交")
}
