package router

import (
	"gitee.com/taoJie_1/erp-agent/controller"
	"gitee.com/taoJie_1/erp-agent/middleware"
	"gitee.com/taoJie_1/erp-agent/model/common"

	"github.com/gin-gonic/gin"
)

func Start(ginServer *gin.Engine) {
	ginServer.Use(middleware.CorsHandle(), middleware.OptionsMethod) //全局中间件

	ginServer.NoRoute(func(ctx *gin.Context) {
		common.FailNotFound(ctx)
	})

	v1 := ginServer.Group("api/v1")
	{
		v1.GET("/menu-tree", controller.Api.UserApiGroup.MenuApi.GetMenuTree)
		v1.POST("/menu-tree/update", controller.Api.UserApiGroup.MenuApi.UpdateMenuTree)
		v1.POST("/menu-tree/scan", controller.Api.UserApiGroup.MenuApi.ScanMenuTree)
		v1.POST("/chatbot/query", controller.Api.UserApiGroup.ChatApi.HandleQuery)
		v1.POST("/chatbot/enhanced-query", controller.Api.UserApiGroup.ChatApi.HandleEnhancedQuery)
	}
}
