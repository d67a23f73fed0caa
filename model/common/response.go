package common

import (
	"net/http"

	"gitee.com/taoJie_1/erp-agent/model/dto"
	"gitee.com/taoJie_1/erp-agent/model/enum"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Code enum.ResCode `json:"code"`
	Data interface{}  `json:"data"`
	Msg  enum.Msg     `json:"msg"`
}

// StructuredAnswer 展示给终端用户的结构化回答
// Title与Content至少有一个非空
type StructuredAnswer struct {
	Title   string   `json:"title,omitempty"`
	Content string   `json:"content,omitempty"`
	Steps   []string `json:"steps,omitempty"`
	Tips    []string `json:"tips,omitempty"`
}

// IsEmpty 回答是否为空(标题与正文均缺失)
func (a *StructuredAnswer) IsEmpty() bool {
	return a == nil || (a.Title == "" && a.Content == "")
}

// ChatbotResponse 标准问答响应
type ChatbotResponse struct {
	Response  StructuredAnswer `json:"response"`
	MenuPath  dto.MenuPath     `json:"menuPath"`
	FromCache bool             `json:"fromCache"`
	Timestamp string           `json:"timestamp"`
}

// EnhancedChatbotResponse 增强问答响应, 在标准响应之上附带导航引导信息
type EnhancedChatbotResponse struct {
	ChatbotResponse
	NavigationPath      *dto.NavigationPath `json:"navigationPath,omitempty"`
	DriverSteps         []dto.DriverStep    `json:"driverSteps,omitempty"`
	IncludeActionButton bool                `json:"includeActionButton"`
	Confidence          float64             `json:"confidence"`
	DataSource          enum.DataSource     `json:"dataSource"`
}

func result(ctx *gin.Context, code enum.ResCode, msg enum.Msg, data interface{}) {
	ctx.JSON(http.StatusOK, Response{
		Code: code,
		Data: data,
		Msg:  msg,
	})
}

// 带data
func Success(ctx *gin.Context, data interface{}) {
	result(ctx, enum.SuccessCode, enum.DefaultSuccessMsg, data)
}

// 带msg,不带data
func SuccessOk(ctx *gin.Context, message string) {
	result(ctx, enum.SuccessCode, enum.Msg(message), map[string]interface{}{})
}

func Fail(ctx *gin.Context, message string) {
	result(ctx, enum.ErrorCode, enum.Msg(message), map[string]interface{}{})
}

func FailNotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, Response{
		Code: enum.ErrorCode,
		Msg:  enum.DefaultFailMsg,
	})
}
