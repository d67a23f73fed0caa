package enum

import (
	"strings"
	"testing"
)

// TestErpAssistantPromptConsistency 确保系统提示词中列出的ERP模块
// 与菜单目录的七个分类保持一致, 防止改目录时忘记同步提示词。
func TestErpAssistantPromptConsistency(t *testing.T) {
	prompt := string(SystemPromptErpAssistant)

	categories := []string{
		"영업/고객",
		"생산/MRP",
		"재고/구매",
		"인사/급여",
		"물류/출하",
		"재무/회계",
		"보고서/분석",
	}

	for _, category := range categories {
		if !strings.Contains(prompt, category) {
			t.Errorf("SystemPromptErpAssistant应包含模块名: %s", category)
		}
	}

	// 数据缺失时的标准回答文案是后处理拦截逻辑的前提
	if !strings.Contains(prompt, "찾을 수 없습니다") {
		t.Error("SystemPromptErpAssistant应要求模型在数据缺失时明确说明")
	}
}
