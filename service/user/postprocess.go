package user

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// 回答文本的最短长度(字符), 低于此值视为无效回答
const minAnswerRunes = 10

// genericSignatures 离题的"系统概览"式回答的特征短语
var genericSignatures = []string{
	"시스템 개요",
	"ERP 시스템 안내",
	"전체 현황 요약",
	"주요 ERP 모듈",
	"데이터 요약",
}

var (
	// 行首的markdown标题与列表符号
	lineMarkerRe = regexp.MustCompile(`^\s*(?:#{1,6}\s*|[-*]\s+|\d+\.\s+|[•✓✔✅]\s*)`)
	// 行内加粗标签前缀, 如 **항목:**
	boldLabelRe = regexp.MustCompile(`\*\*([^*]+)\*\*:?\s*`)
	// 数字统计式概览, 如 "총 128건"
	countSummaryRe = regexp.MustCompile(`총\s*\d+\s*건`)
	// 引号包裹的实体
	quotedEntityRe = regexp.MustCompile(`['"‘“]([^'"’”]+)['"’”]`)
	// 单据/员工编号式实体, 如 EMP001, ITEM-01
	codeEntityRe = regexp.MustCompile(`[A-Z]{2,}[-_]?\d+`)
)

type IPostProcessService interface {
	// Clean 清洗回答文本, 并拦截离题的泛化回答
	Clean(rawText, originalQuery string) string
}

type PostProcessService struct{}

func NewPostProcessService() *PostProcessService {
	return &PostProcessService{}
}

func (s *PostProcessService) Clean(rawText, originalQuery string) string {
	entity := extractEntity(originalQuery)

	// 泛化回答 + 问题指名的实体在回答中不存在 => 判定离题
	if isGenericSummary(rawText) && entity != "" && !strings.Contains(rawText, entity) {
		return entityNotFoundMessage(entity)
	}

	cleaned := stripMarkdown(rawText)
	if utf8.RuneCountInString(cleaned) < minAnswerRunes {
		if entity != "" {
			return entityNotFoundMessage(entity)
		}
		return "관련 정보를 찾을 수 없습니다. 다른 질문을 해주세요."
	}
	return cleaned
}

func entityNotFoundMessage(entity string) string {
	return fmt.Sprintf("'%s'에 대한 정보를 찾을 수 없습니다.", entity)
}

func isGenericSummary(text string) bool {
	for _, sig := range genericSignatures {
		if strings.Contains(text, sig) {
			return true
		}
	}
	return countSummaryRe.MatchString(text)
}

// extractEntity 从问题中提取被指名的具体实体
// 优先取引号内文本, 其次取编号式标识
func extractEntity(query string) string {
	if m := quotedEntityRe.FindStringSubmatch(query); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	if m := codeEntityRe.FindString(query); m != "" {
		return m
	}
	return ""
}

// 行内任意位置的项目符号
var bulletReplacer = strings.NewReplacer("•", "", "✓", "", "✔", "", "✅", "")

// stripMarkdown 去除标题/列表/加粗等排版符号, 保留正文
func stripMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = lineMarkerRe.ReplaceAllString(line, "")
		line = bulletReplacer.Replace(line)
		line = boldLabelRe.ReplaceAllString(line, "$1 ")
		line = strings.ReplaceAll(line, "**", "")
		line = strings.TrimRight(line, " \t")
		out = append(out, line)
	}
	joined := strings.Join(out, "\n")
	return strings.TrimSpace(joined)
}
