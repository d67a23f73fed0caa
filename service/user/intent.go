package user

import (
	"strings"

	"gitee.com/taoJie_1/erp-agent/model/enum"
	"gitee.com/taoJie_1/erp-agent/utils"
)

// ConfidenceThreshold 意图置信阈值, 严格大于才算置信
const ConfidenceThreshold = 0.7

const (
	phraseBonus  = 0.3
	triggerBonus = 0.2
)

// howToTriggers 引导词, 与主题词共现时加分
var howToTriggers = []string{"방법", "어떻게", "알려줘", "하는 법"}

// intentRule 单个意图的打分素材
// keywords: 主题词, 得分 = 命中数/总数
// phrases: 完整短语, 原样出现加 phraseBonus
type intentRule struct {
	keywords []string
	phrases  []string
}

var intentRules = map[enum.Intent]intentRule{
	enum.IntentCreateOrder: {
		keywords: []string{"주문", "생성", "수주", "오더", "발주서"},
		phrases:  []string{"새 주문 생성", "주문 만들", "주문 등록"},
	},
	enum.IntentAddCustomer: {
		keywords: []string{"고객", "거래처", "추가", "등록", "신규"},
		phrases:  []string{"고객 추가", "고객 등록", "신규 고객"},
	},
	enum.IntentCheckInventory: {
		keywords: []string{"재고", "입고", "출고", "창고", "현황"},
		phrases:  []string{"재고 현황", "재고 조회"},
	},
	enum.IntentManagePayroll: {
		keywords: []string{"급여", "월급", "연봉", "수당", "인건비"},
		phrases:  []string{"급여 관리", "급여 계산"},
	},
	enum.IntentProductionOrder: {
		keywords: []string{"생산", "제조", "공정", "작업지시", "mrp"},
		phrases:  []string{"생산 오더", "생산 계획"},
	},
	enum.IntentViewDashboard: {
		keywords: []string{"대시보드", "보고서", "통계", "지표", "리포트"},
		phrases:  []string{"대시보드 보여"},
	},
}

type IIntentService interface {
	// 对全部意图打分, 分值在[0,1]
	Score(query string) map[enum.Intent]float64
	// 按固定优先级返回首个超过阈值的意图
	Classify(query string) (enum.Intent, float64, bool)
}

type IntentService struct{}

func NewIntentService() *IntentService {
	return &IntentService{}
}

// normalizeQuery 分类前的归一化: 小写, 标点转空格, 空白折叠
// 菜单路径解析不走这里, 它要求对原文做精确子串匹配
func normalizeQuery(query string) string {
	var b strings.Builder
	b.Grow(len(query))
	for _, r := range strings.ToLower(query) {
		switch r {
		case '?', '!', '.', ',', ';', ':', '"', '\'', '(', ')', '[', ']':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func (s *IntentService) Score(query string) map[enum.Intent]float64 {
	normalized := normalizeQuery(query)
	scores := make(map[enum.Intent]float64, len(intentRules))

	for intent, rule := range intentRules {
		matched := 0
		for _, kw := range rule.keywords {
			if strings.Contains(normalized, kw) {
				matched++
			}
		}

		score := 0.0
		if len(rule.keywords) > 0 {
			score = float64(matched) / float64(len(rule.keywords))
		}
		if utils.ContainsAny(normalized, rule.phrases) {
			score += phraseBonus
		}
		if matched > 0 && utils.ContainsAny(normalized, howToTriggers) {
			score += triggerBonus
		}
		if score > 1 {
			score = 1
		}
		scores[intent] = score
	}
	return scores
}

// Classify 的平局裁决依赖 enum.IntentPriority 的固定顺序, 与map遍历顺序无关
func (s *IntentService) Classify(query string) (enum.Intent, float64, bool) {
	scores := s.Score(query)
	for _, intent := range enum.IntentPriority {
		if scores[intent] > ConfidenceThreshold {
			return intent, scores[intent], true
		}
	}
	return "", 0, false
}
