package user

import (
	"gitee.com/taoJie_1/erp-agent/model/common"
	"gitee.com/taoJie_1/erp-agent/model/dto"
	"gitee.com/taoJie_1/erp-agent/model/enum"
	"gitee.com/taoJie_1/erp-agent/utils"
)

// subRule 在父规则命中后才评估的细分规则
type subRule struct {
	keywords []string
	path     dto.MenuPath
	answer   common.StructuredAnswer
}

// categoryRule 主题分类规则, 按切片顺序评估, 首个命中即返回
// 关键词匹配为原文子串包含, 不做大小写归一, 以保留领域缩写的精确匹配
type categoryRule struct {
	keywords []string
	path     dto.MenuPath
	answer   common.StructuredAnswer
	sub      []subRule
}

// categoryRules 本地兜底的规则链, 顺序即优先级
var categoryRules = []categoryRule{
	{
		keywords: []string{"고객", "영업", "판매", "crm", "파이프라인", "영업 관리"},
		path:     dto.MenuPath{"sales-customer", "crm-pipeline"},
		answer: common.StructuredAnswer{
			Title: "CRM 파이프라인 사용 방법",
			Steps: []string{
				"영업/고객 메뉴에서 CRM 파이프라인을 선택합니다.",
				"고객별 영업 단계를 확인할 수 있습니다.",
				"고객 카드를 드래그하여 영업 단계를 변경할 수 있습니다.",
			},
			Tips: []string{
				"고객 카드를 클릭하면 상세 정보를 확인할 수 있습니다.",
				"필터를 사용하여 특정 담당자나 단계의 고객만 볼 수 있습니다.",
			},
		},
		sub: []subRule{
			{
				keywords: []string{"추가", "등록", "신규"},
				path:     dto.MenuPath{"sales-customer", "customers"},
				answer: common.StructuredAnswer{
					Title: "고객 추가 방법",
					Steps: []string{
						"영업/고객 메뉴에서 고객 관리를 선택합니다.",
						"고객 관리 페이지에서 '새 고객 추가' 버튼을 클릭합니다.",
						"고객 정보 양식을 작성합니다.",
						"'저장' 버튼을 클릭하여 새 고객을 등록합니다.",
					},
					Tips: []string{
						"필수 입력 항목: 고객명, 연락처, 주소",
						"고객 분류를 설정하면 나중에 필터링이 용이합니다.",
						"담당자를 지정하면 알림이 자동으로 전송됩니다.",
					},
				},
			},
		},
	},
	{
		keywords: []string{"생산", "작업", "mrp", "bom", "생산 계획"},
		path:     dto.MenuPath{"production-mrp", "production-orders"},
		answer: common.StructuredAnswer{
			Title: "생산 오더 관리 방법",
			Steps: []string{
				"생산/MRP 메뉴에서 생산 오더를 선택합니다.",
				"현재 진행 중인 생산 오더와 계획된 오더를 확인할 수 있습니다.",
				"새 생산 오더를 등록하거나 기존 오더의 상태를 변경할 수 있습니다.",
			},
			Tips: []string{
				"생산 오더는 판매 주문과 연결하여 생성할 수 있습니다.",
				"자재 가용성을 확인하여 생산 계획을 수립하세요.",
				"작업 지시서는 생산 오더에서 자동 생성됩니다.",
			},
		},
	},
	{
		keywords: []string{"재고", "구매", "발주", "입고", "공급", "재고 관리"},
		path:     dto.MenuPath{"inventory-purchase", "inventory"},
		answer: common.StructuredAnswer{
			Title: "재고 관리 방법",
			Steps: []string{
				"재고/구매 메뉴에서 재고 관리를 선택합니다.",
				"품목별 현재고와 안전재고를 확인할 수 있습니다.",
				"재고 이력을 조회하거나 재고 실사를 진행할 수 있습니다.",
			},
			Tips: []string{
				"안전재고 미달 품목은 빨간색으로 표시됩니다.",
				"LOT 추적이 필요한 품목은 LOT 번호로 관리됩니다.",
				"재고 이동은 출고 및 입고 기록을 남깁니다.",
			},
		},
	},
	{
		keywords: []string{"인사", "급여", "직원", "근태", "인건비"},
		path:     dto.MenuPath{"hr-payroll", "payroll"},
		answer: common.StructuredAnswer{
			Title: "급여 관리 방법",
			Steps: []string{
				"인사/급여 메뉴에서 급여 관리를 선택합니다.",
				"직원별 급여 내역을 확인할 수 있습니다.",
				"급여 계산 및 지급 처리를 할 수 있습니다.",
			},
			Tips: []string{
				"근태 기록은 급여 계산에 자동으로 반영됩니다.",
				"급여 명세서는 PDF로 출력하거나 이메일로 전송할 수 있습니다.",
				"급여 지급 후 회계 전표가 자동 생성됩니다.",
			},
		},
	},
	{
		keywords: []string{"물류", "출하", "배송", "납품", "운송"},
		path:     dto.MenuPath{"logistics-shipping", "shipping"},
		answer: common.StructuredAnswer{
			Title: "출하 관리 방법",
			Steps: []string{
				"물류/출하 메뉴에서 출하 관리를 선택합니다.",
				"출하 예정 및 완료된 출하 내역을 확인할 수 있습니다.",
				"새 출하를 등록하거나 출하 상태를 변경할 수 있습니다.",
			},
			Tips: []string{
				"출하는 판매 주문과 연결하여 생성할 수 있습니다.",
				"출하 시 LOT 번호를 지정하면 추적성이 유지됩니다.",
				"출하 완료 시 재고가 자동으로 감소합니다.",
			},
		},
	},
	{
		keywords: []string{"재무", "회계", "예산", "세금", "전표"},
		path:     dto.MenuPath{"finance-accounting", "accounting"},
		answer: common.StructuredAnswer{
			Title: "회계 관리 방법",
			Steps: []string{
				"재무/회계 메뉴에서 회계 관리를 선택합니다.",
				"전표 내역을 확인하고 새 전표를 등록할 수 있습니다.",
				"재무제표를 조회하고 출력할 수 있습니다.",
			},
			Tips: []string{
				"판매, 구매, 급여 등의 거래는 자동으로 전표가 생성됩니다.",
				"기간별 재무 상태를 분석할 수 있습니다.",
				"세금 신고 자료를 자동으로 생성할 수 있습니다.",
			},
		},
	},
	{
		keywords: []string{"보고서", "분석", "대시보드", "통계", "리포트"},
		path:     dto.MenuPath{"reports-analytics", "dashboard"},
		answer: common.StructuredAnswer{
			Title: "대시보드 사용 방법",
			Steps: []string{
				"보고서/분석 메뉴에서 대시보드를 선택합니다.",
				"주요 지표와 그래프를 확인할 수 있습니다.",
				"기간 및 부서별로 필터링하여 데이터를 분석할 수 있습니다.",
			},
			Tips: []string{
				"대시보드는 실시간으로 업데이트됩니다.",
				"그래프를 클릭하면 상세 데이터를 확인할 수 있습니다.",
				"보고서는 PDF나 Excel로 내보낼 수 있습니다.",
			},
		},
	},
}

// genericHelpAnswer 规则链全部未命中时的通用引导回答
var genericHelpAnswer = common.StructuredAnswer{
	Title: "도움이 필요하신가요?",
	Steps: []string{
		"원하시는 기능이나 메뉴에 대해 질문해 주세요.",
		"예: '고객 추가 방법 알려줘', '재고 관리는 어떻게 하나요?'",
	},
	Tips: []string{
		"메뉴 이름이나 기능을 구체적으로 언급하시면 더 정확한 도움을 드릴 수 있습니다.",
		"화면 상단의 검색 기능을 이용하셔도 됩니다.",
	},
}

// orderCreationAnswer 新建订单意图的专属回答
var orderCreationAnswer = common.StructuredAnswer{
	Title: "새 주문 생성 방법",
	Steps: []string{
		"좌측 메뉴에서 \"영업/고객\" 섹션을 클릭하세요.",
		"\"주문 관리\" 메뉴를 선택하세요.",
		"우측 상단의 \"새 주문 생성\" 버튼을 클릭하세요.",
		"고객을 선택하고 주문 정보를 입력하세요.",
		"주문할 제품을 추가하고 \"저장\" 버튼을 클릭하여 주문을 완료하세요.",
	},
	Tips: []string{
		"필수 항목은 빨간 별표(*)로 표시됩니다.",
		"주문 상태를 \"임시 저장\"으로 설정하면 나중에 수정할 수 있습니다.",
		"주문이 완료되면 자동으로 생산 계획에 반영됩니다.",
	},
}

// intentAnswers 意图分类置信时的专属回答, 无对应条目的意图走规则链
var intentAnswers = map[enum.Intent]struct {
	path   dto.MenuPath
	answer common.StructuredAnswer
}{
	enum.IntentCreateOrder: {
		path:   dto.MenuPath{"sales-customer", "orders"},
		answer: orderCreationAnswer,
	},
	enum.IntentAddCustomer: {
		path:   dto.MenuPath{"sales-customer", "customers"},
		answer: categoryRules[0].sub[0].answer,
	},
	enum.IntentCheckInventory: {
		path:   dto.MenuPath{"inventory-purchase", "inventory"},
		answer: categoryRules[2].answer,
	},
	enum.IntentManagePayroll: {
		path:   dto.MenuPath{"hr-payroll", "payroll"},
		answer: categoryRules[3].answer,
	},
	enum.IntentProductionOrder: {
		path:   dto.MenuPath{"production-mrp", "production-orders"},
		answer: categoryRules[1].answer,
	},
	enum.IntentViewDashboard: {
		path:   dto.MenuPath{"reports-analytics", "dashboard"},
		answer: categoryRules[6].answer,
	},
}

// matchCategoryRule 按顺序评估规则链, 返回首个命中的路径与预设回答
// 子规则仅在父规则命中后评估
// 未命中返回 (nil, nil)
func matchCategoryRule(query string) (dto.MenuPath, *common.StructuredAnswer) {
	for i := range categoryRules {
		rule := &categoryRules[i]
		if !utils.ContainsAny(query, rule.keywords) {
			continue
		}
		for j := range rule.sub {
			if utils.ContainsAny(query, rule.sub[j].keywords) {
				return rule.sub[j].path, &rule.sub[j].answer
			}
		}
		return rule.path, &rule.answer
	}
	return nil, nil
}
