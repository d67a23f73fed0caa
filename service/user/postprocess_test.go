package user

import (
	"strings"
	"testing"
)

func TestCleanStripMarkdown(t *testing.T) {
	s := NewPostProcessService()

	raw := "### 재고 현황\n- **품목:** 볼트 M8\n• 수량 120개\n1. 안전재고 50개\n✓ 확인 완료"
	got := s.Clean(raw, "재고 현황 알려줘")

	for _, forbidden := range []string{"#", "**", "•", "✓", "✔", "✅"} {
		if strings.Contains(got, forbidden) {
			t.Errorf("清洗后仍含排版符号 %q:\n%s", forbidden, got)
		}
	}
	for _, want := range []string{"재고 현황", "볼트 M8", "수량 120개", "안전재고 50개"} {
		if !strings.Contains(got, want) {
			t.Errorf("正文内容 %q 丢失:\n%s", want, got)
		}
	}
}

// 泛化的"系统概览"式回答 + 问题指名的实体在回答中缺失 => 判定离题
func TestCleanGenericSummaryIntercepted(t *testing.T) {
	s := NewPostProcessService()

	raw := "ERP 시스템 안내입니다. 주요 ERP 모듈은 영업, 생산, 재고 등이 있으며 총 128건의 데이터가 있습니다."

	got := s.Clean(raw, "'ABC상사' 거래 내역 알려줘")
	if got != "'ABC상사'에 대한 정보를 찾을 수 없습니다." {
		t.Errorf("got %q", got)
	}

	// 编号式实体同样生效
	got = s.Clean(raw, "EMP001 급여 내역")
	if got != "'EMP001'에 대한 정보를 찾을 수 없습니다." {
		t.Errorf("got %q", got)
	}
}

// 实体确实出现在回答中时, 泛化特征不应拦截
func TestCleanGenericSummaryWithEntityKept(t *testing.T) {
	s := NewPostProcessService()

	raw := "데이터 요약: ABC상사와의 거래는 총 3건 있으며 모두 정상 처리되었습니다."
	got := s.Clean(raw, "'ABC상사' 거래 내역 알려줘")
	if !strings.Contains(got, "ABC상사") {
		t.Errorf("实体存在时不应拦截: %q", got)
	}
}

// 问题未指名实体时, 泛化回答不拦截, 原样清洗输出
func TestCleanGenericSummaryWithoutEntity(t *testing.T) {
	s := NewPostProcessService()

	raw := "전체 현황 요약: 이번 달 매출은 전월 대비 증가했습니다."
	got := s.Clean(raw, "이번 달 현황 알려줘")
	if !strings.Contains(got, "매출") {
		t.Errorf("无实体的泛化回答应保留: %q", got)
	}
}

func TestCleanShortAnswerFallback(t *testing.T) {
	s := NewPostProcessService()

	got := s.Clean("짧음", "재고 알려줘")
	if got != "관련 정보를 찾을 수 없습니다. 다른 질문을 해주세요." {
		t.Errorf("got %q", got)
	}

	// 有指名实体时优先返回实体未找到文案
	got = s.Clean("없음", "EMP001 정보")
	if got != "'EMP001'에 대한 정보를 찾을 수 없습니다." {
		t.Errorf("got %q", got)
	}
}

func TestExtractEntity(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"'ABC상사' 거래 내역", "ABC상사"},
		{`"홍길동" 근태 기록`, "홍길동"},
		{"EMP001 급여", "EMP001"},
		{"ITEM-01 재고 수량", "ITEM-01"},
		// 引号实体优先于编号实体
		{"'ABC상사'의 ITEM-01 주문", "ABC상사"},
		{"재고 현황 알려줘", ""},
	}
	for _, c := range cases {
		if got := extractEntity(c.query); got != c.want {
			t.Errorf("extractEntity(%q) = %q, 期望 %q", c.query, got, c.want)
		}
	}
}
