package user

import (
	"math"
	"testing"

	"gitee.com/taoJie_1/erp-agent/model/enum"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestScoreOrderCreation 验证打分公式: 命中词占比 + 短语加成 + 引导词加成
// "새 주문 생성 방법" 命中 주문/생성 两词(2/5=0.4), 短语"새 주문 생성"(+0.3), 引导词"방법"(+0.2)
func TestScoreOrderCreation(t *testing.T) {
	s := NewIntentService()
	scores := s.Score("새 주문 생성 방법")

	if got := scores[enum.IntentCreateOrder]; !almostEqual(got, 0.9) {
		t.Errorf("create_order得分 = %v, 期望 0.9", got)
	}
	if got := scores[enum.IntentAddCustomer]; !almostEqual(got, 0) {
		t.Errorf("add_customer得分 = %v, 期望 0", got)
	}
}

// 引导词加成只在至少命中一个主题词时生效
func TestScoreTriggerRequiresKeyword(t *testing.T) {
	s := NewIntentService()
	scores := s.Score("방법 알려줘")

	for intent, score := range scores {
		if score != 0 {
			t.Errorf("无主题词的问题 %s 得分 = %v, 期望 0", intent, score)
		}
	}
}

func TestScoreClampedToOne(t *testing.T) {
	s := NewIntentService()
	// 全部关键词+短语+引导词, 原始分超过1
	scores := s.Score("새 주문 생성 수주 오더 발주서 방법")

	if got := scores[enum.IntentCreateOrder]; got > 1 {
		t.Errorf("得分 = %v, 应被钳制在1以内", got)
	}
}

func TestClassifyConfident(t *testing.T) {
	s := NewIntentService()

	intent, score, ok := s.Classify("고객 추가 방법 알려줘")
	if !ok {
		t.Fatal("期望置信分类")
	}
	if intent != enum.IntentAddCustomer {
		t.Errorf("intent = %s, 期望 %s", intent, enum.IntentAddCustomer)
	}
	if score <= ConfidenceThreshold {
		t.Errorf("score = %v, 应严格大于阈值 %v", score, ConfidenceThreshold)
	}
}

// 阈值判定为严格大于, 恰好落在阈值上不算置信
func TestClassifyBelowThreshold(t *testing.T) {
	s := NewIntentService()

	if _, _, ok := s.Classify("재고 관리는 어떻게 하나요?"); ok {
		t.Error("得分0.4的问题不应置信分类")
	}
	if _, _, ok := s.Classify("오늘 날씨 어때"); ok {
		t.Error("无关问题不应置信分类")
	}
}

// 多个意图同时超过阈值时, 按 IntentPriority 的固定顺序取第一个
func TestClassifyPriorityTieBreak(t *testing.T) {
	s := NewIntentService()
	query := "새 주문 생성 수주 오더 발주서 고객 추가 등록 신규 거래처 방법"

	scores := s.Score(query)
	if scores[enum.IntentCreateOrder] <= ConfidenceThreshold || scores[enum.IntentAddCustomer] <= ConfidenceThreshold {
		t.Fatalf("前置条件不满足, 两个意图都应超阈值: %v", scores)
	}

	intent, _, ok := s.Classify(query)
	if !ok {
		t.Fatal("期望置信分类")
	}
	if intent != enum.IntentCreateOrder {
		t.Errorf("intent = %s, 平局应取优先级更高的 %s", intent, enum.IntentCreateOrder)
	}
}

// 归一化只影响意图分类的输入, 大小写与标点不应改变结果
func TestClassifyNormalization(t *testing.T) {
	s := NewIntentService()

	a, _, okA := s.Classify("고객 추가 방법 알려줘")
	b, _, okB := s.Classify("고객 추가, 방법 알려줘!!")
	if okA != okB || a != b {
		t.Errorf("标点差异导致分类不一致: (%s,%v) vs (%s,%v)", a, okA, b, okB)
	}
}
