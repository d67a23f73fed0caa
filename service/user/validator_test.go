package user

import (
	"strings"
	"testing"

	"gitee.com/taoJie_1/erp-agent/global"
)

func TestValidatorQuery(t *testing.T) {
	v := &Validator{}
	old := global.Config.Ai.MaxQueryLength
	global.Config.Ai.MaxQueryLength = 10
	defer func() { global.Config.Ai.MaxQueryLength = old }()

	if err := v.ValidatorQuery("재고 현황"); err != nil {
		t.Errorf("正常问题被拒绝: %v", err)
	}
	if err := v.ValidatorQuery(""); err == nil {
		t.Error("空问题应被拒绝")
	}
	if err := v.ValidatorQuery("   \t  "); err == nil {
		t.Error("纯空白问题应被拒绝")
	}
	// 长度按字符数而非字节数
	if err := v.ValidatorQuery(strings.Repeat("가", 10)); err != nil {
		t.Errorf("恰好10字符应通过: %v", err)
	}
	if err := v.ValidatorQuery(strings.Repeat("가", 11)); err == nil {
		t.Error("超长问题应被拒绝")
	}
}
