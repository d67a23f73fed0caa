package user

import (
	"errors"
	"strings"
	"unicode/utf8"

	"gitee.com/taoJie_1/erp-agent/global"
)

type IValidator interface {
	ValidatorQuery(query string) error
}

type Validator struct{}

// ValidatorQuery 空白问题属于调用方输入错误, 在进入路由前拒绝
func (v *Validator) ValidatorQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return errors.New("질문을 입력해 주세요")
	}

	maxLen := int(global.Config.Ai.MaxQueryLength)
	if maxLen > 0 && utf8.RuneCountInString(query) > maxLen {
		return errors.New("질문이 너무 깁니다")
	}
	return nil
}
