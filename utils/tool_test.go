package utils

import (
	"testing"
	"time"
)

// 缓存键依赖哈希跨进程保持稳定
func TestHashStable(t *testing.T) {
	if Hash("재고 관리는 어떻게 하나요?") != Hash("재고 관리는 어떻게 하나요?") {
		t.Error("相同输入的哈希应一致")
	}
	if Hash("a") == Hash("b") {
		t.Error("不同输入的哈希不应相同")
	}
	if got := Hash(""); len(got) != 56 {
		t.Errorf("sha224十六进制长度 = %d, 期望 56", len(got))
	}
	// 固定向量, 防止哈希算法被意外替换
	if got := Hash("abc"); got != "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7" {
		t.Errorf("Hash(abc) = %s", got)
	}
}

func TestContainsAny(t *testing.T) {
	if !ContainsAny("고객 추가 방법", []string{"추가", "등록"}) {
		t.Error("应命中子串")
	}
	if ContainsAny("고객 조회", []string{"추가", "등록"}) {
		t.Error("不应命中")
	}
	if ContainsAny("고객", nil) {
		t.Error("空子串列表不应命中")
	}
}

func TestParseDateFromLogFileName(t *testing.T) {
	got, ok := ParseDateFromLogFileName("run.log.2026-08-30", time.UTC)
	if !ok {
		t.Fatal("合法文件名应解析成功")
	}
	if got.Format("2006-01-02") != "2026-08-30" {
		t.Errorf("date = %v", got)
	}

	if _, ok := ParseDateFromLogFileName("run.log", time.UTC); ok {
		t.Error("无日期后缀不应解析成功")
	}
	if _, ok := ParseDateFromLogFileName("runlog", time.UTC); ok {
		t.Error("无分隔的文件名不应解析成功")
	}
}
