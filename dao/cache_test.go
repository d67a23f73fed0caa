package dao

import (
	"context"
	"os"
	"testing"

	"gitee.com/taoJie_1/erp-agent/global"
	"gitee.com/taoJie_1/erp-agent/internal/redis"
	"gitee.com/taoJie_1/erp-agent/model/db"
	"github.com/alicebob/miniredis/v2"
	goredis "github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

func TestMain(m *testing.M) {
	global.Log = logrus.New()
	global.Config.Redis.CachePrefix = "erp:qa:"
	os.Exit(m.Run())
}

func setupRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	global.RedisClient = redis.NewClientFromRdb(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { global.RedisClient = nil })
	return mr
}

func TestCacheDbPutGet(t *testing.T) {
	mr := setupRedis(t)
	d := new(CacheDb)
	ctx := context.Background()

	rec := &db.QueryCache{
		CacheKey:  "abc123",
		Query:     "재고 관리는 어떻게 하나요?",
		Mode:      "",
		Response:  `{"title":"재고 관리 방법"}`,
		MenuPath:  `["inventory-purchase","inventory"]`,
		Timestamp: "2026-08-31T09:00:00+09:00",
	}
	if err := d.Put(ctx, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := d.Get(ctx, "abc123")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("期望命中")
	}
	if got.Response != rec.Response || got.Timestamp != rec.Timestamp {
		t.Errorf("读出记录不符: %+v", got)
	}

	// 键带业务前缀
	if !mr.Exists("erp:qa:abc123") {
		t.Error("Redis键应带缓存前缀")
	}
	// 缓存无过期语义
	if ttl := mr.TTL("erp:qa:abc123"); ttl != 0 {
		t.Errorf("ttl = %v, 期望永不过期", ttl)
	}
}

func TestCacheDbGetMiss(t *testing.T) {
	setupRedis(t)
	d := new(CacheDb)

	got, err := d.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("未命中不应报错: %v", err)
	}
	if got != nil {
		t.Errorf("期望未命中, got %+v", got)
	}
}

// Redis中内容损坏时按未命中处理, 不报错
func TestCacheDbCorruptedRedisValue(t *testing.T) {
	mr := setupRedis(t)
	d := new(CacheDb)

	if err := mr.Set("erp:qa:bad", "{not json"); err != nil {
		t.Fatal(err)
	}
	got, err := d.Get(context.Background(), "bad")
	if err != nil {
		t.Fatalf("损坏值不应报错: %v", err)
	}
	if got != nil {
		t.Errorf("损坏值应按未命中处理, got %+v", got)
	}
}

func TestCacheDbPutValidation(t *testing.T) {
	setupRedis(t)
	d := new(CacheDb)

	if err := d.Put(context.Background(), nil); err == nil {
		t.Error("nil记录应被拒绝")
	}
	if err := d.Put(context.Background(), &db.QueryCache{}); err == nil {
		t.Error("缺少缓存键的记录应被拒绝")
	}
}

// Redis不可用时Get静默未命中(数据库层亦未配置)
func TestCacheDbRedisUnavailable(t *testing.T) {
	d := new(CacheDb)
	global.RedisClient = nil

	got, err := d.Get(context.Background(), "any")
	if err != nil || got != nil {
		t.Errorf("无任何缓存层时应返回未命中: %v, %+v", got, err)
	}
}
