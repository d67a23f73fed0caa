package dao

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gitee.com/taoJie_1/erp-agent/global"
	"gitee.com/taoJie_1/erp-agent/model/db"
	goredis "github.com/go-redis/redis/v8"
)

type CacheDb struct{}

// redisKey 拼接缓存前缀, 避免与其它业务键冲突
func (d *CacheDb) redisKey(cacheKey string) string {
	return global.Config.Redis.CachePrefix + cacheKey
}

// Get 按缓存键查询, 先Redis后数据库, 未命中返回 (nil, nil)
// Redis未命中但数据库命中时回填Redis, 回填失败只记日志
func (d *CacheDb) Get(ctx context.Context, cacheKey string) (*db.QueryCache, error) {
	if rec := d.getFromRedis(ctx, cacheKey); rec != nil {
		return rec, nil
	}

	if DB == nil {
		return nil, nil
	}

	var rec db.QueryCache
	sqlStr := fmt.Sprintf("SELECT * FROM `%s` WHERE `cache_key` = ? LIMIT 1", db.QueryCache{}.TableName())
	if err := DB.GetContext(ctx, &rec, sqlStr, cacheKey); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询缓存失败: %w", err)
	}

	d.setToRedis(ctx, &rec)
	return &rec, nil
}

// Put 写入缓存, 数据库为权威层, Redis为加速层
// Redis写入失败不算错误
func (d *CacheDb) Put(ctx context.Context, rec *db.QueryCache) error {
	if rec == nil || rec.CacheKey == "" {
		return errors.New("缓存记录不完整[qcdao01]")
	}

	if DB != nil {
		now := nowUnix()
		sqlStr := utils.getUpsertSql(db.QueryCache{}, global.Config.Database.Type, "cache_key",
			[]string{"cache_key", "query", "mode", "response", "menu_path", "timestamp", "created_at", "updated_at"},
			[]string{"response", "menu_path", "timestamp", "updated_at"},
		)
		if _, err := DB.ExecContext(ctx, sqlStr,
			rec.CacheKey, rec.Query, rec.Mode, rec.Response, rec.MenuPath, rec.Timestamp, now, now,
		); err != nil {
			return fmt.Errorf("写入缓存失败: %w", err)
		}
	}

	d.setToRedis(ctx, rec)
	return nil
}

func (d *CacheDb) getFromRedis(ctx context.Context, cacheKey string) *db.QueryCache {
	if global.RedisClient == nil {
		return nil
	}
	val, err := global.RedisClient.Get(ctx, d.redisKey(cacheKey)).Result()
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			global.Log.Warnf("读取Redis缓存失败: %v", err)
		}
		return nil
	}
	var rec db.QueryCache
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		global.Log.Warnf("Redis缓存内容损坏, 已忽略: %v", err)
		return nil
	}
	return &rec
}

func (d *CacheDb) setToRedis(ctx context.Context, rec *db.QueryCache) {
	if global.RedisClient == nil {
		return
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return
	}
	// 缓存无过期语义, 0表示永不过期
	if err := global.RedisClient.Set(ctx, d.redisKey(rec.CacheKey), raw, time.Duration(0)).Err(); err != nil {
		global.Log.Warnf("写入Redis缓存失败: %v", err)
	}
}
