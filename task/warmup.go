package task

import (
	"context"

	"gitee.com/taoJie_1/erp-agent/global"
	"gitee.com/taoJie_1/erp-agent/service"
	"golang.org/x/sync/errgroup"
)

// WarmupCache 预热常见问题的缓存
// 已命中缓存的问题不会重复调用提供方
func (m *Manager) WarmupCache(ctx context.Context) error {
	queries := global.Config.Ai.WarmupQueries
	if len(queries) == 0 {
		return nil
	}

	global.Log.Infof("开始预热 %d 条常见问题...", len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(2)
	for _, query := range queries {
		query := query
		g.Go(func() error {
			resp := service.Service.UserServiceGroup.QueryService.HandleQuery(gctx, query)
			if resp.FromCache {
				return nil
			}
			global.Log.Debugf("预热完成: %s", query)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	global.Log.Info("常见问题预热完成")
	return nil
}
