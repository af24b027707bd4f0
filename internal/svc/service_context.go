package svc

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"tier_standings/internal/config"
	"tier_standings/internal/logic"
	"tier_standings/internal/model"
)

type ServiceContext struct {
	Config       config.Config
	RedisClient  *redis.Client
	Snapshots    *SnapshotStore
	RankingLogic *logic.RankingLogic
	LookupLogic  *logic.LookupLogic
}

// NewServiceContext 根据配置选择数据源，并组装业务逻辑
func NewServiceContext(c config.Config) (*ServiceContext, error) {
	var (
		redisClient *redis.Client
		source      model.Source
	)
	switch c.Source.Kind {
	case config.SourceRedis:
		redisClient = redis.NewClient(&redis.Options{
			Addr:     c.Source.Redis.Addr,
			Password: c.Source.Redis.Password,
			DB:       c.Source.Redis.DB,
		})
		source = model.NewRedisSource(redisClient, c.Source.Redis.Key)
	case config.SourceMysql:
		source = model.NewRankingModel(sqlx.NewMysql(c.Source.DataSource))
	case config.SourceFile, "":
		source = model.NewFileSource(c.Source.Path)
	default:
		return nil, fmt.Errorf("unknown source kind %q", c.Source.Kind)
	}

	ctx, err := NewServiceContextWithSource(c, source)
	if err != nil {
		return nil, err
	}
	ctx.RedisClient = redisClient
	return ctx, nil
}

// NewServiceContextWithSource 使用给定数据源组装，测试时可注入假数据源
func NewServiceContextWithSource(c config.Config, source model.Source) (*ServiceContext, error) {
	locale, err := c.LocaleTag()
	if err != nil {
		return nil, err
	}
	policies, err := c.Policies()
	if err != nil {
		return nil, err
	}

	snapshots := NewSnapshotStore(source)
	ranker := model.NewRanker(locale)
	return &ServiceContext{
		Config:    c,
		Snapshots: snapshots,
		RankingLogic: &logic.RankingLogic{
			Snapshots: snapshots,
			Ranker:    ranker,
			Windower:  model.NewWindower(policies),
			Bonus:     model.DefaultBonusTable,
		},
		LookupLogic: &logic.LookupLogic{
			Snapshots: snapshots,
			Ranker:    ranker,
			Bonus:     model.DefaultBonusTable,
		},
	}, nil
}
