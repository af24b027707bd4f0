package config

import (
	"fmt"
	"time"

	"github.com/zeromicro/go-zero/rest"
	"golang.org/x/text/language"

	"tier_standings/internal/model"
)

const (
	SourceFile  = "file"
	SourceRedis = "redis"
	SourceMysql = "mysql"
)

type Config struct {
	rest.RestConf
	// Locale 同分时比较 ID 使用的语言
	Locale string `json:",default=ja"`
	Source SourceConf
	// RefreshInterval 为 0 时只在启动时加载一次
	RefreshInterval time.Duration `json:",default=0s"`
	// WindowPolicies 段位 ID -> capped | uncapped | split
	WindowPolicies map[string]string `json:",optional"`
}

type SourceConf struct {
	Kind       string    `json:",default=file,options=file|redis|mysql"`
	Path       string    `json:",optional"`
	Redis      RedisConf `json:",optional"`
	DataSource string    `json:",optional"`
}

type RedisConf struct {
	Addr     string `json:",optional"`
	Password string `json:",optional"`
	DB       int    `json:",optional"`
	Key      string `json:",default=standings:snapshot"`
}

// LocaleTag 解析 Locale，非法时返回错误
func (c Config) LocaleTag() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

// Policies 解析窗口策略，未配置时返回 nil，由调用方使用默认表
func (c Config) Policies() (map[string]model.WindowPolicy, error) {
	if len(c.WindowPolicies) == 0 {
		return nil, nil
	}
	out := make(map[string]model.WindowPolicy, len(c.WindowPolicies))
	for tier, name := range c.WindowPolicies {
		p, err := model.ParseWindowPolicy(name)
		if err != nil {
			return nil, fmt.Errorf("tier %s: %w", tier, err)
		}
		out[tier] = p
	}
	return out, nil
}
