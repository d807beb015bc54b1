package server

import (
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"

	"github.com/iWorld-y/search_action/app/gateway/internal/biz"
	"github.com/iWorld-y/search_action/app/gateway/internal/conf"
	"github.com/iWorld-y/search_action/app/gateway/internal/service"
	"github.com/iWorld-y/search_action/app/search_action/pkg/action"
	"github.com/iWorld-y/search_action/app/search_action/pkg/config"
	salogger "github.com/iWorld-y/search_action/app/search_action/pkg/logger"
	"github.com/iWorld-y/search_action/app/search_action/pkg/search/factory"
)

// ProviderSet 是网关服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Action providers
	NewSearchAction,
	wire.Bind(new(biz.SearchAction), new(*action.GoogleSearch)),

	// UseCase providers
	biz.NewSearchUseCase,

	// Service providers
	service.NewSearchService,
)

// NewSearchAction 把 conf.Search 转换为 config.Config 并初始化搜索工具
func NewSearchAction(c *conf.Search, logger log.Logger) (*action.GoogleSearch, func(), error) {
	cfg := toConfig(c).ApplyEnv().WithDefaults()

	if err := salogger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
		log.NewHelper(logger).Errorf("Failed to init search logger: %v", err)
		_ = salogger.InitLogger("info", "") // 降级处理
	}

	client, err := factory.NewClient(cfg)
	if err != nil {
		log.NewHelper(logger).Errorf("Failed to init search client: %v", err)
		return nil, nil, err
	}

	cleanup := func() {
		log.NewHelper(logger).Info("Cleaning up search action")
	}
	return action.New(client, cfg.Search.Enabled()), cleanup, nil
}

func toConfig(c *conf.Search) *config.Config {
	cfg := &config.Config{}
	if c == nil {
		return cfg
	}

	cfg.Search = config.SearchConfig{
		Provider:      c.Provider,
		Enable:        c.Enable,
		TopK:          int(c.TopK),
		BlockList:     c.BlockList,
		MaxAttempts:   int(c.MaxAttempts),
		RetryMinDelay: int(c.RetryMinDelay),
		RetryMaxDelay: int(c.RetryMaxDelay),
	}
	if c.Google != nil {
		cfg.Search.Google = config.GoogleConfig{
			APIKey:   c.Google.ApiKey,
			EngineID: c.Google.EngineId,
			BaseURL:  c.Google.BaseUrl,
			Timeout:  int(c.Google.Timeout),
		}
	}
	if c.Searxng != nil {
		cfg.Search.SearXNG = config.SearXNGConfig{
			BaseURL: c.Searxng.BaseUrl,
			Timeout: int(c.Searxng.Timeout),
		}
	}
	if c.Tavily != nil {
		cfg.Search.Tavily = config.TavilyConfig{
			APIKey:  c.Tavily.ApiKey,
			BaseURL: c.Tavily.BaseUrl,
			Timeout: int(c.Tavily.Timeout),
		}
	}
	if c.Log != nil {
		cfg.Log = config.LogConfig{Level: c.Log.Level, File: c.Log.File}
	}
	if c.Concurrency != nil {
		cfg.Concurrency = config.ConcurrencyConfig{
			QPS: int(c.Concurrency.Qps),
			RPM: int(c.Concurrency.Rpm),
		}
	}
	return cfg
}
