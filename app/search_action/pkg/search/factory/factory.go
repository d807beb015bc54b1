package factory

import (
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/iWorld-y/search_action/app/search_action/pkg/config"
	"github.com/iWorld-y/search_action/app/search_action/pkg/google"
	"github.com/iWorld-y/search_action/app/search_action/pkg/search"
	"github.com/iWorld-y/search_action/app/search_action/pkg/searxng"
	"github.com/iWorld-y/search_action/app/search_action/pkg/tavily"
)

// NewFetcher 根据配置创建搜索后端
func NewFetcher(cfg *config.Config) (search.Fetcher, error) {
	s := cfg.Search
	switch s.Provider {
	case "", config.ProviderGoogle:
		if s.Google.APIKey == "" {
			return nil, fmt.Errorf("google api key is missing")
		}
		if s.Google.EngineID == "" {
			return nil, fmt.Errorf("google search engine id is missing")
		}
		return google.NewClient(s.Google.APIKey, s.Google.EngineID, s.Google.BaseURL, s.Google.Timeout), nil

	case config.ProviderSearXNG:
		if s.SearXNG.BaseURL == "" {
			return nil, fmt.Errorf("searxng base url is missing")
		}
		return searxng.NewClient(s.SearXNG.BaseURL, s.SearXNG.Timeout), nil

	case config.ProviderTavily:
		if s.Tavily.APIKey == "" {
			return nil, fmt.Errorf("tavily api key is missing")
		}
		return tavily.NewClient(s.Tavily.APIKey, s.Tavily.BaseURL, s.Tavily.Timeout), nil

	default:
		return nil, fmt.Errorf("unknown search provider: %s", s.Provider)
	}
}

// NewClient 根据配置创建带重试与限流的搜索客户端
func NewClient(cfg *config.Config) (*search.Client, error) {
	fetcher, err := NewFetcher(cfg)
	if err != nil {
		return nil, err
	}

	s := cfg.Search
	return search.NewClient(fetcher, search.Options{
		TopK:        s.TopK,
		BlockList:   s.BlockList,
		MaxAttempts: s.MaxAttempts,
		MinDelay:    time.Duration(s.RetryMinDelay) * time.Second,
		MaxDelay:    time.Duration(s.RetryMaxDelay) * time.Second,
		Limiter:     NewLimiter(cfg.Concurrency),
	}), nil
}

// NewLimiter 按 RPM 限流，QPS 作为突发容量；RPM 为 0 时返回 nil
func NewLimiter(c config.ConcurrencyConfig) *rate.Limiter {
	if c.RPM <= 0 {
		return nil
	}
	burst := c.QPS
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(float64(c.RPM)/60.0), burst)
}
