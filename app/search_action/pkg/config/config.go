package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	ProviderGoogle  = "google"
	ProviderSearXNG = "searxng"
	ProviderTavily  = "tavily"

	DefaultTopK          = 3
	DefaultMaxAttempts   = 3
	DefaultRetryMinDelay = 2 // 秒
	DefaultRetryMaxDelay = 5 // 秒
	DefaultTimeout       = 30
	DefaultGoogleBaseURL = "https://www.googleapis.com/customsearch/v1"
	DefaultTavilyBaseURL = "https://api.tavily.com/search"
)

// Config 项目配置结构体
type Config struct {
	Search      SearchConfig      `yaml:"search"`
	Log         LogConfig         `yaml:"log"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
}

// SearchConfig 搜索动作配置，构造后只读
type SearchConfig struct {
	Provider      string        `yaml:"provider"`
	Enable        *bool         `yaml:"enable"`
	TopK          int           `yaml:"top_k"`
	BlockList     []string      `yaml:"block_list"`
	MaxAttempts   int           `yaml:"max_attempts"`
	RetryMinDelay int           `yaml:"retry_min_delay"`
	RetryMaxDelay int           `yaml:"retry_max_delay"`
	Google        GoogleConfig  `yaml:"google"`
	SearXNG       SearXNGConfig `yaml:"searxng"`
	Tavily        TavilyConfig  `yaml:"tavily"`
}

// GoogleConfig Google 自定义搜索配置
type GoogleConfig struct {
	APIKey   string `yaml:"api_key"`
	EngineID string `yaml:"engine_id"`
	BaseURL  string `yaml:"base_url"`
	Timeout  int    `yaml:"timeout"`
}

// SearXNGConfig SearXNG 配置
type SearXNGConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

// TavilyConfig Tavily 配置
type TavilyConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ConcurrencyConfig 限流配置，RPM 为 0 时不限流
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// Enabled 未显式配置时默认启用
func (c *SearchConfig) Enabled() bool {
	if c.Enable == nil {
		return true
	}
	return *c.Enable
}

// WithDefaults 填充默认值并清理空的屏蔽项
func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	s := &c.Search
	s.Provider = strings.ToLower(strings.TrimSpace(s.Provider))
	if s.Provider == "" {
		s.Provider = ProviderGoogle
	}
	if s.TopK <= 0 {
		s.TopK = DefaultTopK
	}
	if s.MaxAttempts <= 0 {
		s.MaxAttempts = DefaultMaxAttempts
	}
	if s.RetryMinDelay <= 0 {
		s.RetryMinDelay = DefaultRetryMinDelay
	}
	if s.RetryMaxDelay < s.RetryMinDelay {
		s.RetryMaxDelay = max(DefaultRetryMaxDelay, s.RetryMinDelay)
	}

	blockList := make([]string, 0, len(s.BlockList))
	for _, d := range s.BlockList {
		if d = strings.TrimSpace(d); d != "" {
			blockList = append(blockList, d)
		}
	}
	s.BlockList = blockList

	if s.Google.BaseURL == "" {
		s.Google.BaseURL = DefaultGoogleBaseURL
	}
	if s.Google.Timeout <= 0 {
		s.Google.Timeout = DefaultTimeout
	}
	if s.SearXNG.Timeout <= 0 {
		s.SearXNG.Timeout = DefaultTimeout
	}
	if s.Tavily.BaseURL == "" {
		s.Tavily.BaseURL = DefaultTavilyBaseURL
	}
	if s.Tavily.Timeout <= 0 {
		s.Tavily.Timeout = DefaultTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	return c
}

// ApplyEnv 用环境变量补全未配置的凭据
func (c *Config) ApplyEnv() *Config {
	c.Search.Google.APIKey = envOr(c.Search.Google.APIKey, os.Getenv("GOOGLE_API_KEY"))
	c.Search.Google.EngineID = envOr(c.Search.Google.EngineID, os.Getenv("GOOGLE_CSE_ID"))
	c.Search.Tavily.APIKey = envOr(c.Search.Tavily.APIKey, os.Getenv("TAVILY_API_KEY"))
	c.Search.SearXNG.BaseURL = envOr(c.Search.SearXNG.BaseURL, os.Getenv("SEARXNG_BASE_URL"))
	return c
}

func envOr(existing, value string) string {
	if existing != "" {
		return existing
	}
	return strings.TrimSpace(value)
}

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return cfg.ApplyEnv().WithDefaults(), nil
}
