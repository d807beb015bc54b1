package conf

type Bootstrap struct {
	Server *Server
	Search *Search
}

type Server struct {
	Http *HTTP
}

type HTTP struct {
	Addr    string
	Timeout string
}

type Search struct {
	Provider      string       `json:"provider"`
	Enable        *bool        `json:"enable"`
	TopK          int32        `json:"top_k"`
	BlockList     []string     `json:"block_list"`
	MaxAttempts   int32        `json:"max_attempts"`
	RetryMinDelay int32        `json:"retry_min_delay"`
	RetryMaxDelay int32        `json:"retry_max_delay"`
	Google        *Google      `json:"google"`
	Searxng       *SearXNG     `json:"searxng"`
	Tavily        *Tavily      `json:"tavily"`
	Log           *Log         `json:"log"`
	Concurrency   *Concurrency `json:"concurrency"`
}

type Google struct {
	ApiKey   string `json:"api_key"`
	EngineId string `json:"engine_id"`
	BaseUrl  string `json:"base_url"`
	Timeout  int32  `json:"timeout"`
}

type SearXNG struct {
	BaseUrl string `json:"base_url"`
	Timeout int32  `json:"timeout"`
}

type Tavily struct {
	ApiKey  string `json:"api_key"`
	BaseUrl string `json:"base_url"`
	Timeout int32  `json:"timeout"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Concurrency struct {
	Qps int32 `json:"qps"`
	Rpm int32 `json:"rpm"`
}
