package action

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
	"github.com/go-kratos/kratos/v2/errors"

	"github.com/iWorld-y/search_action/app/search_action/pkg/search"
)

const (
	// ToolName 对外暴露的工具名
	ToolName = "google_search"
	// DefaultNumResults 未指定 num_results 时向后端请求的条数
	DefaultNumResults = 10
)

var (
	ErrActionDisabled   = errors.Forbidden("ACTION_DISABLED", "google search action is disabled")
	ErrInvalidArguments = errors.BadRequest("INVALID_ARGUMENTS", "arguments must be a JSON object")
	ErrEmptyQuery       = errors.BadRequest("EMPTY_QUERY", "query must not be empty")
)

// Searcher 由 *search.Client 实现
type Searcher interface {
	Search(ctx context.Context, req *search.Request) (search.Results, error)
}

// Args 工具入参
type Args struct {
	Query        string `json:"query"`
	NumResults   int    `json:"num_results,omitempty"`
	DateRestrict string `json:"date_restrict,omitempty"`
}

// GoogleSearch 把搜索客户端包装成可供编排器调用的工具
type GoogleSearch struct {
	searcher Searcher
	enable   bool
}

var _ tool.InvokableTool = (*GoogleSearch)(nil)

// New 创建搜索工具
func New(searcher Searcher, enable bool) *GoogleSearch {
	return &GoogleSearch{searcher: searcher, enable: enable}
}

// Enabled 禁用的工具不应出现在编排器的工具列表中
func (a *GoogleSearch) Enabled() bool {
	return a.enable
}

// Info 声明工具的入参 schema
func (a *GoogleSearch) Info(_ context.Context) (*schema.ToolInfo, error) {
	return &schema.ToolInfo{
		Name: ToolName,
		Desc: "Search the web with Google Custom Search. Returns a JSON object keyed by result index, " +
			"each value holding url, summ (snippet), title and date (YYYY-MM-DD or null).",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"query": {
				Type:     schema.String,
				Desc:     "search keywords",
				Required: true,
			},
			"num_results": {
				Type: schema.Integer,
				Desc: "number of results to request from the search engine, default 10",
			},
			"date_restrict": {
				Type: schema.String,
				Desc: "restrict results by recency, e.g. d3 (3 days), w1 (1 week), m6 (6 months), y1 (1 year)",
			},
		}),
	}, nil
}

// InvokableRun 解析 JSON 入参，执行搜索并返回 JSON 结果
func (a *GoogleSearch) InvokableRun(ctx context.Context, argumentsInJSON string, _ ...tool.Option) (string, error) {
	if !a.enable {
		return "", ErrActionDisabled
	}

	var args Args
	if err := json.Unmarshal([]byte(argumentsInJSON), &args); err != nil {
		return "", ErrInvalidArguments.WithCause(err)
	}

	results, err := a.Run(ctx, args)
	if err != nil {
		return "", err
	}
	return EncodeResults(results)
}

// Run 执行一次搜索
func (a *GoogleSearch) Run(ctx context.Context, args Args) (search.Results, error) {
	if !a.enable {
		return nil, ErrActionDisabled
	}
	if strings.TrimSpace(args.Query) == "" {
		return nil, ErrEmptyQuery
	}
	num := args.NumResults
	if num <= 0 {
		num = DefaultNumResults
	}
	return a.searcher.Search(ctx, &search.Request{
		Query:        args.Query,
		NumResults:   num,
		DateRestrict: args.DateRestrict,
	})
}

// EncodeResults 输出 {"0": {...}, "1": {...}}，不转义 HTML 字符
func EncodeResults(results search.Results) (string, error) {
	if results == nil {
		results = search.Results{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(results); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
