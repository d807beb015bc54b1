package search

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/search_action/app/search_action/pkg/logger"
)

const (
	DefaultTopK        = 3
	DefaultMaxAttempts = 3
	DefaultMinDelay    = 2 * time.Second
	DefaultMaxDelay    = 5 * time.Second
)

// ErrRetriesExhausted 所有尝试均失败后返回，不附带任何部分结果
var ErrRetriesExhausted = errors.ServiceUnavailable("SEARCH_RETRIES_EXHAUSTED", "failed to get search results after retries")

// Options 客户端配置，构造后只读
type Options struct {
	TopK        int
	BlockList   []string // URL 中包含任一子串即被过滤
	MaxAttempts int
	MinDelay    time.Duration // 重试间隔取 [MinDelay, MaxDelay] 内的随机整秒
	MaxDelay    time.Duration
	Limiter     *rate.Limiter // 可选，每次尝试前等待

	// Sleep 重试间隔的等待函数，为空时使用可被 ctx 取消的定时器
	Sleep func(ctx context.Context, d time.Duration) error
}

func (o Options) withDefaults() Options {
	if o.TopK <= 0 {
		o.TopK = DefaultTopK
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.MinDelay <= 0 {
		o.MinDelay = DefaultMinDelay
	}
	if o.MaxDelay < o.MinDelay {
		o.MaxDelay = max(DefaultMaxDelay, o.MinDelay)
	}
	if o.Sleep == nil {
		o.Sleep = sleepContext
	}
	o.BlockList = append([]string(nil), o.BlockList...)
	return o
}

// Client 搜索客户端：请求、重试、日期归一化、过滤截断
type Client struct {
	fetcher Fetcher
	opts    Options
	dates   *DateNormalizer

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
	randN func(n int) int
}

// NewClient 创建搜索客户端，不校验参数
func NewClient(fetcher Fetcher, opts Options) *Client {
	opts = opts.withDefaults()
	return &Client{
		fetcher: fetcher,
		opts:    opts,
		dates:   NewDateNormalizer(),
		now:     time.Now,
		sleep:   opts.Sleep,
		randN:   rand.IntN,
	}
}

// TopK 返回结果数上限
func (c *Client) TopK() int {
	return c.opts.TopK
}

// Search 执行搜索；失败时按配置重试，全部失败返回 ErrRetriesExhausted
func (c *Client) Search(ctx context.Context, req *Request) (Results, error) {
	var lastErr error
	for attempt := 1; attempt <= c.opts.MaxAttempts; attempt++ {
		results, err := c.attempt(ctx, req)
		if err == nil {
			return results, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		lastErr = err

		logger.Log.WithFields(logrus.Fields{
			"query":   req.Query,
			"attempt": attempt,
		}).Warnf("Retry %d/%d due to error: %v", attempt, c.opts.MaxAttempts, err)

		if attempt == c.opts.MaxAttempts {
			break
		}
		if err := c.sleep(ctx, c.retryDelay()); err != nil {
			return nil, err
		}
	}
	return nil, ErrRetriesExhausted.WithCause(lastErr)
}

func (c *Client) attempt(ctx context.Context, req *Request) (Results, error) {
	if c.opts.Limiter != nil {
		if err := c.opts.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	items, err := c.fetcher.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}
	return c.filter(c.normalize(items)), nil
}

func (c *Client) retryDelay() time.Duration {
	lo := int(c.opts.MinDelay / time.Second)
	hi := int(c.opts.MaxDelay / time.Second)
	return time.Duration(lo+c.randN(hi-lo+1)) * time.Second
}

// normalize 跳过没有 snippet 的条目，保持后端返回顺序
func (c *Client) normalize(items []RawItem) []Result {
	now := c.now()
	out := make([]Result, 0, len(items))
	for _, item := range items {
		if item.Snippet == nil {
			logger.Log.Infof("no snippet for %s", item.Link)
			continue
		}
		out = append(out, Result{
			URL:   item.Link,
			Summ:  escapeSnippet(*item.Snippet),
			Title: item.Title,
			Date:  c.dates.Normalize(*item.Snippet, now),
		})
	}
	return out
}

// filter 按原顺序保留未被屏蔽的条目，达到 TopK 后停止
func (c *Client) filter(candidates []Result) Results {
	out := make(Results, c.opts.TopK)
	for _, r := range candidates {
		if len(out) >= c.opts.TopK {
			break
		}
		if c.blocked(r.URL) {
			continue
		}
		out[len(out)] = r
	}
	return out
}

func (c *Client) blocked(url string) bool {
	if strings.HasSuffix(url, ".pdf") {
		return true
	}
	for _, domain := range c.opts.BlockList {
		if strings.Contains(url, domain) {
			return true
		}
	}
	return false
}

// lineSeparators 还原 encoding/json 对 U+2028、U+2029 的转义
// 已转义的反斜杠原样跳过，避免误改正文中的字面量 \u2028
var lineSeparators = strings.NewReplacer(`\\`, `\\`, `\u2028`, "\u2028", `\u2029`, "\u2029")

// escapeSnippet 返回 JSON 字符串转义后的内容（去掉首尾引号，保留非 ASCII 字符）
func escapeSnippet(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return s
	}
	out := strings.TrimSuffix(buf.String(), "\n")
	return lineSeparators.Replace(out[1 : len(out)-1])
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
