package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/iWorld-y/search_action/app/search_action/pkg/search"
)

const DefaultBaseURL = "https://www.googleapis.com/customsearch/v1"

// Client Google 自定义搜索 API 客户端
type Client struct {
	apiKey   string
	engineID string
	baseURL  string
	client   *http.Client
}

// NewClient 创建一个新的 Google 自定义搜索客户端，timeout 单位为秒
func NewClient(apiKey, engineID, baseURL string, timeout int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	t := time.Duration(timeout) * time.Second
	if t == 0 {
		t = 30 * time.Second
	}
	return &Client{
		apiKey:   apiKey,
		engineID: engineID,
		baseURL:  baseURL,
		client:   &http.Client{Timeout: t},
	}
}

// Ensure Client implements search.Fetcher
var _ search.Fetcher = (*Client)(nil)

// SearchResponse Google 搜索响应，只解析用到的字段
type SearchResponse struct {
	Items []SearchItem `json:"items"`
}

// SearchItem 单条结果，snippet 可能缺失
type SearchItem struct {
	Link    string  `json:"link"`
	Title   string  `json:"title"`
	Snippet *string `json:"snippet"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Fetch 实现 search.Fetcher，请求一次 customsearch/v1
func (c *Client) Fetch(ctx context.Context, req *search.Request) ([]search.RawItem, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	q.Set("key", c.apiKey)
	q.Set("cx", c.engineID)
	q.Set("q", req.Query)
	if req.NumResults > 0 {
		q.Set("num", strconv.Itoa(req.NumResults))
	}
	if req.DateRestrict != "" {
		q.Set("dateRestrict", req.DateRestrict)
	}
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body failed: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("google api error (status %d): %s", res.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("google api error (status %d): %s", res.StatusCode, string(body))
	}

	var searchResp SearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("unmarshal response failed: %w", err)
	}

	// 没有命中时 Google 不返回 items 字段
	items := make([]search.RawItem, 0, len(searchResp.Items))
	for _, it := range searchResp.Items {
		items = append(items, search.RawItem{
			Link:    it.Link,
			Title:   it.Title,
			Snippet: it.Snippet,
		})
	}
	return items, nil
}
