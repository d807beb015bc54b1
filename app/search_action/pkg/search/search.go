package search

import "context"

// Fetcher 对单个搜索后端发起一次请求，不负责重试
type Fetcher interface {
	Fetch(ctx context.Context, req *Request) ([]RawItem, error)
}

// Request 通用搜索请求
type Request struct {
	Query        string
	NumResults   int
	DateRestrict string // 原样透传，例如 d3 / w1 / m6
}

// RawItem 后端返回的原始条目，归一化后即丢弃
type RawItem struct {
	Link    string
	Title   string
	Snippet *string // 后端没有返回 snippet 字段时为 nil
}

// Result 归一化后的单条结果
type Result struct {
	URL   string  `json:"url"`
	Summ  string  `json:"summ"`
	Title string  `json:"title"`
	Date  *string `json:"date"` // YYYY-MM-DD，无法解析时为 null
}

// Results 以 0 开始的连续序号为键，顺序即输出顺序
type Results map[int]Result
