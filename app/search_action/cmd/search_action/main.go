package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/iWorld-y/search_action/app/search_action/pkg/action"
	"github.com/iWorld-y/search_action/app/search_action/pkg/config"
	"github.com/iWorld-y/search_action/app/search_action/pkg/logger"
	"github.com/iWorld-y/search_action/app/search_action/pkg/search/factory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		log.Fatal(err)
	}
}

// run 执行一次搜索；标准输出只写结果 JSON，日志写入 stderr
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("search_action", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		flagconf     = fs.String("conf", "app/search_action/configs/config.yaml", "config path, eg: -conf config.yaml")
		query        = fs.String("q", "", "search query")
		numResults   = fs.Int("num", action.DefaultNumResults, "number of results to request")
		dateRestrict = fs.String("date", "", "date restrict token, eg: d3, w1, m6")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// 1. 加载配置
	cfg, err := config.LoadConfig(*flagconf)
	if err != nil {
		return fmt.Errorf("无法加载配置文件: %w", err)
	}
	if *query == "" {
		return fmt.Errorf("参数错误: 未指定搜索关键词 (-q)")
	}

	// 2. 初始化日志
	if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File, logger.WithConsole(stderr)); err != nil {
		return fmt.Errorf("无法初始化日志: %w", err)
	}

	// 3. 初始化搜索客户端
	client, err := factory.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("搜索客户端初始化失败: %w", err)
	}
	tool := action.New(client, cfg.Search.Enabled())
	logger.Log.Infof("搜索后端: %s, top_k=%d", cfg.Search.Provider, cfg.Search.TopK)

	// 4. 执行搜索
	results, err := tool.Run(ctx, action.Args{
		Query:        *query,
		NumResults:   *numResults,
		DateRestrict: *dateRestrict,
	})
	if err != nil {
		return fmt.Errorf("搜索失败 [%s]: %w", *query, err)
	}

	out, err := action.EncodeResults(results)
	if err != nil {
		return fmt.Errorf("结果编码失败: %w", err)
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}
