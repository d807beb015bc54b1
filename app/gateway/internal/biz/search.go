package biz

import (
	"context"

	"github.com/cloudwego/eino/schema"
	"github.com/go-kratos/kratos/v2/log"

	"github.com/iWorld-y/search_action/app/search_action/pkg/action"
	"github.com/iWorld-y/search_action/app/search_action/pkg/search"
)

// SearchAction 由 *action.GoogleSearch 实现
type SearchAction interface {
	Enabled() bool
	Info(ctx context.Context) (*schema.ToolInfo, error)
	Run(ctx context.Context, args action.Args) (search.Results, error)
}

// SearchUseCase 搜索业务逻辑
type SearchUseCase struct {
	action SearchAction
	log    *log.Helper
}

// NewSearchUseCase 创建搜索业务逻辑实例
func NewSearchUseCase(a SearchAction, logger log.Logger) *SearchUseCase {
	return &SearchUseCase{action: a, log: log.NewHelper(logger)}
}

// Search 执行一次搜索
func (uc *SearchUseCase) Search(ctx context.Context, args action.Args) (search.Results, error) {
	results, err := uc.action.Run(ctx, args)
	if err != nil {
		uc.log.WithContext(ctx).Errorf("search failed [%s]: %v", args.Query, err)
		return nil, err
	}
	uc.log.WithContext(ctx).Infof("search [%s] returned %d results", args.Query, len(results))
	return results, nil
}

// Tools 列出已启用的工具描述
func (uc *SearchUseCase) Tools(ctx context.Context) ([]*schema.ToolInfo, error) {
	if !uc.action.Enabled() {
		return []*schema.ToolInfo{}, nil
	}
	info, err := uc.action.Info(ctx)
	if err != nil {
		return nil, err
	}
	return []*schema.ToolInfo{info}, nil
}
