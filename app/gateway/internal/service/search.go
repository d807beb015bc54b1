package service

import (
	"strconv"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"

	"github.com/iWorld-y/search_action/app/gateway/internal/biz"
	"github.com/iWorld-y/search_action/app/search_action/pkg/action"
)

type SearchService struct {
	uc  *biz.SearchUseCase
	log *log.Helper
}

func NewSearchService(uc *biz.SearchUseCase, logger log.Logger) *SearchService {
	return &SearchService{uc: uc, log: log.NewHelper(logger)}
}

// Search GET /v1/search?q=&num=&date_restrict=
func (s *SearchService) Search(ctx http.Context) error {
	q := ctx.Query()

	var num int
	if v := q.Get("num"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.BadRequest("INVALID_NUM", "num must be an integer")
		}
		num = n
	}

	results, err := s.uc.Search(ctx, action.Args{
		Query:        q.Get("q"),
		NumResults:   num,
		DateRestrict: q.Get("date_restrict"),
	})
	if err != nil {
		return err
	}
	return ctx.Result(200, results)
}

// Tools GET /v1/tools
func (s *SearchService) Tools(ctx http.Context) error {
	tools, err := s.uc.Tools(ctx)
	if err != nil {
		return err
	}
	return ctx.Result(200, tools)
}
