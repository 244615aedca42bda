package query

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// 分页默认值与上限。调用方传入超过上限的 limit 会被收敛到 MaxLimit。
const (
	DefaultLimit = 20
	MaxLimit     = 50
)

var (
	ErrInvalidSort       = errors.New("invalid_sort_type")
	ErrInvalidSearchType = errors.New("invalid_search_type")
	ErrInvalidPage       = errors.New("invalid_page")
)

type SortType string

const (
	SortHot          SortType = "Hot"
	SortNew          SortType = "New"
	SortTop          SortType = "Top"
	SortMostComments SortType = "MostComments"
)

func ParseSort(s string) (SortType, error) {
	switch SortType(s) {
	case SortHot, SortNew, SortTop, SortMostComments:
		return SortType(s), nil
	}
	return "", ErrInvalidSort
}

type SearchType string

const (
	SearchPosts       SearchType = "Posts"
	SearchComments    SearchType = "Comments"
	SearchCommunities SearchType = "Communities"
	SearchUsers       SearchType = "Users"
	SearchURL         SearchType = "Url"
	SearchAll         SearchType = "All"
)

func ParseSearchType(s string) (SearchType, error) {
	switch SearchType(s) {
	case SearchPosts, SearchComments, SearchCommunities, SearchUsers, SearchURL, SearchAll:
		return SearchType(s), nil
	}
	return "", ErrInvalidSearchType
}

// LimitAndOffset 把可选的 page/limit 换算成 SQL 的 limit/offset。
// page 从 1 开始，缺省为 1；limit 缺省 DefaultLimit，超过 MaxLimit 时收敛。
func LimitAndOffset(page, limit *int) (int, int, error) {
	p := 1
	if page != nil {
		if *page < 1 {
			return 0, 0, ErrInvalidPage
		}
		p = *page
	}

	l := DefaultLimit
	if limit != nil && *limit > 0 {
		l = *limit
		if l > MaxLimit {
			l = MaxLimit
		}
	}

	return l, (p - 1) * l, nil
}

// hotRankOrder 热度排序：分数随发布时间衰减，类似 Hacker News 的 (P-1)/(T+2)^G。
// PostgreSQL 直接在 SQL 里算；其他方言（测试用的 sqlite）没有 power 函数，
// 退化为线性时间衰减，排序趋势一致。
func hotRankOrder(conn *gorm.DB, table string) string {
	if conn.Dialector.Name() == "postgres" {
		return fmt.Sprintf(
			"(%s.score - 1) / power(((extract(epoch from (now() - %s.created_at))) / 3600) + 2, 1.8) DESC, %s.created_at DESC",
			table, table, table)
	}
	return fmt.Sprintf(
		"%s.score / ((julianday('now') - julianday(%s.created_at)) * 24 + 2) DESC, %s.created_at DESC",
		table, table, table)
}

// likePattern 大小写不敏感的子串匹配模式
func likePattern(term string) string {
	return "%" + term + "%"
}
