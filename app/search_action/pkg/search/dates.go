package search

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	snippetSeparator = "..."
	absoluteLayout   = "Jan 2, 2006"
	dateLayout       = time.DateOnly
)

// relativeUnit 形如 "3 days ago" 的相对时间
type relativeUnit struct {
	pattern *regexp.Regexp
	seconds int64
}

// maxOffsetSeconds 超过一万年的偏移视为无法解析
const maxOffsetSeconds = 10000 * 366 * 24 * 60 * 60

// DateNormalizer 把摘要开头的日期文本转换为 YYYY-MM-DD，构造后只读，可并发使用
type DateNormalizer struct {
	units []relativeUnit
}

// NewDateNormalizer 按 秒/分/时/天/周 的顺序匹配相对时间
func NewDateNormalizer() *DateNormalizer {
	unit := func(name string, seconds int64) relativeUnit {
		return relativeUnit{
			pattern: regexp.MustCompile(`^(\d+)\s+` + name + `s?\s+ago`),
			seconds: seconds,
		}
	}
	return &DateNormalizer{
		units: []relativeUnit{
			unit("second", 1),
			unit("minute", 60),
			unit("hour", 60*60),
			unit("day", 24*60*60),
			unit("week", 7*24*60*60),
		},
	}
}

// Normalize 取摘要中第一个 "..." 之前的文本作为日期候选；无法识别时返回 nil
func (n *DateNormalizer) Normalize(snippet string, now time.Time) *string {
	candidate, _, _ := strings.Cut(snippet, snippetSeparator)
	candidate = strings.TrimSpace(candidate)

	for _, u := range n.units {
		m := u.pattern.FindStringSubmatch(candidate)
		if m == nil {
			continue
		}
		// 只采用第一个匹配的单位
		count, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil || count > math.MaxInt64/u.seconds {
			return nil
		}
		return shift(now, count*u.seconds)
	}

	t, err := time.Parse(absoluteLayout, candidate)
	if err != nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func shift(now time.Time, offset int64) *string {
	if offset > maxOffsetSeconds {
		return nil
	}
	days := offset / (24 * 60 * 60)
	rest := offset % (24 * 60 * 60)
	t := now.AddDate(0, 0, -int(days)).Add(-time.Duration(rest) * time.Second)
	if t.Year() < 1 {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
