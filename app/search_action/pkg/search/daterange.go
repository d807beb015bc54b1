package search

import (
	"strconv"
	"strings"
)

// DateRestrictRange 把 Google 的 dateRestrict（d[n] / w[n] / m[n] / y[n]）
// 映射为 day / week / month / year，供只支持命名区间的后端使用。
// 无法识别时返回空串。
func DateRestrictRange(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return ""
	}

	n := 1
	if rest := token[1:]; rest != "" {
		v, err := strconv.Atoi(rest)
		if err != nil || v <= 0 {
			return ""
		}
		n = v
	}

	var days int
	switch token[0] {
	case 'd':
		days = n
	case 'w':
		days = 7 * n
	case 'm':
		days = 31 * n
	case 'y':
		days = 366 * n
	default:
		return ""
	}

	switch {
	case days <= 1:
		return "day"
	case days <= 7:
		return "week"
	case days <= 31:
		return "month"
	default:
		return "year"
	}
}
