package validate

import (
	"strconv"
	"strings"
)

// parseOptionalNumber 把文本转成数值。空串视为缺省，
// 非数字文本返回错误而不是静默归零。
func parseOptionalNumber(s string) (*float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, false
	}
	return &f, true
}

// parseOptionalBool 解析TRUE/FALSE(不区分大小写)与1/0
func parseOptionalBool(s string) (*bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return nil, true
	case "true", "1", "yes":
		b := true
		return &b, true
	case "false", "0", "no":
		b := false
		return &b, true
	default:
		return nil, false
	}
}

// isWhole 数值是否为整数
func isWhole(f float64) bool {
	return f == float64(int64(f))
}

// NormName 名称统一成比较用的形态，重复检测的键
func NormName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
