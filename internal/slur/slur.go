package slur

import (
	"strings"
)

// Filter 对用户提交的自由文本做违禁词扫描。
// 匹配规则：不区分大小写的子串匹配。
type Filter struct {
	terms []string
}

func NewFilter(terms []string) *Filter {
	return &Filter{terms: terms}
}

// Check 返回文本中命中的全部违禁词（按词表顺序），便于调用方一次性报告。
// 未命中返回空切片。
func (f *Filter) Check(text string) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, term := range f.terms {
		if term == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(term)) {
			matched = append(matched, term)
		}
	}
	return matched
}

// Join 把命中的违禁词拼成一条错误信息
func Join(matched []string) string {
	return "No slurs - " + strings.Join(matched, ", ")
}
