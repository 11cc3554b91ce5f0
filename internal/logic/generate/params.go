package generate

import (
	"regexp"
	"strings"

	"github.com/fineduguide/fineduguide/core/errors"
)

// minQueryLength 清理后的查询至少需要的字符数
const minQueryLength = 5

var (
	// 移除可能干扰下游处理的字符
	unsafeCharsRe = regexp.MustCompile(`[<>"'/\\]`)
	// 连续空白合并为一个空格
	querySpaceRe = regexp.MustCompile(`\s+`)
)

// ParseUserQuery 清理用户查询并校验长度
// 过短的查询无法产生有意义的检索结果，直接拒绝
func ParseUserQuery(raw string) (string, error) {
	cleaned := unsafeCharsRe.ReplaceAllString(raw, "")
	cleaned = querySpaceRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	if len(cleaned) < minQueryLength {
		return "", errors.New(errors.ErrQueryTooShort, "Query too short. Please provide a more detailed query.")
	}
	return cleaned, nil
}
