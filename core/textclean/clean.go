package textclean

import (
	"regexp"
	"strings"
)

var (
	// 所有空白字符（含换行、制表符）合并为一个空格
	whitespaceRe = regexp.MustCompile(`\s+`)
	// 白名单之外的字符一律移除：单词字符、空白以及固定标点集
	// Go 的 \w 只匹配 ASCII，必须用 Unicode 类，否则重音字符和中日韩文本会被清掉
	disallowedRe = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?;:\-'"()]`)
	// 移除字符后可能产生的连续空格再次合并
	multiSpaceRe = regexp.MustCompile(` +`)
)

// Clean 清洗提取出的原始文本，供分块和向量化使用
// 纯函数且幂等：Clean(Clean(s)) == Clean(s)
func Clean(text string) string {
	s := whitespaceRe.ReplaceAllString(text, " ")
	s = disallowedRe.ReplaceAllString(s, "")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
