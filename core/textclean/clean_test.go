package textclean

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCollapsesWhitespace(t *testing.T) {
	input := "Compound   interest\n\nis \t interest  on  interest."
	result := Clean(input)

	assert.Equal(t, "Compound interest is interest on interest.", result)
	assert.NotContains(t, result, "  ")
	assert.NotContains(t, result, "\n")
}

func TestCleanRemovesDisallowedCharacters(t *testing.T) {
	// @#$% 被移除，白名单标点保留，残留的连续空格再次合并
	input := `Savings@#$ rate: 4.5% (annual) % "fixed"!`
	result := Clean(input)

	assert.Equal(t, `Savings rate: 4.5 (annual) "fixed"!`, result)
	assert.NotContains(t, result, "@")
	assert.NotContains(t, result, "%")
	assert.Contains(t, result, ":")
	assert.Contains(t, result, "(annual)")
}

func TestCleanKeepsNonASCIIWordCharacters(t *testing.T) {
	// 重音字符和中日韩文字是单词字符，不在移除之列
	input := "café risqué 金融教育 naïve"
	assert.Equal(t, input, Clean(input))

	// 混合内容：非法符号被移除，Unicode 文本保留
	assert.Equal(t, "Épargne: 4.5 利率", Clean("Épargne:€ 4.5% 利率"))
}

func TestCleanTrimsLeadingAndTrailing(t *testing.T) {
	assert.Equal(t, "hello world", Clean("   hello world \n\t"))
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"  Compound\tinterest\n\nexplained!  ",
		"plain text",
		"",
		"symbols & more ** here %%",
		"a  b   c    d",
	}

	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		assert.Equal(t, once, twice, "Clean should be idempotent for %q", input)
	}
}

func TestCleanEmptyInput(t *testing.T) {
	assert.Equal(t, "", Clean(""))
	assert.Equal(t, "", Clean("   \n\t  "))
}
