package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fineduguide/fineduguide/core/errors"
)

func TestParseUserQueryStripsUnsafeCharacters(t *testing.T) {
	query, err := ParseUserQuery(`<what> is "compound" 'interest'/ \explained`)
	assert.NoError(t, err)
	assert.Equal(t, "what is compound interest explained", query)
}

func TestParseUserQueryCollapsesWhitespace(t *testing.T) {
	query, err := ParseUserQuery("  what \t is\n\ncompound   interest  ")
	assert.NoError(t, err)
	assert.Equal(t, "what is compound interest", query)
}

func TestParseUserQueryRejectsShortQueries(t *testing.T) {
	for _, input := range []string{"", "    ", "abc", "<></>", `""''`, "hi"} {
		_, err := ParseUserQuery(input)
		assert.Error(t, err, "input %q", input)
		assert.True(t, errors.IsCode(err, errors.ErrQueryTooShort))
	}
}

func TestParseUserQueryMinimumLength(t *testing.T) {
	// 清理后刚好5个字符
	query, err := ParseUserQuery("rates")
	assert.NoError(t, err)
	assert.Equal(t, "rates", query)

	_, err = ParseUserQuery("rate")
	assert.True(t, errors.IsCode(err, errors.ErrQueryTooShort))
}
