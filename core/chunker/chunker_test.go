package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fineduguide/fineduguide/core/common"
	"github.com/fineduguide/fineduguide/core/errors"
)

func TestSplitRejectsInvalidParameters(t *testing.T) {
	cases := []struct {
		name    string
		size    int
		overlap int
	}{
		{"zero size", 0, 0},
		{"negative size", -1, 0},
		{"negative overlap", 100, -1},
		{"overlap equals size", 100, 100},
		{"overlap exceeds size", 100, 150},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			docs, err := Split("some text", "doc.txt", c.size, c.overlap)
			assert.Nil(t, docs)
			assert.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrChunkingFailed))
		})
	}
}

func TestSplitEmptyText(t *testing.T) {
	docs, err := Split("", "doc.txt", 1000, 200)
	assert.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Len(t, docs, 0)
}

func TestSplitShortTextSingleChunk(t *testing.T) {
	text := "Compound interest is interest calculated on both the principal and prior interest."
	docs, err := Split(text, "/tmp/upload/basics.txt", 1000, 200)
	assert.NoError(t, err)
	assert.Len(t, docs, 1)

	doc := docs[0]
	assert.Equal(t, "basics.txt_0", doc.ID)
	assert.Equal(t, text, doc.Content)
	assert.Equal(t, "basics.txt", doc.MetaData[common.MetaSource])
	assert.Equal(t, 0, doc.MetaData[common.MetaChunkIndex])
	assert.Equal(t, 1000, doc.MetaData[common.MetaChunkSize])
	assert.Equal(t, 200, doc.MetaData[common.MetaChunkOverlap])
	assert.Equal(t, text, doc.MetaData[common.MetaText])
}

func TestSplitReconstructsOriginalText(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&sb, "Paragraph %d covers savings accounts, deposit insurance and rates.\n\n", i)
	}
	text := strings.TrimSuffix(sb.String(), "\n\n")

	const size, overlap = 200, 50
	docs, err := Split(text, "guide.pdf", size, overlap)
	assert.NoError(t, err)
	assert.Greater(t, len(docs), 1)

	// 去掉重叠前缀后按序拼接应还原原文
	var rebuilt strings.Builder
	for i, doc := range docs {
		if i == 0 {
			rebuilt.WriteString(doc.Content)
			continue
		}
		prev := docs[i-1].Content
		prefix := overlap
		if len(prev) < prefix {
			prefix = len(prev)
		}
		assert.True(t, strings.HasPrefix(doc.Content, prev[len(prev)-prefix:]),
			"chunk %d should start with the tail of chunk %d", i, i-1)
		rebuilt.WriteString(doc.Content[prefix:])
	}
	assert.Equal(t, text, rebuilt.String())
}

func TestSplitChunkSizeAndIndices(t *testing.T) {
	text := strings.Repeat("Interest rates vary across products. ", 120)
	const size, overlap = 300, 60

	docs, err := Split(text, "rates.txt", size, overlap)
	assert.NoError(t, err)
	assert.Greater(t, len(docs), 1)

	for i, doc := range docs {
		assert.Equal(t, fmt.Sprintf("rates.txt_%d", i), doc.ID)
		assert.Equal(t, i, doc.MetaData[common.MetaChunkIndex])
		assert.LessOrEqual(t, len(doc.Content), size,
			"chunk %d exceeds chunk size", i)
		assert.NotEmpty(t, doc.Content)
	}
}

func TestSplitOverlapCountsTowardChunkSize(t *testing.T) {
	// 一个601字符的句子后跟一个1000字符的句子：重叠前缀必须收缩，
	// 否则第二个片段会变成 200+1000 字符
	text := strings.Repeat("a", 600) + "." + strings.Repeat("b", 999) + "."
	const size, overlap = 1000, 200

	docs, err := Split(text, "dense.txt", size, overlap)
	assert.NoError(t, err)
	assert.Len(t, docs, 2)
	for i, doc := range docs {
		assert.LessOrEqual(t, len(doc.Content), size,
			"chunk %d exceeds chunk size", i)
	}
	assert.Equal(t, strings.Repeat("a", 600)+".", docs[0].Content)
	assert.Equal(t, strings.Repeat("b", 999)+".", docs[1].Content)
}

func TestSplitWithoutSeparatorsFallsBackToCharacters(t *testing.T) {
	// 无任何分隔符的连续字符串仍必须被切开
	text := strings.Repeat("a", 2500)
	docs, err := Split(text, "blob.txt", 1000, 0)
	assert.NoError(t, err)
	assert.Len(t, docs, 3)

	var rebuilt strings.Builder
	for _, doc := range docs {
		rebuilt.WriteString(doc.Content)
	}
	assert.Equal(t, text, rebuilt.String())
}

func TestSplitPrefersParagraphBoundaries(t *testing.T) {
	para := strings.Repeat("x", 180)
	text := para + "\n\n" + para + "\n\n" + para

	docs, err := Split(text, "doc.txt", 200, 20)
	assert.NoError(t, err)
	assert.Len(t, docs, 3)
	// 每个段落自身可放入一个分块，切分应落在段落边界而非段落中间
	assert.Equal(t, para+"\n\n", docs[0].Content)
}
