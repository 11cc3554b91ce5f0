package retriever

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cloudwego/eino/schema"

	"github.com/fineduguide/fineduguide/core/common"
)

func chunk(id string, source string, index int, score float64, text string) *schema.Document {
	doc := &schema.Document{
		ID:      id,
		Content: text,
		MetaData: map[string]interface{}{
			common.MetaSource:     source,
			common.MetaChunkIndex: index,
		},
	}
	return doc.WithScore(score)
}

func TestAssembleContextFiltersAndSorts(t *testing.T) {
	docs := []*schema.Document{
		chunk("a.txt_0", "a.txt", 0, 0.9, "high relevance"),
		chunk("a.txt_1", "a.txt", 1, 0.3, "below threshold"),
		chunk("b.txt_0", "b.txt", 0, 0.6, "medium relevance"),
	}

	result := AssembleContext(docs, 0.5)

	assert.NotContains(t, result, "below threshold")
	assert.Contains(t, result, "high relevance")
	assert.Contains(t, result, "medium relevance")
	// 分数高的排在前面
	assert.Less(t, strings.Index(result, "high relevance"), strings.Index(result, "medium relevance"))
}

func TestAssembleContextFormat(t *testing.T) {
	docs := []*schema.Document{
		chunk("guide.pdf_2", "guide.pdf", 2, 0.8765, "Deposit insurance covers up to a fixed amount."),
	}

	result := AssembleContext(docs, 0.5)

	expected := "Source: guide.pdf, Chunk Index: 2, Similarity Score: 0.8765\nDeposit insurance covers up to a fixed amount."
	assert.Equal(t, expected, result)
	assert.False(t, strings.HasSuffix(result, "\n"))
}

func TestAssembleContextNoRelevantDocuments(t *testing.T) {
	docs := []*schema.Document{
		chunk("a.txt_0", "a.txt", 0, 0.2, "irrelevant"),
		chunk("a.txt_1", "a.txt", 1, 0.49, "almost relevant"),
	}

	assert.Equal(t, NoRelevantDocuments, AssembleContext(docs, 0.5))
	assert.Equal(t, NoRelevantDocuments, AssembleContext(nil, 0.5))
}

func TestAssembleContextThresholdInclusive(t *testing.T) {
	docs := []*schema.Document{
		chunk("a.txt_0", "a.txt", 0, 0.5, "exactly at threshold"),
	}

	result := AssembleContext(docs, 0.5)
	assert.Contains(t, result, "exactly at threshold")
}

func TestAssembleContextStableOrderForEqualScores(t *testing.T) {
	var docs []*schema.Document
	for i := 0; i < 5; i++ {
		docs = append(docs, chunk(fmt.Sprintf("a.txt_%d", i), "a.txt", i, 0.7, fmt.Sprintf("chunk-%d", i)))
	}

	result := AssembleContext(docs, 0.5)

	// 同分时保持输入顺序
	last := -1
	for i := 0; i < 5; i++ {
		pos := strings.Index(result, fmt.Sprintf("chunk-%d", i))
		assert.Greater(t, pos, last)
		last = pos
	}
}
