package retriever

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/fineduguide/fineduguide/core/common"
)

// NoRelevantDocuments 没有任何分块达到阈值时返回的占位上下文
const NoRelevantDocuments = "No relevant documents found for the query."

// AssembleContext 把检索结果拼装为提示词用的上下文
// 低于 threshold 的分块被丢弃，剩余分块按分数降序排列（同分保持原有顺序）
func AssembleContext(docs []*schema.Document, threshold float64) string {
	filtered := make([]*schema.Document, 0, len(docs))
	for _, doc := range docs {
		if doc.Score() >= threshold {
			filtered = append(filtered, doc)
		}
	}

	if len(filtered) == 0 {
		return NoRelevantDocuments
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score() > filtered[j].Score()
	})

	var sb strings.Builder
	for _, doc := range filtered {
		source := doc.MetaData[common.MetaSource]
		chunkIndex := doc.MetaData[common.MetaChunkIndex]
		fmt.Fprintf(&sb, "Source: %v, Chunk Index: %v, Similarity Score: %.4f\n%s\n\n",
			source, chunkIndex, doc.Score(), doc.Content)
	}
	return strings.TrimSpace(sb.String())
}
