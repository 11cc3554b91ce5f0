package chunker

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cloudwego/eino/schema"

	"github.com/fineduguide/fineduguide/core/common"
	"github.com/fineduguide/fineduguide/core/errors"
)

// 分隔符按优先级递归使用：段落、换行、句号、空格，最后按字符硬切
var defaultSeparators = []string{"\n\n", "\n", ".", " ", ""}

// Split 将清洗后的文本切分为带元数据的有序片段
// 每个片段不超过 chunkSize 个字符，相邻片段之间重叠至多 chunkOverlap 个字符
// （取自上一片段尾部，计入下一片段的大小预算），索引从0连续递增
// 仅在参数非法时返回 ErrChunkingFailed；空文本产出空切片
func Split(text string, sourcePath string, chunkSize, chunkOverlap int) ([]*schema.Document, error) {
	if chunkSize <= 0 {
		return nil, errors.Newf(errors.ErrChunkingFailed, "chunk size must be positive, got %d", chunkSize)
	}
	if chunkOverlap < 0 {
		return nil, errors.Newf(errors.ErrChunkingFailed, "chunk overlap must be non-negative, got %d", chunkOverlap)
	}
	if chunkOverlap >= chunkSize {
		return nil, errors.Newf(errors.ErrChunkingFailed, "chunk overlap (%d) must be smaller than chunk size (%d)", chunkOverlap, chunkSize)
	}

	if text == "" {
		return []*schema.Document{}, nil
	}

	units := splitRecursive(text, chunkSize, defaultSeparators)
	chunks := mergeUnits(units, chunkSize, chunkOverlap)

	source := filepath.Base(sourcePath)
	documents := make([]*schema.Document, 0, len(chunks))
	for idx, chunk := range chunks {
		documents = append(documents, &schema.Document{
			ID:      fmt.Sprintf("%s_%d", source, idx),
			Content: chunk,
			MetaData: map[string]interface{}{
				common.MetaSource:       source,
				common.MetaChunkIndex:   idx,
				common.MetaChunkSize:    chunkSize,
				common.MetaChunkOverlap: chunkOverlap,
				common.MetaText:         chunk,
			},
		})
	}
	return documents, nil
}

// splitRecursive 按分隔符优先级切分文本，保证每个单元不超过 chunkSize
// 分隔符保留在所属单元尾部，因此所有单元按序拼接可还原原文
func splitRecursive(text string, chunkSize int, separators []string) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}
	if len(separators) == 0 || separators[0] == "" {
		return splitByLength(text, chunkSize)
	}

	sep := separators[0]
	if !strings.Contains(text, sep) {
		// 当前层级无法切分，下沉到下一级分隔符
		return splitRecursive(text, chunkSize, separators[1:])
	}

	var units []string
	for _, part := range splitKeepSeparator(text, sep) {
		if len(part) <= chunkSize {
			units = append(units, part)
			continue
		}
		units = append(units, splitRecursive(part, chunkSize, separators[1:])...)
	}
	return units
}

// splitKeepSeparator 切分并把分隔符留在前一部分的尾部
func splitKeepSeparator(text, sep string) []string {
	parts := strings.Split(text, sep)
	result := make([]string, 0, len(parts))
	for i, part := range parts {
		if i < len(parts)-1 {
			result = append(result, part+sep)
			continue
		}
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}

// splitByLength 字符级兜底切分
func splitByLength(text string, chunkSize int) []string {
	var pieces []string
	for len(text) > chunkSize {
		pieces = append(pieces, text[:chunkSize])
		text = text[chunkSize:]
	}
	if text != "" {
		pieces = append(pieces, text)
	}
	return pieces
}

// mergeUnits 将小单元贪心合并为不超过 chunkSize 的片段
// 新片段以上一片段的尾部 chunkOverlap 个字符开头，保证跨片段的局部上下文连续
// 重叠前缀计入片段大小预算，前缀加首个单元超限时收缩前缀，片段长度始终不超过 chunkSize
// 去掉每个片段的重叠前缀后按序拼接即可还原原文
func mergeUnits(units []string, chunkSize, chunkOverlap int) []string {
	var chunks []string
	var current strings.Builder
	prefixLen := 0

	for _, unit := range units {
		if current.Len() > prefixLen && current.Len()+len(unit) > chunkSize {
			chunk := current.String()
			chunks = append(chunks, chunk)

			overlap := chunkOverlap
			if overlap > chunkSize-len(unit) {
				overlap = chunkSize - len(unit)
			}
			prefix := tail(chunk, overlap)
			current.Reset()
			current.WriteString(prefix)
			prefixLen = len(prefix)
		}
		current.WriteString(unit)
	}

	if current.Len() > prefixLen || len(chunks) == 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

func tail(s string, n int) string {
	if n <= 0 || len(s) <= n {
		if n <= 0 {
			return ""
		}
		return s
	}
	return s[len(s)-n:]
}
