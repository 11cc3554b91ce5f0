package indexer

import (
	"context"

	"github.com/cloudwego/eino/schema"
	"github.com/gogf/gf/v2/frame/g"

	"github.com/fineduguide/fineduguide/core/errors"
	"github.com/fineduguide/fineduguide/core/vector_store"
)

// Embedder 批量向量化接口，便于测试时替换
type Embedder interface {
	EmbedStrings(ctx context.Context, texts []string) ([][]float32, error)
}

// Indexer 负责把分块向量化后写入向量库
type Indexer struct {
	embedder Embedder
	store    vector_store.VectorStore
}

func NewIndexer(embedder Embedder, store vector_store.VectorStore) *Indexer {
	return &Indexer{
		embedder: embedder,
		store:    store,
	}
}

// StoreChunks 向量化所有分块并upsert到指定集合
// 空分块列表和向量化失败视为调用方错误，直接返回error
// 向量库写入失败只记录日志并返回 ok=false，由调用方决定如何上报
func (ix *Indexer) StoreChunks(ctx context.Context, collectionName string, chunks []*schema.Document) (bool, error) {
	if len(chunks) == 0 {
		return false, errors.New(errors.ErrInvalidParameter, "no documents provided for embedding")
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Content
	}

	vectors, err := ix.embedder.EmbedStrings(ctx, texts)
	if err != nil {
		return false, err
	}
	if len(vectors) != len(chunks) {
		return false, errors.Newf(errors.ErrEmbeddingFailed, "embedding count (%d) doesn't match chunk count (%d)", len(vectors), len(chunks))
	}

	ids, err := ix.store.UpsertChunks(ctx, collectionName, chunks, vectors)
	if err != nil {
		g.Log().Errorf(ctx, "failed to store embeddings in collection %s: %v", collectionName, err)
		return false, nil
	}

	g.Log().Infof(ctx, "Stored %d chunks in collection '%s'", len(ids), collectionName)
	return true, nil
}
