package retriever

import (
	"context"

	"github.com/cloudwego/eino/schema"
	"github.com/gogf/gf/v2/frame/g"

	"github.com/fineduguide/fineduguide/core/common"
	"github.com/fineduguide/fineduguide/core/errors"
	"github.com/fineduguide/fineduguide/core/vector_store"
)

// Embedder 查询向量化接口
type Embedder interface {
	EmbedString(ctx context.Context, text string) ([]float32, error)
}

// Engine 向量检索引擎
type Engine struct {
	embedder Embedder
	store    vector_store.VectorStore
}

func NewEngine(embedder Embedder, store vector_store.VectorStore) *Engine {
	return &Engine{
		embedder: embedder,
		store:    store,
	}
}

// Retrieve 向量化查询并返回最相似的 topK 个分块
// 结果按向量库返回的相似度排列，分数已归一化到 [0,1]
func (e *Engine) Retrieve(ctx context.Context, collectionName string, query string, topK int) ([]*schema.Document, error) {
	if query == "" {
		return nil, errors.New(errors.ErrInvalidParameter, "query cannot be empty")
	}
	if topK <= 0 {
		return nil, errors.Newf(errors.ErrInvalidParameter, "topK must be positive, got %d", topK)
	}

	vector, err := e.embedder.EmbedString(ctx, query)
	if err != nil {
		return nil, err
	}

	docs, err := e.store.Search(ctx, collectionName, vector, topK)
	if err != nil {
		g.Log().Errorf(ctx, "vector search failed for collection %s: %v", collectionName, err)
		return nil, errors.Newf(errors.ErrVectorSearch, "vector search failed: %v", err)
	}

	// 去重，主键相同的分块只保留一个
	docs = common.RemoveDuplicates(docs, func(doc *schema.Document) string {
		return doc.ID
	})

	g.Log().Debugf(ctx, "retrieved %d chunks for query from collection %s", len(docs), collectionName)
	return docs, nil
}
