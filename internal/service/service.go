package service

import (
	"context"
	"sync"

	"github.com/gogf/gf/v2/frame/g"

	"github.com/fineduguide/fineduguide/core/config"
	"github.com/fineduguide/fineduguide/core/embedding"
	"github.com/fineduguide/fineduguide/core/extract"
	"github.com/fineduguide/fineduguide/core/generation"
	"github.com/fineduguide/fineduguide/core/indexer"
	"github.com/fineduguide/fineduguide/core/retriever"
	"github.com/fineduguide/fineduguide/core/vector_store"
)

// 进程级单例，懒加载
var (
	vectorStoreOnce sync.Once
	vectorStoreInst vector_store.VectorStore
	vectorStoreErr  error

	embedderOnce sync.Once
	embedderInst *embedding.Client
	embedderErr  error

	indexerOnce sync.Once
	indexerInst *indexer.Indexer

	retrieverOnce sync.Once
	retrieverInst *retriever.Engine

	extractorOnce sync.Once
	extractorInst *extract.Extractor

	generatorOnce sync.Once
	generatorInst *generation.Generator
)

// CollectionName 返回文档分块所在的Milvus集合名
func CollectionName(ctx context.Context) string {
	return g.Cfg().MustGet(ctx, "milvus.collection", "fineduguide_chunks").String()
}

// VectorStore 获取向量库单例
func VectorStore(ctx context.Context) (vector_store.VectorStore, error) {
	vectorStoreOnce.Do(func() {
		vectorStoreInst, vectorStoreErr = vector_store.InitializeMilvusStore(ctx)
	})
	return vectorStoreInst, vectorStoreErr
}

// Embedder 获取embedding客户端单例
func Embedder(ctx context.Context) (*embedding.Client, error) {
	embedderOnce.Do(func() {
		embedderInst, embedderErr = embedding.NewClient(ctx, config.LoadEmbeddingConfig(ctx))
	})
	return embedderInst, embedderErr
}

// Indexer 获取入库器单例
func Indexer(ctx context.Context) (*indexer.Indexer, error) {
	embedder, err := Embedder(ctx)
	if err != nil {
		return nil, err
	}
	store, err := VectorStore(ctx)
	if err != nil {
		return nil, err
	}
	indexerOnce.Do(func() {
		indexerInst = indexer.NewIndexer(embedder, store)
	})
	return indexerInst, nil
}

// Retriever 获取检索引擎单例
func Retriever(ctx context.Context) (*retriever.Engine, error) {
	embedder, err := Embedder(ctx)
	if err != nil {
		return nil, err
	}
	store, err := VectorStore(ctx)
	if err != nil {
		return nil, err
	}
	retrieverOnce.Do(func() {
		retrieverInst = retriever.NewEngine(embedder, store)
	})
	return retrieverInst, nil
}

// Extractor 获取文本提取器单例
func Extractor(ctx context.Context) *extract.Extractor {
	extractorOnce.Do(func() {
		extractorInst = extract.NewExtractor(ctx)
	})
	return extractorInst
}

// Generator 获取内容生成器单例
func Generator() *generation.Generator {
	generatorOnce.Do(func() {
		generatorInst = generation.NewGenerator()
	})
	return generatorInst
}
