package vector_store

import (
	"context"

	"github.com/cloudwego/eino/schema"
	"github.com/milvus-io/milvus/client/v2/milvusclient"
)

// VectorStoreType 向量数据库类型
type VectorStoreType string

const (
	VectorStoreTypeMilvus VectorStoreType = "milvus"
	// 未来可以扩展其他类型
	// VectorStoreTypeChroma VectorStoreType = "chroma"
)

// VectorStoreConfig 向量数据库配置
type VectorStoreConfig struct {
	Type     VectorStoreType // 向量数据库类型
	Client   interface{}     // 客户端实例
	Database string          // 数据库名称
}

// VectorStore 向量数据库接口
type VectorStore interface {
	// CreateDatabaseIfNotExists 创建数据库（如果不存在）
	CreateDatabaseIfNotExists(ctx context.Context) error

	// EnsureCollection 确保集合存在且已加载，不存在时创建
	EnsureCollection(ctx context.Context, collectionName string) error

	// CollectionExists 检查集合是否存在
	CollectionExists(ctx context.Context, collectionName string) (bool, error)

	// DeleteCollection 删除集合
	DeleteCollection(ctx context.Context, collectionName string) error

	// UpsertChunks 写入分块及其向量，主键相同的记录被覆盖
	UpsertChunks(ctx context.Context, collectionName string, chunks []*schema.Document, vectors [][]float32) ([]string, error)

	// Search 按查询向量检索最相似的 topK 个分块，分数已归一化到 [0,1]
	Search(ctx context.Context, collectionName string, vector []float32, topK int) ([]*schema.Document, error)

	// DeleteBySource 删除某个源文件的所有分块
	DeleteBySource(ctx context.Context, collectionName string, source string) error

	// GetClient 获取底层客户端实例
	GetClient() *milvusclient.Client
}
