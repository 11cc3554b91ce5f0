package vector_store

import (
	"context"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/eino/schema"
	"github.com/fineduguide/fineduguide/core/common"
	milvusModel "github.com/fineduguide/fineduguide/internal/model/milvus"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/milvus-io/milvus/client/v2/column"
	"github.com/milvus-io/milvus/client/v2/entity"
	"github.com/milvus-io/milvus/client/v2/index"
	"github.com/milvus-io/milvus/client/v2/milvusclient"
)

// MilvusStore Milvus向量数据库实现
type MilvusStore struct {
	client   *milvusclient.Client
	database string
}

func InitializeMilvusStore(ctx context.Context) (VectorStore, error) {
	address := g.Cfg().MustGet(ctx, "milvus.address", "").String()
	database := g.Cfg().MustGet(ctx, "milvus.database", "default").String()

	if address == "" {
		return nil, fmt.Errorf("milvus.address is required but not found in config file. Please check your config.yaml file and ensure milvus.address is properly set")
	}

	g.Log().Infof(ctx, "Connecting to Milvus at: %s, database: %s", address, database)

	client, err := milvusclient.New(ctx, &milvusclient.ClientConfig{
		Address: address,
		DBName:  database,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create milvus client (address: %s, database: %s): %w", address, database, err)
	}

	config := &VectorStoreConfig{
		Type:     VectorStoreTypeMilvus,
		Client:   client,
		Database: database,
	}

	milvusStore, err := NewMilvusStore(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create milvus store: %w", err)
	}

	return milvusStore, nil
}

// NewMilvusStore 创建Milvus向量存储实例
func NewMilvusStore(config *VectorStoreConfig) (VectorStore, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	client, ok := config.Client.(*milvusclient.Client)
	if !ok {
		return nil, fmt.Errorf("client must be *milvusclient.Client")
	}

	if config.Database == "" {
		return nil, fmt.Errorf("database name cannot be empty")
	}

	return &MilvusStore{
		client:   client,
		database: config.Database,
	}, nil
}

// CreateDatabaseIfNotExists 创建数据库（如果不存在）
func (m *MilvusStore) CreateDatabaseIfNotExists(ctx context.Context) error {
	dbNames, err := m.client.ListDatabase(ctx, milvusclient.NewListDatabaseOption())
	if err != nil {
		return fmt.Errorf("failed to list databases: %w", err)
	}

	for _, name := range dbNames {
		if strings.EqualFold(name, m.database) {
			g.Log().Infof(ctx, "Database '%s' already exists, skipping creation", m.database)
			return nil
		}
	}

	err = m.client.CreateDatabase(ctx, milvusclient.NewCreateDatabaseOption(m.database))
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	g.Log().Infof(ctx, "Database '%s' created successfully", m.database)
	return nil
}

// EnsureCollection 确保集合存在且已加载，不存在时按标准schema创建
func (m *MilvusStore) EnsureCollection(ctx context.Context, collectionName string) error {
	if !common.ValidateCollectionName(collectionName) {
		return fmt.Errorf("invalid collection name: %s", collectionName)
	}

	exists, err := m.CollectionExists(ctx, collectionName)
	if err != nil {
		return err
	}
	if exists {
		// 集合已存在，确保已加载进内存
		_, err = m.client.LoadCollection(ctx, milvusclient.NewLoadCollectionOption(collectionName))
		if err != nil {
			return fmt.Errorf("failed to load Milvus collection: %w", err)
		}
		return nil
	}
	return m.createCollection(ctx, collectionName)
}

// createCollection 创建集合并建立向量索引
func (m *MilvusStore) createCollection(ctx context.Context, collectionName string) error {
	// 获取向量维度，优先从配置文件读取
	dim := g.Cfg().MustGet(ctx, "milvus.dim", 1024).Int()
	dimStr := fmt.Sprintf("%d", dim)

	collSchema := &entity.Schema{
		CollectionName: collectionName,
		Description:    "存储文档分片及其向量",
		AutoID:         false,
		Fields:         milvusModel.GetStandardCollectionFields(dimStr),
	}

	// 创建文档片段集合，并设置vector为HNSW余弦索引
	err := m.client.CreateCollection(ctx, milvusclient.NewCreateCollectionOption(collectionName, collSchema).WithIndexOptions(
		milvusclient.NewCreateIndexOption(collectionName, "vector", index.NewHNSWIndex(entity.COSINE, 64, 128))))
	if err != nil {
		return fmt.Errorf("failed to create Milvus collection: %w", err)
	}

	// Load collection into memory
	_, err = m.client.LoadCollection(ctx, milvusclient.NewLoadCollectionOption(collectionName))
	if err != nil {
		return fmt.Errorf("failed to load Milvus collection: %w", err)
	}

	g.Log().Infof(ctx, "Collection '%s' created with dimension %d, index built and loaded", collectionName, dim)
	return nil
}

// CollectionExists 检查集合是否存在
func (m *MilvusStore) CollectionExists(ctx context.Context, collectionName string) (bool, error) {
	has, err := m.client.HasCollection(ctx, milvusclient.NewHasCollectionOption(collectionName))
	if err != nil {
		return false, fmt.Errorf("failed to check if collection exists: %w", err)
	}
	return has, nil
}

// DeleteCollection 删除集合
func (m *MilvusStore) DeleteCollection(ctx context.Context, collectionName string) error {
	err := m.client.DropCollection(ctx, milvusclient.NewDropCollectionOption(collectionName))
	if err != nil {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	g.Log().Infof(ctx, "Collection '%s' deleted", collectionName)
	return nil
}

// UpsertChunks 写入分块及其向量
// 主键为 "{source}_{chunk_index}"，同一文件重新入库时旧记录被覆盖
func (m *MilvusStore) UpsertChunks(ctx context.Context, collectionName string, chunks []*schema.Document, vectors [][]float32) ([]string, error) {
	if len(chunks) != len(vectors) {
		return nil, fmt.Errorf("chunks and vectors length mismatch: %d vs %d", len(chunks), len(vectors))
	}

	ids := make([]string, len(chunks))
	texts := make([]string, len(chunks))
	sources := make([]string, len(chunks))
	metadataList := make([][]byte, len(chunks))

	for idx, chunk := range chunks {
		if len(chunk.ID) == 0 {
			return nil, fmt.Errorf("chunk at index %d has empty ID", idx)
		}
		ids[idx] = chunk.ID

		// 截断文本（如果需要）
		texts[idx] = truncateString(chunk.Content, 65535)

		if source, ok := chunk.MetaData[common.MetaSource].(string); ok {
			sources[idx] = source
		}

		// 序列化metadata
		metaBytes, err := marshalMetadata(chunk.MetaData)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal metadata: %w", err)
		}
		metadataList[idx] = metaBytes
	}

	// 获取向量维度，优先从配置文件读取
	dim := g.Cfg().MustGet(ctx, "milvus.dim", 1024).Int()

	columns := []column.Column{
		column.NewColumnVarChar("id", ids),
		column.NewColumnVarChar("text", texts),
		column.NewColumnFloatVector("vector", dim, vectors),
		column.NewColumnVarChar("source", sources),
		column.NewColumnJSONBytes("metadata", metadataList),
	}

	upsertOpt := milvusclient.NewColumnBasedInsertOption(collectionName, columns...)
	result, err := m.client.Upsert(ctx, upsertOpt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert vectors: %w", err)
	}

	g.Log().Infof(ctx, "Successfully upserted %d vectors into collection '%s'", result.UpsertCount, collectionName)
	return ids, nil
}

// Search 按查询向量检索最相似的 topK 个分块
func (m *MilvusStore) Search(ctx context.Context, collectionName string, vector []float32, topK int) ([]*schema.Document, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("topK must be positive, got %d", topK)
	}

	searchOpt := milvusclient.NewSearchOption(collectionName, topK, []entity.Vector{entity.FloatVector(vector)}).
		WithANNSField("vector").
		WithOutputFields("id", "text", "source", "metadata").
		WithConsistencyLevel(entity.ClBounded)

	results, err := m.client.Search(ctx, searchOpt)
	if err != nil {
		return nil, fmt.Errorf("search has error: %w", err)
	}

	if len(results) == 0 {
		return []*schema.Document{}, nil
	}

	docs, err := convertResultsToDocuments(results[0].Fields, results[0].Scores)
	if err != nil {
		return nil, err
	}

	// 归一化COSINE相似度（-1到1）到标准的0-1范围
	// 归一化后：0=完全相反, 0.5=正交, 1=完全相同
	for _, doc := range docs {
		doc.WithScore((doc.Score() + 1) / 2)
	}

	return docs, nil
}

// DeleteBySource 删除某个源文件的所有分块
func (m *MilvusStore) DeleteBySource(ctx context.Context, collectionName string, source string) error {
	if source == "" {
		return fmt.Errorf("source cannot be empty")
	}

	// 转义特殊字符，防止表达式注入
	safeSource := common.SanitizeMilvusString(source)
	filterExpr := fmt.Sprintf(`source == "%s"`, safeSource)

	g.Log().Infof(ctx, "Deleting all chunks of source %s from collection %s", source, collectionName)

	deleteOpt := milvusclient.NewDeleteOption(collectionName).WithExpr(filterExpr)
	result, err := m.client.Delete(ctx, deleteOpt)
	if err != nil {
		return fmt.Errorf("failed to delete chunks of source %s: %w", source, err)
	}

	g.Log().Infof(ctx, "Delete operation completed for source %s, affected rows: %d", source, result.DeleteCount)

	if result.DeleteCount == 0 {
		g.Log().Infof(ctx, "Warning: No chunks were deleted for source=%s", source)
	}

	return nil
}

// convertResultsToDocuments 转换搜索结果为文档
func convertResultsToDocuments(columns []column.Column, scores []float32) ([]*schema.Document, error) {
	if len(columns) == 0 {
		return nil, nil
	}

	numDocs := columns[0].Len()
	result := make([]*schema.Document, numDocs)
	for i := range result {
		result[i] = &schema.Document{
			MetaData: make(map[string]any),
		}
	}

	for _, col := range columns {
		switch col.Name() {
		case "id":
			for i := 0; i < col.Len(); i++ {
				val, err := col.Get(i)
				if err != nil {
					return nil, fmt.Errorf("failed to get id: %w", err)
				}
				if str, ok := val.(string); ok {
					result[i].ID = str
				}
			}
		case common.FieldContent: // "text"
			for i := 0; i < col.Len(); i++ {
				val, err := col.Get(i)
				if err != nil {
					return nil, fmt.Errorf("failed to get text: %w", err)
				}
				if str, ok := val.(string); ok {
					result[i].Content = str
				}
			}
		case common.FieldMetadata: // "metadata"
			for i := 0; i < col.Len(); i++ {
				val, err := col.Get(i)
				if err != nil {
					continue
				}
				if val == nil {
					continue
				}

				// 处理JSON格式的metadata
				switch v := val.(type) {
				case string:
					var metadata map[string]any
					if err := sonic.Unmarshal([]byte(v), &metadata); err == nil {
						for k, mv := range metadata {
							result[i].MetaData[k] = mv
						}
					}
				case []byte:
					var metadata map[string]any
					if err := sonic.Unmarshal(v, &metadata); err == nil {
						for k, mv := range metadata {
							result[i].MetaData[k] = mv
						}
					}
				}
			}
		default:
			// 其他字段添加到metadata
			for i := 0; i < col.Len(); i++ {
				val, err := col.Get(i)
				if err != nil {
					continue
				}
				result[i].MetaData[col.Name()] = val
			}
		}
	}

	// 最后写入分数，避免被metadata合并覆盖
	for i := 0; i < numDocs && i < len(scores); i++ {
		result[i].WithScore(float64(scores[i]))
	}

	return result, nil
}

// Helper functions

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

func marshalMetadata(metadata map[string]any) ([]byte, error) {
	if len(metadata) == 0 {
		return []byte("{}"), nil
	}
	return sonic.Marshal(metadata)
}

// GetClient returns the underlying Milvus client
func (m *MilvusStore) GetClient() *milvusclient.Client {
	return m.client
}
