package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/gogf/gf/v2/frame/g"
)

// ValidateConfiguration validates all required configuration items
func ValidateConfiguration(ctx context.Context) error {
	var missingConfigs []string
	var warnings []string

	// 验证 Milvus 配置
	milvusAddress := g.Cfg().MustGet(ctx, "milvus.address", "").String()
	if milvusAddress == "" {
		missingConfigs = append(missingConfigs, "milvus.address")
	}

	// 验证 Embedding 配置
	embeddingAPIKey := g.Cfg().MustGet(ctx, "embedding.apiKey", "").String()
	embeddingBaseURL := g.Cfg().MustGet(ctx, "embedding.baseURL", "").String()
	embeddingModel := g.Cfg().MustGet(ctx, "embedding.model", "").String()

	if embeddingAPIKey == "" {
		missingConfigs = append(missingConfigs, "embedding.apiKey")
	}
	if embeddingBaseURL == "" {
		missingConfigs = append(missingConfigs, "embedding.baseURL")
	}
	if embeddingModel == "" {
		missingConfigs = append(missingConfigs, "embedding.model")
	}

	// 验证对象存储配置
	storageEndpoint := g.Cfg().MustGet(ctx, "storage.endpoint", "").String()
	storageBucket := g.Cfg().MustGet(ctx, "storage.bucket", "").String()
	if storageEndpoint == "" {
		missingConfigs = append(missingConfigs, "storage.endpoint")
	}
	if storageBucket == "" {
		missingConfigs = append(missingConfigs, "storage.bucket")
	}

	// 验证生成模型配置
	for _, task := range []string{"explain", "quiz", "summary"} {
		model := g.Cfg().MustGet(ctx, "generation."+task+".model", "").String()
		if model == "" {
			warnings = append(warnings, "generation."+task+".model is not set")
		}
	}

	// OCR 服务为可选项，仅在使用 "ocr based extraction" 时需要
	ocrURL := g.Cfg().MustGet(ctx, "ocr.url", "").String()
	if ocrURL == "" {
		warnings = append(warnings, "ocr.url is not set, OCR based extraction will be unavailable")
	}

	// 验证数据库配置
	dbHost := g.Cfg().MustGet(ctx, "database.default.host", "").String()
	dbPort := g.Cfg().MustGet(ctx, "database.default.port", "").String()
	dbUser := g.Cfg().MustGet(ctx, "database.default.user", "").String()
	dbName := g.Cfg().MustGet(ctx, "database.default.name", "").String()

	if dbHost == "" {
		missingConfigs = append(missingConfigs, "database.default.host")
	}
	if dbPort == "" {
		missingConfigs = append(missingConfigs, "database.default.port")
	}
	if dbUser == "" {
		missingConfigs = append(missingConfigs, "database.default.user")
	}
	if dbName == "" {
		missingConfigs = append(missingConfigs, "database.default.name")
	}

	// 输出警告信息
	if len(warnings) > 0 {
		g.Log().Warningf(ctx, "Configuration warnings:\n- %s", strings.Join(warnings, "\n- "))
	}

	// 检查是否有缺失的必需配置
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configuration items:\n- %s\n\nPlease check your config.yaml file and ensure all required settings are properly configured", strings.Join(missingConfigs, "\n- "))
	}

	g.Log().Info(ctx, "✓ All required configuration items are present")

	return nil
}

// EmbeddingConfig embedding服务配置
type EmbeddingConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	Dimensions int // 向量维度
}

// Config 实现 embedding config 接口
func (c *EmbeddingConfig) GetAPIKey() string         { return c.APIKey }
func (c *EmbeddingConfig) GetBaseURL() string        { return c.BaseURL }
func (c *EmbeddingConfig) GetEmbeddingModel() string { return c.Model }
func (c *EmbeddingConfig) GetDimensions() int        { return c.Dimensions }

// LoadEmbeddingConfig 从配置文件读取embedding配置
func LoadEmbeddingConfig(ctx context.Context) *EmbeddingConfig {
	return &EmbeddingConfig{
		APIKey:     g.Cfg().MustGet(ctx, "embedding.apiKey", "").String(),
		BaseURL:    g.Cfg().MustGet(ctx, "embedding.baseURL", "").String(),
		Model:      g.Cfg().MustGet(ctx, "embedding.model", "").String(),
		Dimensions: g.Cfg().MustGet(ctx, "embedding.dimensions", 1024).Int(),
	}
}

// RetrieverConfig 检索专用配置
type RetrieverConfig struct {
	TopK  int     // 默认返回结果数量（默认 5）
	Score float64 // 默认分数阈值（默认 0.5）
}

// LoadRetrieverConfig 从配置文件读取检索配置
func LoadRetrieverConfig(ctx context.Context) *RetrieverConfig {
	return &RetrieverConfig{
		TopK:  g.Cfg().MustGet(ctx, "retriever.topK", 5).Int(),
		Score: g.Cfg().MustGet(ctx, "retriever.score", 0.5).Float64(),
	}
}

// ChunkingConfig 文档分块配置
type ChunkingConfig struct {
	ChunkSize    int // 每块目标大小（默认 1000）
	ChunkOverlap int // 相邻块重叠大小（默认 200）
}

// LoadChunkingConfig 从配置文件读取分块配置
func LoadChunkingConfig(ctx context.Context) *ChunkingConfig {
	return &ChunkingConfig{
		ChunkSize:    g.Cfg().MustGet(ctx, "chunking.chunkSize", 1000).Int(),
		ChunkOverlap: g.Cfg().MustGet(ctx, "chunking.chunkOverlap", 200).Int(),
	}
}
