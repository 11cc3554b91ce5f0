package generate

import (
	"context"

	"github.com/gogf/gf/v2/frame/g"

	"github.com/fineduguide/fineduguide/core/config"
	"github.com/fineduguide/fineduguide/core/prompt"
	"github.com/fineduguide/fineduguide/core/retriever"
	"github.com/fineduguide/fineduguide/internal/service"
)

// Result 内容生成结果
type Result struct {
	TaskType prompt.TaskType
	Query    string
	Content  string
}

// GenerateContent 完整的内容生成流程
// 查询清理 -> 任务解析 -> 向量检索 -> 上下文拼装 -> 提示词渲染 -> 模型生成
func GenerateContent(ctx context.Context, userQuery string, taskType string) (*Result, error) {
	query, err := ParseUserQuery(userQuery)
	if err != nil {
		return nil, err
	}

	task, err := prompt.ParseTaskType(taskType)
	if err != nil {
		return nil, err
	}

	engine, err := service.Retriever(ctx)
	if err != nil {
		return nil, err
	}

	retrieverCfg := config.LoadRetrieverConfig(ctx)
	docs, err := engine.Retrieve(ctx, service.CollectionName(ctx), query, retrieverCfg.TopK)
	if err != nil {
		return nil, err
	}

	contextText := retriever.AssembleContext(docs, retrieverCfg.Score)
	if contextText == retriever.NoRelevantDocuments {
		g.Log().Infof(ctx, "no relevant chunks above threshold %.2f for query", retrieverCfg.Score)
	}

	promptText, err := prompt.Build(task, contextText, query)
	if err != nil {
		return nil, err
	}

	content, err := service.Generator().Generate(ctx, task, promptText)
	if err != nil {
		return nil, err
	}

	return &Result{
		TaskType: task,
		Query:    query,
		Content:  content,
	}, nil
}
