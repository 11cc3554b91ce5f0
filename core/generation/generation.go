package generation

import (
	"context"
	"strings"
	"sync"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino-ext/components/model/qwen"
	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/gogf/gf/v2/frame/g"

	"github.com/fineduguide/fineduguide/core/common"
	"github.com/fineduguide/fineduguide/core/errors"
	"github.com/fineduguide/fineduguide/core/prompt"
)

// defaultTemperature 内容生成温度，偏保守以减少发挥
const defaultTemperature float32 = 0.3

// Generator 按任务类型路由到不同的聊天模型
type Generator struct {
	mu     sync.Mutex
	models map[prompt.TaskType]einoModel.BaseChatModel
}

func NewGenerator() *Generator {
	return &Generator{
		models: make(map[prompt.TaskType]einoModel.BaseChatModel),
	}
}

// NewGeneratorWithModels 注入预构建模型，供测试使用
func NewGeneratorWithModels(models map[prompt.TaskType]einoModel.BaseChatModel) *Generator {
	return &Generator{models: models}
}

// modelFor 懒加载任务对应的聊天模型
// 配置路径 generation.<task>.{provider,model,baseURL,apiKey,temperature}
func (gen *Generator) modelFor(ctx context.Context, task prompt.TaskType) (einoModel.BaseChatModel, error) {
	gen.mu.Lock()
	defer gen.mu.Unlock()

	if cm, ok := gen.models[task]; ok {
		return cm, nil
	}

	prefix := "generation." + string(task)
	provider := g.Cfg().MustGet(ctx, prefix+".provider", "openai").String()
	modelName := g.Cfg().MustGet(ctx, prefix+".model", "").String()
	baseURL := g.Cfg().MustGet(ctx, prefix+".baseURL", "").String()
	apiKey := g.Cfg().MustGet(ctx, prefix+".apiKey", "").String()
	temperature := g.Cfg().MustGet(ctx, prefix+".temperature", defaultTemperature).Float32()

	if modelName == "" {
		return nil, errors.Newf(errors.ErrInternalError, "generation model for task '%s' is not configured", task)
	}

	var (
		cm  einoModel.BaseChatModel
		err error
	)
	switch strings.ToLower(provider) {
	case "openai":
		cm, err = openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:      apiKey,
			BaseURL:     baseURL,
			Model:       modelName,
			Temperature: common.Of(temperature),
		})
	case "qwen":
		cm, err = qwen.NewChatModel(ctx, &qwen.ChatModelConfig{
			APIKey:      apiKey,
			BaseURL:     baseURL,
			Model:       modelName,
			Temperature: common.Of(temperature),
		})
	default:
		return nil, errors.Newf(errors.ErrInternalError, "unknown generation provider '%s' for task '%s'", provider, task)
	}
	if err != nil {
		return nil, errors.Newf(errors.ErrInternalError, "failed to create chat model for task '%s': %v", task, err)
	}

	gen.models[task] = cm
	return cm, nil
}

// Generate 用任务对应的模型执行生成，返回模型文本
func (gen *Generator) Generate(ctx context.Context, task prompt.TaskType, promptText string) (string, error) {
	cm, err := gen.modelFor(ctx, task)
	if err != nil {
		return "", err
	}

	messages := []*schema.Message{
		schema.UserMessage(promptText),
	}

	resp, err := cm.Generate(ctx, messages)
	if err != nil {
		g.Log().Errorf(ctx, "generation failed for task %s: %v", task, err)
		return "", errors.Newf(errors.ErrGenerationFailed, "failed to generate content: %v", err)
	}
	if resp == nil || strings.TrimSpace(resp.Content) == "" {
		return "", errors.New(errors.ErrGenerationFailed, "model returned empty content")
	}

	return resp.Content, nil
}
