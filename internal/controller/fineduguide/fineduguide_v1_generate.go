package fineduguide

import (
	"context"

	v1 "github.com/fineduguide/fineduguide/api/fineduguide/v1"
	"github.com/fineduguide/fineduguide/internal/logic/generate"
)

// GenerateContent handles RAG content generation.
func (c *ControllerV1) GenerateContent(ctx context.Context, req *v1.GenerateContentReq) (res *v1.GenerateContentRes, err error) {
	result, err := generate.GenerateContent(ctx, req.UserQuery, req.TaskType)
	if err != nil {
		return nil, err
	}

	return &v1.GenerateContentRes{
		TaskType: string(result.TaskType),
		Query:    result.Query,
		Content:  result.Content,
	}, nil
}
