package v1

import (
	"github.com/gogf/gf/v2/frame/g"
)

type GenerateContentReq struct {
	g.Meta    `path:"/generate-content" method:"post" tags:"generation" summary:"Generate educational content grounded in the knowledge base"`
	UserQuery string `json:"user_query" v:"required" dc:"User question or topic"`
	TaskType  string `json:"task_type" v:"required" dc:"Task type: explain, quiz or summary"`
}

type GenerateContentRes struct {
	g.Meta   `mime:"application/json"`
	TaskType string `json:"task_type"`
	Query    string `json:"query"`
	Content  string `json:"content"`
}
