package prompt

import (
	"strings"

	"github.com/fineduguide/fineduguide/core/errors"
)

// TaskType 内容生成任务类型
type TaskType string

const (
	TaskExplain TaskType = "explain"
	TaskQuiz    TaskType = "quiz"
	TaskSummary TaskType = "summary"
)

// ValidTaskTypes 所有合法任务类型，顺序固定用于错误提示
var ValidTaskTypes = []TaskType{TaskExplain, TaskQuiz, TaskSummary}

// ParseTaskType 解析任务类型，忽略大小写与首尾空白
func ParseTaskType(s string) (TaskType, error) {
	normalized := TaskType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range ValidTaskTypes {
		if normalized == t {
			return t, nil
		}
	}
	return "", errors.Newf(errors.ErrUnsupportedTask,
		"Invalid task type. Valid options are: %s", joinTaskTypes())
}

func joinTaskTypes() string {
	names := make([]string, len(ValidTaskTypes))
	for i, t := range ValidTaskTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// Build 根据任务类型渲染提示词，纯函数
func Build(task TaskType, contextText string, question string) (string, error) {
	switch task {
	case TaskExplain:
		return renderExplanation(contextText, question), nil
	case TaskQuiz:
		return renderQuiz(contextText, question), nil
	case TaskSummary:
		return renderSummary(contextText, question), nil
	default:
		return "", errors.Newf(errors.ErrUnsupportedTask,
			"Invalid task type. Valid options are: %s", joinTaskTypes())
	}
}
