package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fineduguide/fineduguide/core/errors"
)

func TestParseTaskType(t *testing.T) {
	cases := map[string]TaskType{
		"explain":   TaskExplain,
		"EXPLAIN":   TaskExplain,
		"  Quiz  ":  TaskQuiz,
		"summary":   TaskSummary,
		"Summary\n": TaskSummary,
	}
	for input, expected := range cases {
		task, err := ParseTaskType(input)
		assert.NoError(t, err, "input %q", input)
		assert.Equal(t, expected, task)
	}
}

func TestParseTaskTypeRejectsUnknown(t *testing.T) {
	for _, input := range []string{"banking", "quizz", "", "explain quiz"} {
		_, err := ParseTaskType(input)
		assert.Error(t, err, "input %q", input)
		assert.True(t, errors.IsCode(err, errors.ErrUnsupportedTask))
		assert.Contains(t, err.Error(), "explain, quiz, summary")
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	for _, task := range ValidTaskTypes {
		first, err := Build(task, "some context", "some question")
		assert.NoError(t, err)
		second, err := Build(task, "some context", "some question")
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestBuildEmbedsContextAndQuestion(t *testing.T) {
	contextText := "Source: a.txt, Chunk Index: 0, Similarity Score: 0.9000\nCompound interest explained."
	question := "What is compound interest?"

	for _, task := range ValidTaskTypes {
		result, err := Build(task, contextText, question)
		assert.NoError(t, err)
		assert.Contains(t, result, contextText)
		assert.Contains(t, result, question)
		assert.True(t, strings.HasPrefix(result, "You are FinEduGuide"))
	}
}

func TestBuildTaskSpecificWording(t *testing.T) {
	explain, _ := Build(TaskExplain, "ctx", "q")
	assert.Contains(t, explain, "Question: q\nAnswer:")

	quiz, _ := Build(TaskQuiz, "ctx", "q")
	assert.Contains(t, quiz, "multiple-choice questions with 4 options (A, B, C, D)")
	assert.Contains(t, quiz, "Generate the quiz questions below:")

	summary, _ := Build(TaskSummary, "ctx", "q")
	assert.Contains(t, summary, "Topic: q\nSummary:")
}

func TestBuildRejectsUnknownTask(t *testing.T) {
	_, err := Build(TaskType("banking"), "ctx", "q")
	assert.True(t, errors.IsCode(err, errors.ErrUnsupportedTask))
}
