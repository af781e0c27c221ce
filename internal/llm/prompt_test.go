package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/resume-optimizer/constants"
)

func TestBuildPrompt_BioWithJobTitle(t *testing.T) {
	p := BuildPrompt(TaskBioOptimize, "I am an engineer", "  Backend Engineer ")
	assert.Contains(t, p, "Backend Engineer岗位")
	assert.Contains(t, p, constants.VersionSeparator)
	assert.Contains(t, p, "\"I am an engineer\"")
	assert.Contains(t, p, "3个不同风格")
	assert.Contains(t, p, "300字以内")
}

func TestBuildPrompt_BioBlankJobTitle(t *testing.T) {
	p := BuildPrompt(TaskBioOptimize, "I am an engineer", "   ")
	assert.NotContains(t, p, "岗位")
	assert.Contains(t, p, "使其更专业、更有吸引力")
}

func TestBuildPrompt_EvaluateCoversAllDimensions(t *testing.T) {
	p := BuildPrompt(TaskEvaluate, "resume body", "")
	for _, d := range evaluationDimensions {
		assert.Contains(t, p, d)
	}
	assert.True(t, strings.HasSuffix(p, "\"resume body\"\n"))
}

func TestBuildPrompt_Optimize(t *testing.T) {
	p := BuildPrompt(TaskOptimize, "resume body", "ignored")
	assert.Contains(t, p, "Web3")
	assert.Contains(t, p, "不要添加任何解释")
	assert.NotContains(t, p, "ignored")
}

func TestSplitVersions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"three", "A===版本分隔===B===版本分隔===C", []string{"A", "B", "C"}},
		{"trimmed", "\n A \n===版本分隔===\n B\n", []string{"A", "B"}},
		{"drops blanks", "===版本分隔===A===版本分隔===   ===版本分隔===", []string{"A"}},
		{"no separator", "only one", []string{"only one"}},
		{"empty", "  ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitVersions(tt.raw))
		})
	}
}

func TestDataURL(t *testing.T) {
	assert.Equal(t, "data:image/jpeg;base64,AQI=", DataURL(Image{MIMEType: "image/jpg", Data: []byte{1, 2}}))
	assert.Equal(t, "data:image/png;base64,AQI=", DataURL(Image{MIMEType: "IMAGE/PNG", Data: []byte{1, 2}}))
}
