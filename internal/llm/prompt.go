package llm

import (
	"fmt"
	"strings"

	"github.com/joseph-ayodele/resume-optimizer/constants"
)

// BuildPrompt composes the instruction for one of the text tasks.
// Callers own length validation.
func BuildPrompt(task Task, originalText, jobTitle string) string {
	switch task {
	case TaskBioOptimize:
		return buildBioPrompt(originalText, jobTitle)
	case TaskEvaluate:
		return buildEvaluatePrompt(originalText)
	case TaskOptimize:
		return buildOptimizePrompt(originalText)
	default:
		return originalText
	}
}

func buildBioPrompt(originalText, jobTitle string) string {
	title := strings.TrimSpace(jobTitle)

	var b strings.Builder
	b.WriteString("作为一位专业的人力资源专家和求职顾问，请优化以下简历个人简介，")
	if title != "" {
		fmt.Fprintf(&b, "使其更适合申请%s岗位。", title)
	} else {
		b.WriteString("使其更专业、更有吸引力。")
	}
	fmt.Fprintf(&b, "请给出%d个不同风格的优化版本。每个版本控制在%d字以内，并确保：\n",
		constants.BioVersionCount, constants.BioVersionMaxRunes)
	if title != "" {
		fmt.Fprintf(&b, "1. 突出与%s岗位相关的关键能力和经验\n", title)
	} else {
		b.WriteString("1. 突出关键能力和经验\n")
	}
	b.WriteString("2. 使用更专业的表达和行业术语\n")
	b.WriteString("3. 增加量化成果\n")
	b.WriteString("4. 提高表达的精准性和可信度\n\n")
	fmt.Fprintf(&b, "请直接给出%d个优化后的版本，每个版本之间用\"%s\"隔开。\n\n",
		constants.BioVersionCount, constants.VersionSeparator)
	b.WriteString("原始个人简介：\n")
	writeQuoted(&b, originalText)
	return b.String()
}

// evaluationDimensions are the fixed axes every résumé critique covers.
var evaluationDimensions = []string{
	"整体结构和格式",
	"内容质量和表达",
	"关键成就和技能突出",
	"可量化的结果展示",
	"ATS 友好度",
}

func buildEvaluatePrompt(resumeText string) string {
	var b strings.Builder
	b.WriteString("作为简历评估专家，请针对以下简历进行专业评估。评估要点：\n")
	for i, d := range evaluationDimensions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, d)
	}
	b.WriteString("\n请提供详细的优缺点分析和具体改进建议。\n\n")
	b.WriteString("简历内容：\n")
	writeQuoted(&b, resumeText)
	return b.String()
}

func buildOptimizePrompt(resumeText string) string {
	var b strings.Builder
	b.WriteString("作为一位专业的 Web3 简历优化专家，请对以下简历进行优化。优化要求：\n")
	b.WriteString("1. 调整措辞，使其更专业、精准\n")
	b.WriteString("2. 优化结构，突出核心优势\n")
	b.WriteString("3. 加入 Web3 行业关键词（如 DeFi、智能合约、跨链协议等）\n")
	b.WriteString("4. 增加量化数据\n")
	b.WriteString("5. 提高 ATS 系统通过率\n\n")
	b.WriteString("请直接提供优化后的完整简历内容，不要添加任何解释。\n\n")
	b.WriteString("原始简历：\n")
	writeQuoted(&b, resumeText)
	return b.String()
}

// BuildVisionPrompt asks for verbatim transcription only.
func BuildVisionPrompt() string {
	return "提取这张图片中的所有文字内容"
}

// BuildAdvisoryPrompt is sent when a PDF yielded no text. It does not carry
// the document; the model only elaborates on the manual-entry advice.
func BuildAdvisoryPrompt() string {
	return "无法读取PDF内容，请告诉用户使用文本输入方式直接粘贴简历内容，这是最可靠的方法。"
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteString("\"")
	b.WriteString(s)
	b.WriteString("\"\n")
}
