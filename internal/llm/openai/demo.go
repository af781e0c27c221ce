package openai

import (
	"errors"
	"strings"

	"github.com/joseph-ayodele/resume-optimizer/constants"
	"github.com/joseph-ayodele/resume-optimizer/internal/llm"
)

var ErrDemoVision = errors.New("demo mode cannot process images")

// Canned example output. It is deterministic and has nothing to do with the
// caller's input.
var demoBios = []string{
	"【示例】拥有5年后端开发经验的工程师，主导过日均千万级请求的服务架构升级，将核心接口延迟降低40%。",
	"【示例】专注于分布式系统与云原生技术，带领6人团队交付多个关键项目，推动部署效率提升3倍。",
	"【示例】具备扎实的工程能力与业务理解，擅长将复杂需求拆解为可落地方案，持续推动团队技术成长。",
}

const demoEvaluation = "【示例评估】\n1. 整体结构和格式：结构清晰，建议统一日期格式。\n" +
	"2. 内容质量和表达：表达较为口语化，建议使用更专业的动词。\n" +
	"3. 关键成就和技能突出：技能列表完整，但缺少与成就的关联。\n" +
	"4. 可量化的结果展示：量化数据不足，建议补充具体指标。\n" +
	"5. ATS 友好度：避免使用表格和图片，增加岗位关键词。"

const demoOptimized = "【示例简历】\n个人简介：具备多年区块链与 Web3 开发经验，熟悉 DeFi、智能合约与跨链协议。\n" +
	"工作经历：主导智能合约审计与优化，Gas 成本降低30%。"

const demoAdvisory = "请直接复制简历中的文字，粘贴到文本输入框后提交。"

func demoCompletion(req llm.CompletionRequest) (string, error) {
	switch req.Task {
	case llm.TaskBioOptimize:
		return strings.Join(demoBios, "\n"+constants.VersionSeparator+"\n"), nil
	case llm.TaskEvaluate:
		return demoEvaluation, nil
	case llm.TaskOptimize:
		return demoOptimized, nil
	case llm.TaskPDFAdvisory:
		return demoAdvisory, nil
	case llm.TaskVisionOCR:
		return "", ErrDemoVision
	default:
		if req.Image != nil {
			return "", ErrDemoVision
		}
		return demoEvaluation, nil
	}
}
