package constants

// User-facing messages. The product UI is Chinese; these strings are returned
// verbatim in API error bodies.
const (
	MsgManualEntry         = "简历内容为空或无法识别，可能是因为您上传的是图片格式的PDF或扫描件。请使用\"直接输入文本\"功能，手动复制粘贴您的简历内容。"
	MsgPDFAdvisory         = "系统无法自动解析您的PDF文件，请使用\"直接输入文本\"功能手动粘贴简历内容。这是最可靠的方式，特别是对中文简历。"
	MsgPDFUnprocessable    = "PDF文件无法处理，请使用\"直接输入文本\"功能手动粘贴简历内容。"
	MsgImageTooLarge       = "图片文件太大，无法自动识别。请使用\"直接输入文本\"功能手动粘贴简历内容。"
	MsgImageOCRFailed      = "图片识别失败，请使用\"直接输入文本\"功能手动粘贴简历内容。"
	MsgImageNoText         = "无法从图片中提取文字，请使用文本输入方式"
	MsgConfiguration       = "服务配置错误，请联系管理员"
	MsgConfigurationManual = "系统配置错误，请使用文本输入方式"
	MsgProviderUnavailable = "AI 服务暂时不可用，请稍后再试"
	MsgEvaluateUnavailable = "AI 评分服务暂时不可用，请稍后再试"
	MsgOptimizeUnavailable = "AI 优化服务暂时不可用，请稍后再试"
	MsgBioInvalid          = "个人简介不能为空且不能超过1000字"
	MsgResumeEmpty         = "简历内容不能为空"
	MsgUploadMissing       = "请上传简历文件"
	MsgUploadTooLarge      = "上传的文件太大"
	MsgInvalidBody         = "请求格式错误"
	MsgUnsupportedType     = "不支持的文件类型"
	MsgInternal            = "服务器内部错误"

	// Prefixes added when the secondary provider produced the answer.
	FallbackEvaluationPrefix = "[使用备选 API 生成的评估结果]\n\n"
	FallbackOptimizedPrefix  = "[使用备选 API 优化的简历]\n\n"
)
