package llm

import "context"

// Task names the kind of completion being requested. Providers use it to pick
// a model and the demo backend uses it to pick canned output.
type Task string

const (
	TaskBioOptimize Task = "bio-optimize"
	TaskEvaluate    Task = "evaluate"
	TaskOptimize    Task = "optimize"
	TaskVisionOCR   Task = "vision-ocr"
	TaskPDFAdvisory Task = "pdf-advisory"
)

// Image is an inline image attached to a vision request.
type Image struct {
	MIMEType string
	Data     []byte
}

// CompletionRequest is built fresh for every call.
type CompletionRequest struct {
	Task        Task
	Prompt      string
	Image       *Image   // non-nil selects the provider's vision model
	MaxTokens   int      // 0 = provider default
	Temperature *float32 // nil = provider default
}

// CompletionResult is the normalized provider answer.
type CompletionResult struct {
	Raw      string
	Versions []string // set only when versions were requested
	Provider string
	Fallback bool // true when the secondary provider answered
}

// Provider is one completion backend.
type Provider interface {
	Name() string
	// Configured reports whether a usable credential is present.
	Configured() bool
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Completer is what the task façades and the vision extractor depend on.
type Completer interface {
	Complete(ctx context.Context, task Task, prompt string, expectVersions bool) (CompletionResult, error)
	Do(ctx context.Context, req CompletionRequest, expectVersions bool) (CompletionResult, error)
}
