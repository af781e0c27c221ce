package resume

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/resume-optimizer/constants"
	"github.com/joseph-ayodele/resume-optimizer/internal/common"
	"github.com/joseph-ayodele/resume-optimizer/internal/extract"
	"github.com/joseph-ayodele/resume-optimizer/internal/llm"
)

// Extractor turns an uploaded document into text. Both *extract.Orchestrator
// and *async.Pool satisfy it.
type Extractor interface {
	Extract(ctx context.Context, doc extract.Document) (extract.Result, error)
}

// Evaluation is the result of an upload: the review and the text it was
// based on.
type Evaluation struct {
	Evaluation   string `json:"evaluation"`
	OriginalText string `json:"originalText"`
}

// Service handles the résumé tasks.
type Service struct {
	completer llm.Completer
	extractor Extractor
	logger    *slog.Logger
}

// NewService creates a new résumé service.
func NewService(completer llm.Completer, extractor Extractor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{completer: completer, extractor: extractor, logger: logger}
}

// OptimizeBio returns the rewritten variants of a short bio, in the order the
// model produced them.
func (s *Service) OptimizeBio(ctx context.Context, originalText, jobTitle string) ([]string, error) {
	v := common.NewValidator().
		Field("originalText", originalText, common.Required, common.MaxLength(constants.MaxBioRunes))
	if err := common.ValidateAndReturnError(v, constants.MsgBioInvalid); err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := s.completer.Complete(ctx, llm.TaskBioOptimize, llm.BuildPrompt(llm.TaskBioOptimize, originalText, jobTitle), true)
	if err != nil {
		return nil, err
	}
	s.logger.Info("resume.bio.ok",
		"req_id", common.RequestIDFromContext(ctx),
		"provider", res.Provider,
		"fallback", res.Fallback,
		"versions", len(res.Versions),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res.Versions, nil
}

// EvaluateResume scores a résumé along the fixed review dimensions.
func (s *Service) EvaluateResume(ctx context.Context, text string) (string, error) {
	return s.run(ctx, llm.TaskEvaluate, text, constants.MsgEvaluateUnavailable, constants.FallbackEvaluationPrefix)
}

// OptimizeResume rewrites a résumé.
func (s *Service) OptimizeResume(ctx context.Context, text string) (string, error) {
	return s.run(ctx, llm.TaskOptimize, text, constants.MsgOptimizeUnavailable, constants.FallbackOptimizedPrefix)
}

func (s *Service) run(ctx context.Context, task llm.Task, text, unavailable, fallbackPrefix string) (string, error) {
	v := common.NewValidator().Field("resumeText", text, common.Required)
	if err := common.ValidateAndReturnError(v, constants.MsgResumeEmpty); err != nil {
		return "", err
	}

	start := time.Now()
	res, err := s.completer.Complete(ctx, task, llm.BuildPrompt(task, text, ""), false)
	if err != nil {
		if errors.Is(err, common.ErrProvider) {
			return "", common.NewProviderError(unavailable, errors.Unwrap(err))
		}
		return "", err
	}

	out := res.Raw
	if res.Fallback {
		out = fallbackPrefix + out
	}
	s.logger.Info("resume.task.ok",
		"req_id", common.RequestIDFromContext(ctx),
		"task", task,
		"provider", res.Provider,
		"fallback", res.Fallback,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// ExtractText runs the extraction cascade for an uploaded document.
func (s *Service) ExtractText(ctx context.Context, data []byte, mimeType string) (string, error) {
	res, err := s.extractor.Extract(ctx, extract.Document{Data: data, MIMEType: mimeType})
	if err != nil {
		return "", wrapExtraction(err)
	}
	return res.Text, nil
}

// EvaluateUpload extracts the text of an upload and evaluates it.
func (s *Service) EvaluateUpload(ctx context.Context, data []byte, mimeType string) (Evaluation, error) {
	text, err := s.ExtractText(ctx, data, mimeType)
	if err != nil {
		return Evaluation{}, err
	}
	eval, err := s.EvaluateResume(ctx, text)
	if err != nil {
		return Evaluation{}, err
	}
	return Evaluation{Evaluation: eval, OriginalText: text}, nil
}

// wrapExtraction makes sure anything the extractor returns is classified.
// A pool that gave up (closed, caller cancelled) has no user guidance of its
// own, so the manual-entry message is used.
func wrapExtraction(err error) error {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return common.NewExtractionError(constants.MsgManualEntry, err)
}
