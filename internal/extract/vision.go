package extract

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/joseph-ayodele/resume-optimizer/constants"
	"github.com/joseph-ayodele/resume-optimizer/internal/common"
	"github.com/joseph-ayodele/resume-optimizer/internal/llm"
)

const visionMaxTokens = 1000

// ImageOCR reads the text of an image through a vision-capable model.
type ImageOCR struct {
	completer llm.Completer
	maxBytes  int
	logger    *slog.Logger
}

func NewImageOCR(completer llm.Completer, maxBytes int, logger *slog.Logger) *ImageOCR {
	if maxBytes <= 0 {
		maxBytes = constants.MaxImageBytesDefault
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageOCR{completer: completer, maxBytes: maxBytes, logger: logger}
}

func (*ImageOCR) Method() Method { return MethodVisionOCR }

func (o *ImageOCR) Extract(ctx context.Context, doc Document) (string, error) {
	if len(doc.Data) == 0 {
		return "", ErrEmptyDocument
	}
	if len(doc.Data) > o.maxBytes {
		o.logger.Warn("extract.vision.too_large", "bytes", len(doc.Data), "limit", o.maxBytes)
		return "", &AdvisoryError{Message: constants.MsgImageTooLarge, Cause: ErrImageTooLarge}
	}

	res, err := o.completer.Do(ctx, llm.CompletionRequest{
		Task:      llm.TaskVisionOCR,
		Prompt:    llm.BuildVisionPrompt(),
		Image:     &llm.Image{MIMEType: doc.MIMEType, Data: doc.Data},
		MaxTokens: visionMaxTokens,
	}, false)
	if err != nil {
		msg := constants.MsgImageOCRFailed
		if errors.Is(err, common.ErrConfiguration) {
			msg = constants.MsgConfigurationManual
		}
		return "", &AdvisoryError{Message: msg, Cause: err}
	}
	if !Sufficient(res.Raw) {
		return res.Raw, &AdvisoryError{Message: constants.MsgImageNoText, Cause: ErrInsufficientText}
	}
	return res.Raw, nil
}

// PDFAdvisory is the last stage for PDFs that yielded no text. It retries the
// structured reader on the leading bytes of the file and otherwise asks a
// model to phrase manual-entry guidance. It never recovers résumé text from
// page images; the guidance comes back as an AdvisoryError.
type PDFAdvisory struct {
	completer llm.Completer
	scanBytes int
	logger    *slog.Logger
}

func NewPDFAdvisory(completer llm.Completer, scanBytes int, logger *slog.Logger) *PDFAdvisory {
	if scanBytes <= 0 {
		scanBytes = constants.AdvisoryScanBytesDefault
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFAdvisory{completer: completer, scanBytes: scanBytes, logger: logger}
}

func (*PDFAdvisory) Method() Method { return MethodPDFAdvisory }

func (a *PDFAdvisory) Extract(ctx context.Context, doc Document) (string, error) {
	text, err := PDFText{MaxBytes: a.scanBytes}.Extract(ctx, doc)
	if err == nil && utf8.RuneCountInString(strings.TrimSpace(text)) > constants.AdvisoryMinTextRunes {
		return text, nil
	}
	if err != nil {
		a.logger.Debug("extract.advisory.prescan_failed", "error", err)
	}

	res, err := a.completer.Complete(ctx, llm.TaskPDFAdvisory, llm.BuildAdvisoryPrompt(), false)
	if err != nil {
		msg := constants.MsgPDFUnprocessable
		if errors.Is(err, common.ErrConfiguration) {
			msg = constants.MsgConfigurationManual
		}
		return "", &AdvisoryError{Message: msg, Cause: err}
	}
	return "", &AdvisoryError{
		Message: constants.MsgPDFAdvisory + "\n\n" + strings.TrimSpace(res.Raw),
		Cause:   ErrInsufficientText,
	}
}
