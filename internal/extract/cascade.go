package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/joseph-ayodele/resume-optimizer/constants"
	"github.com/joseph-ayodele/resume-optimizer/internal/common"
	"github.com/joseph-ayodele/resume-optimizer/internal/llm"
)

// Plans holds the ordered strategies tried for each document format.
type Plans struct {
	PDF   []Strategy
	DOCX  []Strategy
	XLSX  []Strategy
	Image []Strategy
	Text  []Strategy
}

// For returns the cascade for a format. Unknown formats get the text plan.
func (p Plans) For(f constants.Format) []Strategy {
	switch f {
	case constants.PDF:
		return p.PDF
	case constants.DOCX:
		return p.DOCX
	case constants.XLSX:
		return p.XLSX
	case constants.IMAGE:
		return p.Image
	default:
		return p.Text
	}
}

// DefaultPlans wires the production strategies.
//
//	pdf:   pdf-text -> pdf-layout -> pdf-advisory
//	docx:  docx
//	xlsx:  xlsx
//	image: vision-ocr
//	other: plain-text
func DefaultPlans(cfg common.ExtractConfig, completer llm.Completer, runner Runner, logger *slog.Logger) Plans {
	return Plans{
		PDF: []Strategy{
			PDFText{},
			NewPDFLayout(cfg.Pdftotext, runner, logger),
			NewPDFAdvisory(completer, cfg.AdvisoryScanBytes, logger),
		},
		DOCX:  []Strategy{DOCX{}},
		XLSX:  []Strategy{NewXLSX(logger)},
		Image: []Strategy{NewImageOCR(completer, cfg.MaxImageBytes, logger)},
		Text:  []Strategy{PlainText{}},
	}
}

// Orchestrator runs a cascade of strategies until one yields sufficient text.
type Orchestrator struct {
	plans  Plans
	logger *slog.Logger
}

func NewOrchestrator(plans Plans, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{plans: plans, logger: logger}
}

// ExtractText picks the cascade from the declared MIME type and returns the
// first sufficient text.
func (o *Orchestrator) ExtractText(ctx context.Context, data []byte, mimeType string) (Result, error) {
	return o.Extract(ctx, Document{Data: data, MIMEType: mimeType})
}

// Extract runs the cascade for doc. Stage errors and panics are treated as
// insufficient output. When nothing qualifies it returns an ExtractionError
// carrying the latest advisory message, or the generic manual-entry message.
func (o *Orchestrator) Extract(ctx context.Context, doc Document) (Result, error) {
	ctx, rid := common.EnsureRequestID(ctx)
	start := time.Now()
	format := constants.MapMIMEToFormat(doc.MIMEType)
	plan := o.plans.For(format)

	o.logger.Info("extract.start",
		"req_id", rid,
		"mime", doc.MIMEType,
		"format", format,
		"bytes", len(doc.Data),
		"stages", len(plan),
	)

	var (
		attempts []Attempt
		advisory *AdvisoryError
		lastErr  error
		found    string
		method   Method
	)
	for _, s := range plan {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}

		stageStart := time.Now()
		text, err := runStage(ctx, s, doc)
		text = Normalize(text)
		att := Attempt{
			Method:   s.Method(),
			Runes:    utf8.RuneCountInString(text),
			Duration: time.Since(stageStart),
		}

		if err != nil {
			att.Error = err.Error()
			attempts = append(attempts, att)
			lastErr = err
			var adv *AdvisoryError
			if errors.As(err, &adv) {
				advisory = adv
			}
			o.logger.Warn("extract.stage.failed",
				"req_id", rid, "method", s.Method(), "error", err,
				"elapsed_ms", att.Duration.Milliseconds(),
			)
			continue
		}
		attempts = append(attempts, att)

		if !Sufficient(text) {
			lastErr = ErrInsufficientText
			o.logger.Info("extract.stage.insufficient",
				"req_id", rid, "method", s.Method(), "runes", att.Runes,
				"elapsed_ms", att.Duration.Milliseconds(),
			)
			continue
		}

		found, method = text, s.Method()
		break
	}

	// final gate, whichever branch produced the text
	if method != "" && Sufficient(found) {
		res := Result{Text: found, Method: method, Attempts: attempts, Duration: time.Since(start)}
		o.logger.Info("extract.ok",
			"req_id", rid, "method", method, "runes", utf8.RuneCountInString(found),
			"attempts", len(attempts), "elapsed_ms", res.Duration.Milliseconds(),
		)
		return res, nil
	}

	msg := constants.MsgManualEntry
	if advisory != nil {
		msg = advisory.Message
		lastErr = advisory
	}
	if lastErr == nil {
		lastErr = ErrInsufficientText
	}
	o.logger.Warn("extract.exhausted",
		"req_id", rid,
		"format", format,
		"attempts", len(attempts),
		"advisory", advisory != nil,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Attempts: attempts, Duration: time.Since(start)}, common.NewExtractionError(msg, lastErr)
}

func runStage(ctx context.Context, s Strategy, doc Document) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%s panicked: %v", s.Method(), r)
		}
	}()
	return s.Extract(ctx, doc)
}
