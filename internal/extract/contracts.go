package extract

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/joseph-ayodele/resume-optimizer/constants"
)

// Method names the strategy that produced (or failed to produce) text.
type Method string

const (
	MethodPlain       Method = "plain-text"
	MethodPDFText     Method = "pdf-text"
	MethodPDFLayout   Method = "pdf-layout"
	MethodDOCX        Method = "docx"
	MethodXLSX        Method = "xlsx"
	MethodVisionOCR   Method = "vision-ocr"
	MethodPDFAdvisory Method = "pdf-advisory"
)

var (
	ErrInsufficientText = errors.New("extracted text below minimum length")
	ErrImageTooLarge    = errors.New("image exceeds vision size ceiling")
	ErrEmptyDocument    = errors.New("empty document")
)

// Document is one upload: raw bytes plus the type the client declared.
type Document struct {
	Data     []byte
	MIMEType string
	Filename string
}

// Strategy turns a document into text. It may return short or empty text;
// the orchestrator decides whether that is sufficient.
type Strategy interface {
	Method() Method
	Extract(ctx context.Context, doc Document) (string, error)
}

// Attempt records one stage of a cascade.
type Attempt struct {
	Method   Method
	Runes    int
	Error    string
	Duration time.Duration
}

// Result is a successful extraction.
type Result struct {
	Text     string
	Method   Method
	Attempts []Attempt
	Duration time.Duration
}

// AdvisoryError carries user-facing guidance produced by a stage that gave up
// on automated extraction. The orchestrator surfaces the latest one when the
// cascade is exhausted.
type AdvisoryError struct {
	Message string
	Cause   error
}

func (e *AdvisoryError) Error() string {
	if e.Cause != nil {
		return "advisory: " + e.Cause.Error()
	}
	return "advisory: " + e.Message
}

func (e *AdvisoryError) Unwrap() error { return e.Cause }

// Sufficient reports whether text passes the minimum-length gate.
func Sufficient(text string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) >= constants.MinTextRunes
}
