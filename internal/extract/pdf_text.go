package extract

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFText reads the text objects embedded in a PDF. It is fast but yields
// nothing for scanned, image-only documents.
type PDFText struct {
	// MaxBytes caps how much of the document is parsed; 0 parses everything.
	MaxBytes int
}

func (PDFText) Method() Method { return MethodPDFText }

func (p PDFText) Extract(ctx context.Context, doc Document) (text string, err error) {
	data := doc.Data
	if len(data) == 0 {
		return "", ErrEmptyDocument
	}
	if p.MaxBytes > 0 && len(data) > p.MaxBytes {
		data = data[:p.MaxBytes]
	}

	// the parser panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rd, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(rd); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}
