package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// PDFLayout runs poppler's pdftotext in layout mode. It is slower than
// PDFText and is only tried after the structured reader came up short.
type PDFLayout struct {
	bin    string
	runner Runner
	logger *slog.Logger
}

func NewPDFLayout(bin string, runner Runner, logger *slog.Logger) *PDFLayout {
	if bin == "" {
		bin = "pdftotext"
	}
	if runner == nil {
		runner = execRunner{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFLayout{bin: bin, runner: runner, logger: logger}
}

func (*PDFLayout) Method() Method { return MethodPDFLayout }

func (l *PDFLayout) Extract(ctx context.Context, doc Document) (string, error) {
	if len(doc.Data) == 0 {
		return "", ErrEmptyDocument
	}

	tmp, err := os.CreateTemp("", "ro-pdf-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp pdf: %w", err)
	}
	path := tmp.Name()
	defer func() {
		if err := os.Remove(path); err != nil {
			l.logger.Warn("extract.pdf_layout.remove_temp_failed", "path", path, "error", err)
		}
	}()
	if _, err := tmp.Write(doc.Data); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write temp pdf: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp pdf: %w", err)
	}

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := l.runner.Run(ctx, l.bin, l.logger, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w: %s", err, truncate(string(errb), 512))
	}
	return joinPages(string(out)), nil
}

// joinPages replaces pdftotext's form-feed page separators with newlines.
func joinPages(text string) string {
	pages := strings.Split(text, "\f")
	kept := make([]string, 0, len(pages))
	for _, p := range pages {
		p = strings.TrimRight(p, " \n")
		if strings.TrimSpace(p) == "" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, "\n")
}
