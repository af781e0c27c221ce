package extract

import (
	"context"
	"strings"
)

// PlainText decodes the bytes as UTF-8. Invalid sequences become U+FFFD.
type PlainText struct{}

func (PlainText) Method() Method { return MethodPlain }

func (PlainText) Extract(_ context.Context, doc Document) (string, error) {
	if len(doc.Data) == 0 {
		return "", ErrEmptyDocument
	}
	return strings.ToValidUTF8(string(doc.Data), "\uFFFD"), nil
}
