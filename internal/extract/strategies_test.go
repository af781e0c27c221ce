package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/resume-optimizer/constants"
)

func TestPlainText(t *testing.T) {
	out, err := PlainText{}.Extract(context.Background(), Document{Data: []byte("hello\xffworld")})
	require.NoError(t, err)
	assert.Equal(t, "hello\uFFFDworld", out)

	_, err = PlainText{}.Extract(context.Background(), Document{})
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

func TestNormalize(t *testing.T) {
	in := "\ufeff  Name:\t\tJane  Doe \r\n\r\n\r\n\r\nSkills:  Go\x00 \n"
	assert.Equal(t, "Name: Jane Doe\n\nSkills: Go", Normalize(in))
	assert.Equal(t, "", Normalize(""))
}

func TestSufficient(t *testing.T) {
	assert.False(t, Sufficient("   123456789   "))
	assert.True(t, Sufficient("1234567890"))
	// runes, not bytes
	assert.False(t, Sufficient("一二三四五六七八九"))
	assert.True(t, Sufficient("一二三四五六七八九十"))
}

func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0"?><Types/>`))
	require.NoError(t, err)
	w, err = zw.Create(docxBodyPath)
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestDOCX(t *testing.T) {
	data := buildDOCX(t,
		`<w:p><w:r><w:t>张三</w:t></w:r><w:r><w:tab/><w:t xml:space="preserve">后端工程师</w:t></w:r></w:p>`+
			`<w:p><w:r><w:t>Go</w:t><w:br/><w:t>Kubernetes</w:t></w:r></w:p>`)

	out, err := DOCX{}.Extract(context.Background(), Document{Data: data})
	require.NoError(t, err)
	assert.Equal(t, "张三\t后端工程师\nGo\nKubernetes\n", out)
}

func TestDOCX_TabStopsAreNotContent(t *testing.T) {
	data := buildDOCX(t,
		`<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/><w:tab w:val="right" w:pos="9000"/></w:tabs></w:pPr>`+
			`<w:r><w:t>Jane Doe</w:t></w:r></w:p>`+
			`<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr>`+
			`<w:r><w:t>Backend</w:t><w:tab/><w:t>2019</w:t></w:r></w:p>`)

	out, err := DOCX{}.Extract(context.Background(), Document{Data: data})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nBackend\t2019\n", out)
}

func TestDOCX_NotAZip(t *testing.T) {
	_, err := DOCX{}.Extract(context.Background(), Document{Data: []byte("plain bytes")})
	require.Error(t, err)
}

func TestDOCX_MissingBody(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = DOCX{}.Extract(context.Background(), Document{Data: buf.Bytes()})
	assert.ErrorIs(t, err, ErrDOCXBodyMissing)
}

func TestXLSX(t *testing.T) {
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "姓名"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "张三"))
	require.NoError(t, f.SetCellValue("Sheet1", "A3", "技能"))
	require.NoError(t, f.SetCellValue("Sheet1", "B3", "Go"))
	_, err := f.NewSheet("Experience")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Experience", "A1", "2019-2024 支付平台"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	out, err := NewXLSX(discardLogger()).Extract(context.Background(), Document{Data: buf.Bytes()})
	require.NoError(t, err)
	assert.Equal(t, "姓名\t张三\n技能\tGo\n2019-2024 支付平台\n", out)
}

func TestPDFLayout_JoinsPages(t *testing.T) {
	runner := &stubRunner{out: []byte("Page one line\n\n\fPage two line\n\f\f")}
	l := NewPDFLayout("", runner, discardLogger())

	out, err := l.Extract(context.Background(), Document{Data: []byte("%PDF-1.4")})
	require.NoError(t, err)
	assert.Equal(t, "Page one line\nPage two line", out)
	assert.Equal(t, "pdftotext", runner.name)
	require.NotEmpty(t, runner.args)
	assert.Equal(t, "-layout", runner.args[0])
	assert.Equal(t, "-", runner.args[len(runner.args)-1])
}

func TestPDFLayout_RunnerError(t *testing.T) {
	runner := &stubRunner{errb: []byte("Syntax Error"), err: errors.New("exit status 1")}
	l := NewPDFLayout("/usr/bin/pdftotext", runner, discardLogger())

	_, err := l.Extract(context.Background(), Document{Data: []byte("%PDF-1.4")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Syntax Error")
	assert.Equal(t, "/usr/bin/pdftotext", runner.name)
}

func TestPDFText_Garbage(t *testing.T) {
	_, err := PDFText{}.Extract(context.Background(), Document{Data: []byte("definitely not a pdf")})
	require.Error(t, err)
}

func TestPDFAdvisory_ReturnsGuidance(t *testing.T) {
	completer := &fakeCompleter{out: "  粘贴文字  "}
	a := NewPDFAdvisory(completer, 0, discardLogger())

	_, err := a.Extract(context.Background(), Document{Data: []byte("junk")})
	var adv *AdvisoryError
	require.True(t, errors.As(err, &adv))
	assert.Equal(t, constants.MsgPDFAdvisory+"\n\n粘贴文字", adv.Message)
	require.Len(t, completer.reqs, 1)
	assert.Nil(t, completer.reqs[0].Image)
}
