package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapMIMEToFormat(t *testing.T) {
	assert.Equal(t, PDF, MapMIMEToFormat("application/pdf"))
	assert.Equal(t, PDF, MapMIMEToFormat(" Application/PDF; charset=binary"))
	assert.Equal(t, DOCX, MapMIMEToFormat(MIMEDOCX))
	assert.Equal(t, XLSX, MapMIMEToFormat(MIMEXLSX))
	assert.Equal(t, IMAGE, MapMIMEToFormat("image/jpg"))
	assert.Equal(t, IMAGE, MapMIMEToFormat("image/jpeg"))
	assert.Equal(t, IMAGE, MapMIMEToFormat("image/png"))
	assert.Equal(t, TEXT, MapMIMEToFormat("image/gif"))
	assert.Equal(t, TEXT, MapMIMEToFormat(""))
}

func TestMIMEFromExt(t *testing.T) {
	assert.Equal(t, MIMEPDF, MIMEFromExt(".PDF"))
	assert.Equal(t, MIMEDOCX, MIMEFromExt("docx"))
	assert.Equal(t, MIMEJPEG, MIMEFromExt(".jpg"))
	assert.Equal(t, MIMEPNG, MIMEFromExt(".png"))
	assert.Equal(t, MIMEPlain, MIMEFromExt(".md"))
}

func TestIsAllowedUpload(t *testing.T) {
	for _, m := range []string{MIMEPDF, MIMEDOCX, MIMEXLSX, MIMEJPEG, MIMEJPG, MIMEPNG, "text/plain; charset=utf-8"} {
		assert.True(t, IsAllowedUpload(m), m)
	}
	for _, m := range []string{"image/gif", "application/zip", ""} {
		assert.False(t, IsAllowedUpload(m), m)
	}
}
