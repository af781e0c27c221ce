package llm

import (
	"encoding/base64"
	"net/http"

	"github.com/joseph-ayodele/resume-optimizer/constants"
)

// DataURL renders an image as a base64 data URL for vision requests.
func DataURL(img Image) string {
	mt := constants.NormalizeMIME(img.MIMEType)
	switch mt {
	case constants.MIMEJPG:
		mt = constants.MIMEJPEG
	case "":
		mt = http.DetectContentType(img.Data)
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}
