package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/resume-optimizer/constants"
	"github.com/joseph-ayodele/resume-optimizer/internal/common"
	"github.com/joseph-ayodele/resume-optimizer/internal/resume"
)

const uploadField = "resume"

// ResumeService is the core the handlers drive. *resume.Service satisfies it.
type ResumeService interface {
	OptimizeBio(ctx context.Context, originalText, jobTitle string) ([]string, error)
	EvaluateResume(ctx context.Context, text string) (string, error)
	OptimizeResume(ctx context.Context, text string) (string, error)
	EvaluateUpload(ctx context.Context, data []byte, mimeType string) (resume.Evaluation, error)
}

type Handler struct {
	svc            ResumeService
	maxUploadBytes int64
	logger         *slog.Logger

	bioSchema    *jsonschema.Schema
	resumeSchema *jsonschema.Schema
}

func NewHandler(svc ResumeService, maxUploadBytes int64, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &Handler{
		svc:            svc,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
		bioSchema:      mustCompileSchema("optimize-bio.json", bioRequestSchema()),
		resumeSchema:   mustCompileSchema("resume-text.json", resumeTextSchema("resumeText")),
	}
}

type OptimizeBioRequest struct {
	OriginalText string `json:"originalText"`
	JobTitle     string `json:"jobTitle,omitempty"`
}

type OptimizeBioResponse struct {
	OptimizedVersions []string `json:"optimizedVersions"`
}

type ResumeTextRequest struct {
	ResumeText string `json:"resumeText"`
}

type OptimizeResumeResponse struct {
	OptimizedResume string `json:"optimizedResume"`
}

func (h *Handler) OptimizeBio(w http.ResponseWriter, r *http.Request) {
	var req OptimizeBioRequest
	if err := h.decodeBody(w, r, h.bioSchema, &req); err != nil {
		h.writeAppError(w, r, "optimize-bio", common.NewValidationError(constants.MsgBioInvalid, err))
		return
	}
	versions, err := h.svc.OptimizeBio(r.Context(), req.OriginalText, req.JobTitle)
	if err != nil {
		h.writeAppError(w, r, "optimize-bio", err)
		return
	}
	writeJSON(w, http.StatusOK, OptimizeBioResponse{OptimizedVersions: versions})
}

func (h *Handler) OptimizeResume(w http.ResponseWriter, r *http.Request) {
	var req ResumeTextRequest
	if err := h.decodeBody(w, r, h.resumeSchema, &req); err != nil {
		h.writeAppError(w, r, "optimize", common.NewValidationError(constants.MsgResumeEmpty, err))
		return
	}
	out, err := h.svc.OptimizeResume(r.Context(), req.ResumeText)
	if err != nil {
		h.writeAppError(w, r, "optimize", err)
		return
	}
	writeJSON(w, http.StatusOK, OptimizeResumeResponse{OptimizedResume: out})
}

func (h *Handler) UploadResumeText(w http.ResponseWriter, r *http.Request) {
	var req ResumeTextRequest
	if err := h.decodeBody(w, r, h.resumeSchema, &req); err != nil {
		h.writeAppError(w, r, "upload-resume-text", common.NewValidationError(constants.MsgResumeEmpty, err))
		return
	}
	eval, err := h.svc.EvaluateResume(r.Context(), req.ResumeText)
	if err != nil {
		h.writeAppError(w, r, "upload-resume-text", err)
		return
	}
	writeJSON(w, http.StatusOK, resume.Evaluation{Evaluation: eval, OriginalText: req.ResumeText})
}

func (h *Handler) UploadResume(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > h.maxUploadBytes {
		writeError(w, http.StatusRequestEntityTooLarge, constants.MsgUploadTooLarge)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, constants.MsgUploadTooLarge)
			return
		}
		h.writeAppError(w, r, "upload-resume", common.NewValidationError(constants.MsgUploadMissing, err))
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		h.writeAppError(w, r, "upload-resume", common.NewValidationError(constants.MsgUploadMissing, err))
		return
	}
	defer file.Close()

	mimeType := constants.NormalizeMIME(header.Header.Get("Content-Type"))
	if mimeType == "" || mimeType == "application/octet-stream" {
		ext := filepath.Ext(header.Filename)
		mimeType = constants.MIMEFromExt(ext)
		// only a real .txt may fall through to plain text
		if mimeType == constants.MIMEPlain && constants.NormalizeExt(ext) != "txt" {
			mimeType = ""
		}
	}
	if !constants.IsAllowedUpload(mimeType) {
		h.writeAppError(w, r, "upload-resume",
			common.NewValidationError(constants.MsgUnsupportedType, errors.New("mime type "+mimeType+" not allowed")))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeAppError(w, r, "upload-resume", common.WrapError(err, "read upload"))
		return
	}
	h.logger.Info("server.upload.received",
		"req_id", common.RequestIDFromContext(r.Context()),
		"filename", header.Filename,
		"mime", mimeType,
		"bytes", len(data),
	)

	eval, err := h.svc.EvaluateUpload(r.Context(), data, mimeType)
	if err != nil {
		h.writeAppError(w, r, "upload-resume", err)
		return
	}
	writeJSON(w, http.StatusOK, eval)
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, schema *jsonschema.Schema, out any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUploadBytes))
	if err != nil {
		return common.WrapError(err, "read body")
	}
	return decodeValidated(schema, body, out)
}
