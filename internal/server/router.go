package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/joseph-ayodele/resume-optimizer/internal/common"
)

// NewRouter wires the HTTP surface.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestIDBridge)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/optimize-bio", h.OptimizeBio)            // POST /api/optimize-bio
		r.Post("/upload-resume", h.UploadResume)          // POST /api/upload-resume
		r.Post("/upload-resume-text", h.UploadResumeText) // POST /api/upload-resume-text
		r.Post("/optimize", h.OptimizeResume)             // POST /api/optimize
	})

	return r
}

// requestIDBridge copies chi's request id into the key the core logs with.
func requestIDBridge(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, id := common.EnsureRequestID(common.WithRequestID(r.Context(), middleware.GetReqID(r.Context())))
		w.Header().Set(middleware.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
