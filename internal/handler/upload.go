package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/viddeck/viddeck/internal/domain"
	"github.com/viddeck/viddeck/internal/service"
)

// maxUploadRequestBytes bounds the whole multipart request body: the
// file limit plus slack for the multipart framing and other fields.
const maxUploadRequestBytes = service.MaxUploadBytes + 1<<20

// UploadHandler accepts video uploads and serves no other purpose.
// The route is deliberately unauthenticated to match the upstream
// behaviour; see DESIGN.md.
type UploadHandler struct {
	uploads *service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// HandleUpload processes a multipart upload with a single file under the
// field name "video".
// POST /api/upload
// Response: 200 {"success":true,"message":"...","file":{...}}
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadRequestBytes)

	file, header, err := r.FormFile("video")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "File size exceeds the 100MB limit")
			return
		}
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	uploaded, err := h.uploads.Store(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, "File size exceeds the 100MB limit")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Invalid file type. Only video files are allowed.")
		default:
			slog.Error("store upload", "error", err)
			writeError(w, http.StatusInternalServerError, "Upload failed")
		}
		return
	}

	slog.Info("file uploaded", "filename", uploaded.StoredName, "size", uploaded.SizeBytes)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "File uploaded successfully",
		"file":    toFileDTO(uploaded),
	})
}
