package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/reelstream/reelstream-go/internal/service"
)

// ReelHandler handles HTTP requests for reel upload and listing.
type ReelHandler struct {
	service        *service.ReelService
	maxUploadBytes int64
}

// NewReelHandler creates a new ReelHandler.
func NewReelHandler(svc *service.ReelService, maxUploadBytes int64) *ReelHandler {
	return &ReelHandler{service: svc, maxUploadBytes: maxUploadBytes}
}

// HandleUpload handles POST /api/upload requests. The request body is capped
// before multipart parsing, so an oversize upload fails with 413 without the
// file ever reaching the service.
func (h *ReelHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid multipart form"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("video")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("video file is required"))
		return
	}
	defer file.Close()

	title := r.FormValue("title")
	contentType := header.Header.Get("Content-Type")

	_, err = h.service.Upload(r.Context(), title, contentType, header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrUnsupportedMedia):
			writeJSON(w, http.StatusUnsupportedMediaType, errorResponse(err.Error()))
		default:
			slog.Error("uploading reel", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, successResponse("reel uploaded"))
}

// HandleListReels handles GET /api/reels requests. Reels are returned newest
// first, unpaginated.
func (h *ReelHandler) HandleListReels(w http.ResponseWriter, r *http.Request) {
	reels, err := h.service.List(r.Context())
	if err != nil {
		slog.Error("listing reels", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, reels)
}
