package controllers

import (
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"weddingly/internal/delivery/http/helpers"
	"weddingly/internal/delivery/http/middleware"
	"weddingly/internal/domain"
)

// maxUploadBytes caps uploads at 10MB, matching the media host preset.
const maxUploadBytes = 10 << 20

var audioExtRegexp = regexp.MustCompile(`(?i)\.(mp3|wav|m4a|ogg)$`)

// UploadSuccessResponse is the success response envelope for POST /upload (200).
type UploadSuccessResponse struct {
	Data  *domain.UploadResult `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// UploadController forwards image and audio files to the media host and
// returns the hosted URL. The core never stores file bytes.
type UploadController struct {
	Logger   *slog.Logger
	Uploader domain.MediaUploader
}

// NewUploadController creates an UploadController with the given logger and uploader.
func NewUploadController(logger *slog.Logger, uploader domain.MediaUploader) *UploadController {
	return &UploadController{
		Logger:   logger,
		Uploader: uploader,
	}
}

// Upload godoc
// @Summary Upload an image or audio file
// @Description Accepts a multipart "file" field (image/* or mp3/wav/m4a/ogg audio, max 10MB) and forwards it to the media host. Returns the hosted URL.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Success 200 {object} controllers.UploadSuccessResponse "data contains the hosted file info"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 502 {object} helpers.APIResponse "error.code: upstream_error"
// @Router /upload [post]
func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes+4096)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "file size must be less than 10MB")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "no file provided")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	isImage := strings.HasPrefix(mimeType, "image/")
	isAudio := strings.HasPrefix(mimeType, "audio/") || audioExtRegexp.MatchString(header.Filename)
	if !isImage && !isAudio {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "file must be an image or audio file")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "failed to read file")
		return
	}
	if len(data) > maxUploadBytes {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "file size must be less than 10MB")
		return
	}

	result, err := c.Uploader.Upload(r.Context(), data, header.Filename, mimeType)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "upload failed", "path", r.URL.Path, "filename", header.Filename, "err", err)
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeUpstream, "failed to upload file")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}
