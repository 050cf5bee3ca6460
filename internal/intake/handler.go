package intake

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recruitflow-backend/internal/positions"
	"recruitflow-backend/internal/shared/server/respond"
	"recruitflow-backend/internal/tempstore"
)

// multipartOverhead pads the request-body cap above the file cap to leave
// room for multipart framing.
const multipartOverhead = 1 << 20

// Handler exposes the resume intake endpoint.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches intake routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes+multipartOverhead)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	positionID := strings.TrimSpace(c.PostForm("positionId"))
	if positionID != "" {
		c.Set("positionId", positionID)
	}

	result, err := h.Svc.Submit(c.Request.Context(), file, fileHeader.Filename, positionID)
	if err != nil {
		switch {
		case errors.Is(err, tempstore.ErrInvalidFileType):
			respond.Error(c, http.StatusBadRequest, "invalid_file_type", err.Error(), nil)
		case errors.Is(err, tempstore.ErrFileTooLarge):
			respond.Error(c, http.StatusBadRequest, "file_too_large", err.Error(), nil)
		case errors.Is(err, positions.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "position not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to process resume", nil)
		}
		return
	}

	c.Set("extractionTier", result.Tier)
	respond.OK(c, toResponse(result.Profile))
}
