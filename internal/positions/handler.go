package positions

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"recruitflow-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the repo.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches position routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/positions", h.list)
	rg.POST("/positions", h.create)
	rg.GET("/positions/:id", h.get)
}

type createPositionRequest struct {
	Title        string `json:"title"`
	Department   string `json:"department"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Status       string `json:"status"`
}

func (h *Handler) create(c *gin.Context) {
	var req createPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "title is required", nil)
		return
	}

	status := strings.ToUpper(strings.TrimSpace(req.Status))
	switch status {
	case "":
		status = StatusOpen
	case StatusOpen, StatusClosed:
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", "status must be OPEN or CLOSED", nil)
		return
	}

	pos := Position{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Department:   strings.TrimSpace(req.Department),
		Description:  req.Description,
		Requirements: req.Requirements,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}

	if err := h.Repo.Create(c.Request.Context(), pos); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create position", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, toResponse(pos))
}

func (h *Handler) get(c *gin.Context) {
	pos, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "position not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch position", nil)
		}
		return
	}
	respond.OK(c, toResponse(pos))
}

func (h *Handler) list(c *gin.Context) {
	status := strings.ToUpper(strings.TrimSpace(c.Query("status")))
	if status != "" && status != StatusOpen && status != StatusClosed {
		respond.Error(c, http.StatusBadRequest, "validation_error", "status must be OPEN or CLOSED", nil)
		return
	}

	list, err := h.Repo.List(c.Request.Context(), status)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list positions", nil)
		return
	}

	resp := make([]PositionResponse, 0, len(list))
	for _, pos := range list {
		resp = append(resp, toResponse(pos))
	}
	respond.OK(c, resp)
}
