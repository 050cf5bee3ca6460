package applications

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recruitflow-backend/internal/candidates"
	"recruitflow-backend/internal/positions"
	"recruitflow-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches application routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applications", h.create)
	rg.GET("/applications", h.list)
	rg.GET("/positions/:id/candidates", h.rankedCandidates)
}

func (h *Handler) list(c *gin.Context) {
	apps, err := h.Svc.Repo.ListAll(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list applications", nil)
		return
	}

	resp := make([]ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		resp = append(resp, toApplicationResponse(app))
	}
	respond.OK(c, resp)
}

func (h *Handler) create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	profile := candidates.Profile{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.TrimSpace(req.Email),
		Phone:          strings.TrimSpace(req.Phone),
		Skills:         req.Skills,
		Experience:     req.Experience,
		Education:      req.Education,
		MatchScore:     req.MatchScore,
		ExtractionNote: req.Note,
	}

	app, err := h.Svc.Create(c.Request.Context(), strings.TrimSpace(req.PositionID), profile)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput), errors.Is(err, candidates.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, positions.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "position not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create application", nil)
		}
		return
	}

	c.Set("applicationId", app.ID)
	respond.JSON(c, http.StatusCreated, toApplicationResponse(app))
}

func (h *Handler) rankedCandidates(c *gin.Context) {
	scored, err := h.Svc.CandidatesForPosition(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, positions.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "position not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to rank candidates", nil)
		}
		return
	}

	resp := make([]RankedCandidateResponse, 0, len(scored))
	for _, sa := range scored {
		resp = append(resp, toRankedResponse(sa))
	}
	respond.OK(c, resp)
}
