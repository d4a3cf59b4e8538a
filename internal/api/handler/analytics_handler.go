package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/internintelligence/portfolio-api/internal/api/metrics"
	"github.com/internintelligence/portfolio-api/internal/core/domain"
	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

type setVisitsRequest struct {
	Visits *int64 `json:"visits" validate:"required,gte=0"`
}

// Overview handles GET /api/v1/analytics.
//
// @Summary      Visit counter
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  analyticsResponse
// @Failure      401  {object}  errorResponse
// @Router       /analytics [get]
func (h *AnalyticsHandler) Overview(c echo.Context, _ domain.Identity) error {
	analytics, err := h.service.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, analyticsResponse{Analytics: analytics})
}

// Track handles POST /api/v1/analytics/track. Repeat visits from the same
// client inside the dedup window are acknowledged but not counted.
//
// @Summary      Track a site visit
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  analyticsResponse
// @Router       /analytics/track [post]
func (h *AnalyticsHandler) Track(c echo.Context) error {
	res, err := h.service.Track(c.Request().Context(), c.RealIP())
	if err != nil {
		return err
	}

	result := "deduplicated"
	if res.Counted {
		result = "counted"
	}
	metrics.VisitsTrackedTotal.WithLabelValues(result).Inc()

	return c.JSON(http.StatusOK, analyticsResponse{Message: "Visit tracked successfully", Analytics: res.Analytics})
}

// SetVisits handles PUT /api/v1/analytics/visits.
//
// @Summary      Overwrite the visit counter
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      setVisitsRequest  true  "New counter value"
// @Success      200   {object}  analyticsResponse
// @Failure      400   {object}  errorResponse
// @Router       /analytics/visits [put]
func (h *AnalyticsHandler) SetVisits(c echo.Context, _ domain.Identity) error {
	p, err := readPayload(c)
	if err != nil {
		return err
	}
	visits, ok, err := p.integer("visits")
	if err != nil || !ok {
		return domain.InvalidInput("Invalid visits value")
	}
	req := setVisitsRequest{Visits: &visits}
	if err := c.Validate(&req); err != nil {
		return domain.InvalidInput("Invalid visits value")
	}

	analytics, err := h.service.SetVisits(c.Request().Context(), *req.Visits)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, analyticsResponse{Message: "Visits updated successfully", Analytics: analytics})
}
