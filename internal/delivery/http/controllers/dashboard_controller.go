package controllers

import (
	"log/slog"
	"net/http"

	h "eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
)

// UserDashboard is the response body for GET /dashboard/user.
type UserDashboard struct {
	Username string          `json:"username"`
	Events   []*domain.Event `json:"events"`
}

type DashboardController struct {
	Logger *slog.Logger
	Events domain.EventService
	Stats  domain.StatsService
}

func NewDashboardController(logger *slog.Logger, events domain.EventService, stats domain.StatsService) *DashboardController {
	return &DashboardController{
		Logger: logger,
		Events: events,
		Stats:  stats,
	}
}

// User godoc
// @Summary User dashboard
// @Description The logged-in user's own events.
// @Tags dashboards
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the dashboard"
// @Router /dashboard/user [get]
func (c *DashboardController) User(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "login required")
		return
	}
	events, err := c.Events.List(r.Context(), domain.EventFilter{CreatorID: sess.ID})
	if err != nil {
		h.WriteDomainError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, UserDashboard{Username: sess.Username, Events: events})
}

// Admin godoc
// @Summary Admin dashboard
// @Description Collection totals and the queue of events awaiting approval.
// @Tags dashboards
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the overview"
// @Router /dashboard/admin [get]
func (c *DashboardController) Admin(w http.ResponseWriter, r *http.Request) {
	overview, err := c.Stats.AdminOverview(r.Context())
	if err != nil {
		h.WriteDomainError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, overview)
}
