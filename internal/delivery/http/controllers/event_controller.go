package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	h "eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
)

// EventRequest is the request body for POST /events and PUT /events/{id}.
// Tags is the raw comma-separated input; the service normalizes it.
type EventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Tags        string `json:"tags"`
}

// Validate implements Validator.
func (e EventRequest) Validate() []string {
	var errs []string
	required := map[string]string{
		"title":       e.Title,
		"date":        e.Date,
		"time":        e.Time,
		"description": e.Description,
		"location":    e.Location,
		"image":       e.Image,
		"category":    e.Category,
	}
	for _, name := range []string{"title", "date", "time", "description", "location", "image", "category"} {
		if strings.TrimSpace(required[name]) == "" {
			errs = append(errs, name+" is required")
		}
	}
	if e.Category != "" && !domain.ValidCategory(e.Category) {
		errs = append(errs, "unknown category")
	}
	return errs
}

func (e EventRequest) toInput() domain.EventInput {
	return domain.EventInput{
		Title:       e.Title,
		Date:        e.Date,
		Time:        e.Time,
		Description: e.Description,
		Location:    e.Location,
		Image:       e.Image,
		Category:    e.Category,
		Tags:        e.Tags,
	}
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List approved events
// @Description Public listing of approved events. Supports substring search over title, location, and description, a category filter, and date ordering.
// @Tags events
// @Produce json
// @Param q query string false "Search substring"
// @Param category query string false "Conference | Workshop | Meetup | Webinar"
// @Param sort query string false "newest (default) or oldest"
// @Success 200 {object} helpers.APIResponse "data contains the event list"
// @Router /events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.EventFilter{
		ApprovedOnly: true,
		Search:       query.Get("q"),
		Category:     query.Get("category"),
		Sort:         query.Get("sort"),
	}
	events, err := c.Service.List(r.Context(), filter)
	if err != nil {
		h.WriteDomainError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, events)
}

// Get godoc
// @Summary Event detail
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{id} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.WriteDomainError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// Create godoc
// @Summary Create an event
// @Description Create an event owned by the logged-in user. Admin creations are approved immediately; others await approval.
// @Tags events
// @Accept json
// @Produce json
// @Param body body EventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sess, _ := middleware.SessionFromContext(r.Context())
	event, err := c.Service.Create(r.Context(), req.toInput(), sess)
	if err != nil {
		h.WriteDomainError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, event)
}

// Update godoc
// @Summary Edit an event
// @Description Replace the event's fields wholesale. Only the creator or an admin may edit.
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body EventRequest true "Event data"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{id} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sess, _ := middleware.SessionFromContext(r.Context())
	event, err := c.Service.Update(r.Context(), r.PathValue("id"), req.toInput(), sess)
	if err != nil {
		h.WriteDomainError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Description Remove the event. Deleting an unknown id is a silent no-op.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.APIResponse
// @Router /events/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.WriteDomainError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, nil)
}

// Approve godoc
// @Summary Approve an event
// @Description Mark the event approved. Idempotent; approving an unknown id is a no-op.
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.APIResponse
// @Router /events/{id}/approve [post]
func (c *EventController) Approve(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Approve(r.Context(), r.PathValue("id")); err != nil {
		h.WriteDomainError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, nil)
}

// Manage godoc
// @Summary Manage events
// @Description Listing for the management view: admins see every event, other users only their own.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the event list"
// @Router /manage/events [get]
func (c *EventController) Manage(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "login required")
		return
	}
	filter := domain.EventFilter{}
	if !sess.IsAdmin() {
		filter.CreatorID = sess.ID
	}
	events, err := c.Service.List(r.Context(), filter)
	if err != nil {
		h.WriteDomainError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, events)
}
