package controllers

import (
	"log/slog"
	"net/http"

	h "eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// PreferenceRequest is the request body for PUT /events/{id}/preferences.
// Absent fields keep their stored values.
type PreferenceRequest struct {
	Interested *bool `json:"interested"`
	Rating     *int  `json:"rating"`
}

// Validate implements Validator.
func (p PreferenceRequest) Validate() []string {
	var errs []string
	if p.Interested == nil && p.Rating == nil {
		errs = append(errs, "interested or rating is required")
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		errs = append(errs, "rating must be between 0 and 5")
	}
	return errs
}

type PreferenceController struct {
	Logger  *slog.Logger
	Service domain.PreferenceService
}

func NewPreferenceController(logger *slog.Logger, svc domain.PreferenceService) *PreferenceController {
	return &PreferenceController{
		Logger:  logger,
		Service: svc,
	}
}

// Get godoc
// @Summary Event preference
// @Description Interest flag and rating for the event. Defaults to not interested, unrated. Preferences are keyed by event alone and shared by every viewer of the same store.
// @Tags preferences
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the preference"
// @Router /events/{id}/preferences [get]
func (c *PreferenceController) Get(w http.ResponseWriter, r *http.Request) {
	pref, err := c.Service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.WriteDomainError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, pref)
}

// Set godoc
// @Summary Update event preference
// @Description Merge the supplied fields into the stored preference.
// @Tags preferences
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param body body PreferenceRequest true "Fields to merge"
// @Success 200 {object} helpers.APIResponse "data contains the merged preference"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /events/{id}/preferences [put]
func (c *PreferenceController) Set(w http.ResponseWriter, r *http.Request) {
	var req PreferenceRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	pref, err := c.Service.Set(r.Context(), r.PathValue("id"), req.Interested, req.Rating)
	if err != nil {
		h.WriteDomainError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, pref)
}
