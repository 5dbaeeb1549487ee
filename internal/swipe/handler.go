package swipe

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sparkd-app/sparkd/internal/auth"
	"github.com/sparkd-app/sparkd/internal/httputil"
	"github.com/sparkd-app/sparkd/internal/logging"
)

// Handler contains HTTP handlers for the swipe endpoints.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

func NewHandler(service *Service, logger *logging.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// UpdateActionRequest is the PUT /swipes body.
type UpdateActionRequest struct {
	SwipeID string `json:"swipeId"`
	Action  string `json:"action"`
}

func (r UpdateActionRequest) validate() (uuid.UUID, Action, []string) {
	var details []string

	swipeID, err := uuid.Parse(r.SwipeID)
	if err != nil {
		details = append(details, "swipeId must be a valid id")
	}

	action := Action(r.Action)
	if !action.Valid() {
		details = append(details, "action must be LIKE or PASS")
	}

	return swipeID, action, details
}

// NextProfile serves the next swipeable candidate
// @Summary      Next swipeable profile
// @Description  Select a candidate the caller has not swiped today and record the swipe with the quota increment.
// @Tags         swipes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} httputil.Envelope
// @Failure      401 {object} httputil.ErrorBody
// @Failure      403 {object} httputil.ErrorBody "Daily limit reached"
// @Failure      404 {object} httputil.ErrorBody "No candidate"
// @Router       /api/swipes/profile [get]
func (h *Handler) NextProfile(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorCode(w, http.StatusUnauthorized, auth.CodeMissingAccessToken)
		return
	}

	candidate, err := h.service.NextProfile(r.Context(), userID)
	if err != nil {
		if !httputil.IsDomainError(err) {
			logger.Error("next profile failed", "error", err.Error())
		}
		httputil.RespondError(w, err)
		return
	}

	httputil.RespondResult(w, candidate, http.StatusOK)
}

// UpdateAction corrects a same-day swipe
// @Summary      Update swipe action
// @Description  Change the action of a swipe made today by the caller.
// @Tags         swipes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body UpdateActionRequest true "Swipe id and new action"
// @Success      200 {object} httputil.Envelope
// @Failure      400 {object} httputil.ErrorBody "Invalid body"
// @Failure      401 {object} httputil.ErrorBody
// @Failure      404 {object} httputil.ErrorBody "Swipe not found"
// @Router       /api/swipes [put]
func (h *Handler) UpdateAction(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorCode(w, http.StatusUnauthorized, auth.CodeMissingAccessToken)
		return
	}

	var req UpdateActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, httputil.InvalidBody("Invalid request"))
		return
	}

	swipeID, action, details := req.validate()
	if len(details) > 0 {
		httputil.RespondError(w, httputil.InvalidBody(details...))
		return
	}

	updated, err := h.service.UpdateAction(r.Context(), userID, swipeID, action)
	if err != nil {
		if !httputil.IsDomainError(err) {
			logger.Error("update swipe action failed", "error", err.Error())
		}
		httputil.RespondError(w, err)
		return
	}

	httputil.RespondResult(w, updated, http.StatusOK)
}

// Stats serves the caller's swipe statistics
// @Summary      Swipe statistics
// @Description  Aggregate counts over the caller's full swipe history.
// @Tags         swipes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} httputil.Envelope
// @Failure      401 {object} httputil.ErrorBody
// @Router       /api/swipes/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorCode(w, http.StatusUnauthorized, auth.CodeMissingAccessToken)
		return
	}

	stats, err := h.service.Stats(r.Context(), userID)
	if err != nil {
		if !httputil.IsDomainError(err) {
			logger.Error("swipe stats failed", "error", err.Error())
		}
		httputil.RespondError(w, err)
		return
	}

	httputil.RespondResult(w, stats, http.StatusOK)
}
