package premium

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sparkd-app/sparkd/internal/auth"
	"github.com/sparkd-app/sparkd/internal/httputil"
	"github.com/sparkd-app/sparkd/internal/logging"
)

// Handler contains HTTP handlers for the premium package endpoints.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

func NewHandler(service *Service, logger *logging.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// PurchaseRequest is the purchase body.
type PurchaseRequest struct {
	PremiumPackageID string `json:"premiumPackageId"`
}

// purchaseResponse has no ok flag; the purchase endpoint historically returns
// the bare result object.
type purchaseResponse struct {
	Result *Purchase `json:"result"`
}

// List serves the package catalog
// @Summary      List premium packages
// @Description  Catalog fields only; no entitlement state.
// @Tags         premium-packages
// @Produce      json
// @Success      200 {object} httputil.Envelope
// @Router       /api/premium-packages [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	packages, err := h.service.List(r.Context())
	if err != nil {
		logger.Error("list premium packages failed", "error", err.Error())
		httputil.RespondError(w, err)
		return
	}

	httputil.RespondResult(w, packages, http.StatusOK)
}

// Purchase buys a package for the caller
// @Summary      Purchase a premium package
// @Description  Validate entitlement state, flip the matching flag and record the purchase atomically.
// @Tags         premium-packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PurchaseRequest true "Package id"
// @Success      201 {object} purchaseResponse
// @Failure      400 {object} httputil.ErrorBody "Invalid body or already entitled"
// @Failure      401 {object} httputil.ErrorBody
// @Failure      404 {object} httputil.ErrorBody "Package not found"
// @Router       /api/premium-packages/purchase [post]
func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorCode(w, http.StatusUnauthorized, auth.CodeMissingAccessToken)
		return
	}

	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, httputil.InvalidBody("Invalid request"))
		return
	}

	packageID, err := uuid.Parse(req.PremiumPackageID)
	if err != nil {
		httputil.RespondError(w, httputil.InvalidBody("premiumPackageId must be a valid id"))
		return
	}

	purchase, err := h.service.Purchase(r.Context(), userID, packageID)
	if err != nil {
		if !httputil.IsDomainError(err) {
			logger.Error("purchase failed", "error", err.Error())
		}
		httputil.RespondError(w, err)
		return
	}

	httputil.RespondJSON(w, purchaseResponse{Result: purchase}, http.StatusCreated)
}
