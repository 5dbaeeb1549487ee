package auth

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/sparkd-app/sparkd/internal/httputil"
	"github.com/sparkd-app/sparkd/internal/logging"
	"github.com/sparkd-app/sparkd/internal/ratelimit"
)

// Handler contains HTTP handlers for the auth endpoints.
type Handler struct {
	service     *Service
	rateLimiter *ratelimit.Limiter
	logger      *logging.Logger
}

func NewHandler(service *Service, rateLimiter *ratelimit.Limiter, logger *logging.Logger) *Handler {
	return &Handler{
		service:     service,
		rateLimiter: rateLimiter,
		logger:      logger,
	}
}

// Signup handles account registration
// @Summary      Register a new account
// @Description  Create a new account. The password is stored as a bcrypt hash and never returned.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Signup fields"
// @Success      201 {object} httputil.Envelope
// @Failure      400 {object} httputil.ErrorBody "Invalid body"
// @Failure      409 {object} httputil.ErrorBody "Email already exists"
// @Router       /api/auth/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	if h.ipLimited(w, r, "signup") {
		return
	}

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, httputil.InvalidBody("Invalid request"))
		return
	}

	input, details := req.Validate()
	if len(details) > 0 {
		httputil.RespondError(w, httputil.InvalidBody(details...))
		return
	}

	created, err := h.service.Signup(r.Context(), input)
	if err != nil {
		if !httputil.IsDomainError(err) {
			logger.Error("signup failed", "error", err.Error())
		}
		httputil.RespondError(w, err)
		return
	}

	httputil.RespondResult(w, created, http.StatusCreated)
}

// Login handles credential verification
// @Summary      Log in
// @Description  Verify credentials and issue a time-limited access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} httputil.Envelope
// @Failure      400 {object} httputil.ErrorBody "Invalid body"
// @Failure      401 {object} httputil.ErrorBody "Invalid credentials"
// @Router       /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	if h.ipLimited(w, r, "login") {
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, httputil.InvalidBody("Invalid request"))
		return
	}

	if details := req.Validate(); len(details) > 0 {
		httputil.RespondError(w, httputil.InvalidBody(details...))
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if !httputil.IsDomainError(err) {
			logger.Error("login failed", "error", err.Error())
		}
		httputil.RespondError(w, err)
		return
	}

	httputil.RespondResult(w, result, http.StatusOK)
}

// Me returns the caller's own profile
// @Summary      Current account
// @Description  Return the authenticated account without the credential.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} httputil.Envelope
// @Failure      401 {object} httputil.ErrorBody
// @Failure      404 {object} httputil.ErrorBody "User not found"
// @Router       /api/auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		httputil.RespondErrorCode(w, http.StatusUnauthorized, CodeMissingAccessToken)
		return
	}

	profile, err := h.service.Me(r.Context(), userID)
	if err != nil {
		if !httputil.IsDomainError(err) {
			logger.Error("me lookup failed", "error", err.Error())
		}
		httputil.RespondError(w, err)
		return
	}

	httputil.RespondResult(w, profile, http.StatusOK)
}

// ipLimited applies the per-IP limiter and writes the 429 when exceeded.
// Limiter failures are logged and ignored so Redis outages don't block logins.
func (h *Handler) ipLimited(w http.ResponseWriter, r *http.Request, purpose string) bool {
	logger := logging.GetLoggerFromContext(r.Context())

	exceeded, err := h.rateLimiter.CheckIPRateLimitWithPurpose(r.Context(), getClientIP(r), purpose)
	if err != nil {
		logger.Error("failed to check IP rate limit", "error", err.Error())
		return false
	}
	if exceeded {
		logger.Warn("IP rate limit exceeded", "purpose", purpose)
		httputil.RespondErrorCode(w, http.StatusTooManyRequests, httputil.CodeTooManyRequests, "too many requests, please try again later")
		return true
	}
	return false
}

// getClientIP returns the remote address without the port; chi's RealIP
// middleware has already resolved forwarding headers.
func getClientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return strings.TrimSpace(r.RemoteAddr)
}
