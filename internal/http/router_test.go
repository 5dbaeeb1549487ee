package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sparkd-app/sparkd/internal/auth"
	"github.com/sparkd-app/sparkd/internal/config"
	"github.com/sparkd-app/sparkd/internal/logging"
	"github.com/sparkd-app/sparkd/internal/premium"
	"github.com/sparkd-app/sparkd/internal/ratelimit"
	"github.com/sparkd-app/sparkd/internal/swipe"
	"github.com/sparkd-app/sparkd/internal/user"
)

type stubUserStore struct {
	account *user.User
}

func (s *stubUserStore) Create(ctx context.Context, u *user.User) (*user.User, error) {
	created := *u
	created.ID = uuid.New()
	return &created, nil
}

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if s.account == nil || s.account.Email != email {
		return nil, user.ErrNotFound
	}
	return s.account, nil
}

func (s *stubUserStore) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if s.account == nil || s.account.ID != id {
		return nil, user.ErrNotFound
	}
	return s.account, nil
}

func (s *stubUserStore) FindCandidate(ctx context.Context, excludeID uuid.UUID, excludeTargets []uuid.UUID) (*user.Candidate, error) {
	return nil, user.ErrNotFound
}

func (s *stubUserStore) GetEntitlements(ctx context.Context, id uuid.UUID) (*user.Entitlements, error) {
	if s.account == nil || s.account.ID != id {
		return nil, user.ErrNotFound
	}
	return &user.Entitlements{ID: id, IsPremium: s.account.IsPremium, IsVerified: s.account.IsVerified}, nil
}

type stubSwipeStore struct{}

func (stubSwipeStore) ListTargetIDsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]uuid.UUID, error) {
	return nil, nil
}

func (stubSwipeStore) Record(ctx context.Context, userID, targetID uuid.UUID, newCount int) error {
	return nil
}

func (stubSwipeStore) GetOwnedSince(ctx context.Context, id, userID uuid.UUID, since time.Time) (*swipe.Swipe, error) {
	return nil, swipe.ErrNotFound
}

func (stubSwipeStore) UpdateAction(ctx context.Context, id uuid.UUID, action swipe.Action) (*swipe.Swipe, error) {
	return nil, swipe.ErrNotFound
}

func (stubSwipeStore) ListWithTargets(ctx context.Context, userID uuid.UUID) ([]swipe.HistoryEntry, error) {
	return nil, nil
}

type stubPackageStore struct {
	packages []premium.Package
}

func (s *stubPackageStore) List(ctx context.Context) ([]premium.Package, error) {
	return s.packages, nil
}

func (s *stubPackageStore) GetByID(ctx context.Context, id uuid.UUID) (*premium.Package, error) {
	for i := range s.packages {
		if s.packages[i].ID == id {
			return &s.packages[i], nil
		}
	}
	return nil, premium.ErrPackageNotFound
}

func (s *stubPackageStore) CreatePurchase(ctx context.Context, userID, packageID uuid.UUID, isPremium, isVerified bool) (*premium.Purchase, error) {
	return &premium.Purchase{ID: uuid.New(), UserID: userID, PremiumPackageID: packageID}, nil
}

// newTestRouter wires real services and middleware over in-memory stores. The
// rate limiter points at an unreachable Redis; limiter failures are logged and
// ignored, so the auth routes stay usable.
func newTestRouter(t *testing.T, users *stubUserStore) (http.Handler, *auth.PasetoService) {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Env:            "prod",
			TrustedOrigins: []string{"http://localhost:3000"},
		},
	}

	logger := logging.NewLogger(true)
	pasetoService, err := auth.NewPasetoService([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	limiter := ratelimit.NewLimiter(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))

	authService := auth.NewService(users, pasetoService, logger, time.Hour)
	swipeService := swipe.NewService(users, stubSwipeStore{})
	premiumService := premium.NewService(&stubPackageStore{packages: []premium.Package{
		{ID: uuid.New(), Name: "Premium Package 1", Price: 10, Code: premium.CodePremium},
	}}, users)

	router := NewRouter(
		cfg,
		auth.NewHandler(authService, limiter, logger),
		swipe.NewHandler(swipeService, logger),
		premium.NewHandler(premiumService, logger),
		auth.NewMiddleware(pasetoService),
		logger,
	)
	return router, pasetoService
}

func TestRootAndHealthRoutes(t *testing.T) {
	router, _ := newTestRouter(t, &stubUserStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello, World!", rec.Body.String())
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "api is running"}`, rec.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t, &stubUserStore{})

	for _, target := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodGet, "/api/swipes/profile"},
		{http.MethodGet, "/api/swipes/stats"},
		{http.MethodPut, "/api/swipes"},
		{http.MethodPost, "/api/premium-packages/purchase"},
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(target.method, target.path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", target.method, target.path)
		assert.Contains(t, rec.Body.String(), auth.CodeMissingAccessToken)
	}
}

func TestCatalogRouteIsPublic(t *testing.T) {
	router, _ := newTestRouter(t, &stubUserStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/premium-packages", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
	assert.Contains(t, rec.Body.String(), premium.CodePremium)
}

func TestLoginThenMeFlow(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	account := &user.User{
		ID:           uuid.New(),
		Email:        "user@email.com",
		PasswordHash: string(hash),
		Name:         "Seed User",
		Gender:       user.GenderOther,
	}

	router, _ := newTestRouter(t, &stubUserStore{account: account})

	rec := httptest.NewRecorder()
	loginReq := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"user@email.com","password":"password123"}`))
	router.ServeHTTP(rec, loginReq)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var loginBody struct {
		OK     bool `json:"ok"`
		Result struct {
			AccessToken string `json:"accessToken"`
			User        struct {
				ID string `json:"id"`
			} `json:"user"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginBody))
	assert.True(t, loginBody.OK)
	assert.Equal(t, account.ID.String(), loginBody.Result.User.ID)
	require.NotEmpty(t, loginBody.Result.AccessToken)

	rec = httptest.NewRecorder()
	meReq := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	meReq.Header.Set("Authorization", "Bearer "+loginBody.Result.AccessToken)
	router.ServeHTTP(rec, meReq)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"user@email.com"`)
	assert.NotContains(t, rec.Body.String(), "password")
}
