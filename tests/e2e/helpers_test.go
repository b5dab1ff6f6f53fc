//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/articlehub/backend/internal/adapter/postgres"
	articlerepo "github.com/articlehub/backend/internal/adapter/postgres/article"
	"github.com/articlehub/backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/articlehub/backend/internal/adapter/postgres/user"
	authpkg "github.com/articlehub/backend/internal/auth"
	"github.com/articlehub/backend/internal/config"
	"github.com/articlehub/backend/internal/domain"
	"github.com/articlehub/backend/internal/events"
	articlesvc "github.com/articlehub/backend/internal/service/article"
	authsvc "github.com/articlehub/backend/internal/service/auth"
	"github.com/articlehub/backend/internal/transport/middleware"
	"github.com/articlehub/backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Hub    *events.Hub
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	users := userrepo.New(pool)
	articles := articlerepo.New(pool)

	// 4. JWT manager with a test secret (>= 32 chars).
	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtIssuer := "test-issuer"
	accessTTL := 15 * time.Minute
	jwtMgr := authpkg.NewJWTManager(jwtSecret, jwtIssuer, accessTTL)

	// 5. Event hub.
	hub := events.NewHub(logger, 16)

	// 6. Services. MinCost keeps register/login fast in tests.
	authService := authsvc.NewService(logger, users, jwtMgr, config.AuthConfig{
		JWTSecret:        jwtSecret,
		JWTIssuer:        jwtIssuer,
		AccessTokenTTL:   accessTTL,
		PasswordHashCost: 4,
	})
	articleService := articlesvc.NewService(logger, articles, users, hub, txm)

	// 7. Router + middleware chain.
	mux := rest.NewRouter(
		rest.NewArticleHandler(articleService, logger),
		rest.NewAuthHandler(authService, logger),
		rest.NewHealthHandler(pool, "test-version"),
		rest.NewEventsHandler(hub, logger),
	)

	// Generous limit: the throttle path must not trip functional tests.
	rateLimiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(rateLimiter.Stop)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		rateLimiter.Limit(10_000),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(mux)

	// 8. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Hub:    hub,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// doJSON sends a JSON request and returns status + decoded body.
// ---------------------------------------------------------------------------

func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	if resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp.StatusCode, result
}

// ---------------------------------------------------------------------------
// Seed helpers. Users are inserted directly into the DB; tokens are
// minted with the same JWT manager the server validates against.
// ---------------------------------------------------------------------------

func (ts *testServer) seedUserWithToken(t *testing.T, role domain.Role) (domain.User, string) {
	t.Helper()

	user := testhelper.SeedUser(t, ts.Pool, role)
	token, err := ts.jwt.GenerateAccessToken(domain.Principal{ID: user.ID, Role: user.Role})
	require.NoError(t, err)
	return user, token
}

// createArticle creates an article through the API and returns its decoded body.
func (ts *testServer) createArticle(t *testing.T, token, title, content string) map[string]any {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/articles", map[string]any{
		"title":   title,
		"content": content,
	}, token)
	require.Equal(t, http.StatusCreated, status)
	return body
}
