//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres"
	entitypg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/entity"
	historypg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/history"
	policypg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/policy"
	proposalpg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/proposal"
	restrictionpg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/restriction"
	"github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/testhelper"
	usagepg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/usage"
	userpg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/user"
	userratingpg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/userrating"
	votepg "github.com/xunjianyin/rank-anything-sub000/internal/adapter/postgres/vote"
	jwtauth "github.com/xunjianyin/rank-anything-sub000/internal/auth"
	"github.com/xunjianyin/rank-anything-sub000/internal/config"
	authsvc "github.com/xunjianyin/rank-anything-sub000/internal/service/auth"
	historysvc "github.com/xunjianyin/rank-anything-sub000/internal/service/history"
	moderationsvc "github.com/xunjianyin/rank-anything-sub000/internal/service/moderation"
	policysvc "github.com/xunjianyin/rank-anything-sub000/internal/service/policy"
	ratelimitsvc "github.com/xunjianyin/rank-anything-sub000/internal/service/ratelimit"
	restrictionsvc "github.com/xunjianyin/rank-anything-sub000/internal/service/restriction"
	"github.com/xunjianyin/rank-anything-sub000/internal/transport/middleware"
	"github.com/xunjianyin/rank-anything-sub000/internal/transport/rest"
)

// testServer wires the full REST stack over a migrated test database.
type testServer struct {
	*httptest.Server
	pool *pgxpool.Pool
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	users := userpg.New(pool)
	proposals := proposalpg.New(pool)
	votes := votepg.New(pool)
	usage := usagepg.New(pool)
	restrictions := restrictionpg.New(pool)
	userRatings := userratingpg.New(pool)
	historyRepo := historypg.New(pool)
	entities := entitypg.New(pool)
	policyRepo := policypg.New(pool)
	tx := postgres.NewTxManager(pool)

	authCfg := config.AuthConfig{
		JWTSecret:      "e2e-test-secret",
		JWTIssuer:      "rank-anything-test",
		AccessTokenTTL: time.Hour,
		BCryptCost:     4,
	}

	policy := policysvc.NewService(logger, policyRepo)
	require.NoError(t, policy.Load(t.Context()))

	jwt := jwtauth.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)
	auth := authsvc.NewService(logger, users, jwt, authCfg)
	limiter := ratelimitsvc.NewService(logger, usage, policy)
	restriction := restrictionsvc.NewService(logger, restrictions, userRatings, users, limiter, policy, tx)
	history := historysvc.NewService(logger, historyRepo)
	moderation := moderationsvc.NewService(logger, proposals, votes, entities, historyRepo, policy, tx)

	router := rest.NewRouter(rest.Handlers{
		Auth:      rest.NewAuthHandler(auth, logger),
		Proposals: rest.NewProposalHandler(moderation, logger),
		History:   rest.NewHistoryHandler(history, logger),
		Users:     rest.NewUserHandler(restriction, logger),
		Admin:     rest.NewAdminHandler(moderation, policy, logger),
		Health:    rest.NewHealthHandler(pool, "e2e"),
	},
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Auth(auth),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, pool: pool}
}

// do issues a JSON request, optionally authenticated, and decodes the
// response body into a generic map.
func (s *testServer) do(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	// Middleware rejections write plain text, everything else is JSON.
	var decoded map[string]any
	if len(raw) > 0 {
		var anyBody any
		if err := json.Unmarshal(raw, &anyBody); err != nil {
			decoded = map[string]any{"raw": string(raw)}
		} else if m, ok := anyBody.(map[string]any); ok {
			decoded = m
		} else {
			decoded = map[string]any{"items": anyBody}
		}
	}
	return resp.StatusCode, decoded
}

// register creates an account over the API and returns its access token and id.
func (s *testServer) register(t *testing.T, email, username string) (string, uuid.UUID) {
	t.Helper()

	// The database outlives individual tests, so usernames get a unique suffix.
	status, body := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    email,
		"username": fmt.Sprintf("%s-%d", username, time.Now().UnixNano()),
		"password": "long enough password",
	})
	require.Equal(t, http.StatusCreated, status, "register %s: %v", email, body)
	token, ok := body["accessToken"].(string)
	require.True(t, ok, "expected accessToken in response")

	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "expected user in response")
	id, err := uuid.Parse(user["id"].(string))
	require.NoError(t, err)
	return token, id
}

// promote flips a registered user to admin directly in the database, then
// logs in again so the new token carries the admin role.
func (s *testServer) promote(t *testing.T, email string) string {
	t.Helper()

	tag, err := s.pool.Exec(t.Context(),
		`UPDATE users SET role = 'admin' WHERE email = $1`, email)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())

	status, body := s.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "long enough password",
	})
	require.Equal(t, http.StatusOK, status, "login %s: %v", email, body)
	return body["accessToken"].(string)
}

// errCode digs the machine-readable code out of the error envelope.
func errCode(body map[string]any) string {
	errObj, ok := body["error"].(map[string]any)
	if !ok {
		return ""
	}
	code, _ := errObj["code"].(string)
	return code
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}
