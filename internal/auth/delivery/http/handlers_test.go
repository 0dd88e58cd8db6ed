package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	authUC "taskflow-pro/internal/auth/usecase"
	"taskflow-pro/internal/middleware"
	orgRepo "taskflow-pro/internal/organization/repository/sqldb"
	orgUC "taskflow-pro/internal/organization/usecase"
	subMemory "taskflow-pro/internal/subscription/repository/memory"
	subUC "taskflow-pro/internal/subscription/usecase"
	taskRepo "taskflow-pro/internal/task/repository/sqldb"
	taskUC "taskflow-pro/internal/task/usecase"
	"taskflow-pro/pkg/database"
	"taskflow-pro/pkg/datemath"
	"taskflow-pro/pkg/log"
	"taskflow-pro/pkg/scope"
)

type testEnv struct {
	router *gin.Engine
}

func setupTestEnv(t *testing.T, loginPerMin int) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	l := log.NewNop()

	db, err := database.Open(ctx, l, database.Config{Driver: database.DriverSQLite, SQLitePath: ":memory:"})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(ctx, l, db, database.DriverSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	dm, _ := datemath.NewParser("UTC")
	sub := subUC.New(l, subMemory.New(0))
	tasks := taskUC.New(l, taskRepo.New(db, database.DriverSQLite, l), sub, nil, "", dm)
	orgs := orgUC.New(l, orgRepo.New(db, database.DriverSQLite, l))
	jwtManager := scope.New("test-secret", time.Hour)

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"), New(l, authUC.New(l, jwtManager, tasks, orgs, true)), middleware.New(l, jwtManager, nil), loginPerMin)
	return testEnv{router: router}
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

func (e testEnv) do(t *testing.T, token, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp envelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w.Code, resp
}

func TestLoginAndMe(t *testing.T) {
	env := setupTestEnv(t, 0)

	code, resp := env.do(t, "", http.MethodPost, "/api/v1/auth/login", map[string]string{"name": "Alice", "email": "alice@example.com"})
	if code != http.StatusOK {
		t.Fatalf("login status = %d", code)
	}
	var login loginResp
	json.Unmarshal(resp.Data, &login)
	if login.Token == "" || login.User.Name != "Alice" || login.User.ID == "" {
		t.Fatalf("login = %+v", login)
	}
	if login.Seeded == 0 {
		t.Errorf("expected sample tasks for a first sign-in")
	}

	code, resp = env.do(t, login.Token, http.MethodGet, "/api/v1/auth/me", nil)
	if code != http.StatusOK {
		t.Fatalf("me status = %d", code)
	}
	var me userResp
	json.Unmarshal(resp.Data, &me)
	if me != login.User {
		t.Errorf("me = %+v, want %+v", me, login.User)
	}

	// A second sign-in does not seed again.
	_, resp = env.do(t, "", http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "alice@example.com"})
	var again loginResp
	json.Unmarshal(resp.Data, &again)
	if again.Seeded != 0 || again.User.ID != login.User.ID {
		t.Errorf("second login = %+v", again)
	}
}

func TestLoginInvalidEmail(t *testing.T) {
	env := setupTestEnv(t, 0)

	code, resp := env.do(t, "", http.MethodPost, "/api/v1/auth/login", map[string]string{"email": "nope"})
	if code != http.StatusBadRequest || resp.ErrorCode != 160001 {
		t.Errorf("status = %d code = %d, want 400/160001", code, resp.ErrorCode)
	}
}

func TestMeRequiresToken(t *testing.T) {
	env := setupTestEnv(t, 0)

	code, _ := env.do(t, "", http.MethodGet, "/api/v1/auth/me", nil)
	if code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", code)
	}
}

func TestLoginRateLimit(t *testing.T) {
	env := setupTestEnv(t, 1)

	code, _ := env.do(t, "", http.MethodPost, "/api/v1/auth/login", map[string]string{})
	if code != http.StatusOK {
		t.Fatalf("first status = %d", code)
	}
	code, _ = env.do(t, "", http.MethodPost, "/api/v1/auth/login", map[string]string{})
	if code != http.StatusTooManyRequests {
		t.Errorf("second status = %d, want 429", code)
	}
}
