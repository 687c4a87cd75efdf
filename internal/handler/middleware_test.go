package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/viddeck/viddeck/internal/handler"
	"github.com/viddeck/viddeck/internal/repository/disk"
	"github.com/viddeck/viddeck/internal/repository/memory"
	"github.com/viddeck/viddeck/internal/service"
)

const testJWTSecret = "test-secret-for-handler-tests"

type testEnv struct {
	mux        *http.ServeMux
	auth       *service.AuthService
	store      *memory.UserStore
	uploadRoot string
}

func newTestEnv(t *testing.T, production bool) *testEnv {
	t.Helper()
	store := memory.NewUserStore()
	hasher := service.NewPasswordHasher(4) // cost 4 for fast tests
	tokens := service.NewTokenService(testJWTSecret, time.Hour)
	auth := service.NewAuthService(store, hasher, tokens)

	files, err := disk.NewFileStore(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	uploads := service.NewUploadService(files)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, auth, uploads, store, files.Root(), production)

	return &testEnv{mux: mux, auth: auth, store: store, uploadRoot: files.Root()}
}

// doJSON performs a request with an optional JSON body against the mux.
func (e *testEnv) doJSON(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.mux.ServeHTTP(w, req)
	return w
}

// registerUser registers a user through the API and returns the token.
func (e *testEnv) registerUser(t *testing.T, email, password string) string {
	t.Helper()
	w := e.doJSON(t, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    email,
		"password": password,
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d: %s", email, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token in register response")
	}
	return resp.Token
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	env := newTestEnv(t, false)
	token := env.registerUser(t, "valid@example.com", "password123")

	w := env.doJSON(t, http.MethodGet, "/api/user/profile", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var profile struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile.Email != "valid@example.com" || profile.Name != "valid" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	env := newTestEnv(t, false)

	w := env.doJSON(t, http.MethodGet, "/api/user/profile", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Error != "No token provided" {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
}

func TestAuthMiddleware_InvalidAndExpiredLookTheSame(t *testing.T) {
	env := newTestEnv(t, false)

	// Token signed with a different secret.
	otherTokens := service.NewTokenService("some-other-secret-entirely", time.Hour)
	forged, err := otherTokens.Issue("1", "forged@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// Token from the right secret but already expired.
	expiredTokens := service.NewTokenService(testJWTSecret, -time.Minute)
	expired, err := expiredTokens.Issue("1", "late@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	var bodies []string
	for _, token := range []string{forged, expired, "not-a-jwt"} {
		w := env.doJSON(t, http.MethodGet, "/api/user/profile", nil, map[string]string{
			"Authorization": "Bearer " + token,
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		bodies = append(bodies, w.Body.String())
	}
	for _, body := range bodies[1:] {
		if body != bodies[0] {
			t.Fatalf("rejection bodies differ: %q vs %q", bodies[0], body)
		}
	}
}

func TestAuthMiddleware_MalformedAuthorizationHeader(t *testing.T) {
	env := newTestEnv(t, false)
	token := env.registerUser(t, "scheme@example.com", "password123")

	for _, header := range []string{token, "Basic " + token, "Bearer", "Bearer "} {
		w := env.doJSON(t, http.MethodGet, "/api/user/profile", nil, map[string]string{
			"Authorization": header,
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, w.Code)
		}
	}
}

func TestAuthMiddleware_AuthenticateOutcome(t *testing.T) {
	tokens := service.NewTokenService(testJWTSecret, time.Hour)
	mw := handler.NewAuthMiddleware(tokens)

	signed, err := tokens.Issue("id-1", "outcome@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	outcome := mw.Authenticate(req)
	if !outcome.Allowed {
		t.Fatalf("expected allow, got reject: %q", outcome.Reason)
	}
	if outcome.Identity.UserID != "id-1" || outcome.Identity.Email != "outcome@example.com" {
		t.Fatalf("unexpected identity: %+v", outcome.Identity)
	}

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	outcome = mw.Authenticate(req)
	if outcome.Allowed {
		t.Fatal("expected reject without a token")
	}
	if outcome.Reason != "No token provided" {
		t.Fatalf("unexpected reason: %q", outcome.Reason)
	}
}
