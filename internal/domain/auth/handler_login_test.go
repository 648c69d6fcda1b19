package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/crediario/crediario-api/internal/domain/auth"
	"github.com/crediario/crediario-api/internal/domain/user"
	"github.com/crediario/crediario-api/internal/middleware"
	"github.com/crediario/crediario-api/internal/pkg/jwt"
	"github.com/crediario/crediario-api/internal/pkg/password"
)

func setupAuthRouter(t *testing.T) (http.Handler, *user.User) {
	t.Helper()

	userRepo := user.NewRepository()
	jwtService := jwt.NewService("test-secret", time.Hour)

	hash, err := password.Hash("comerciante123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	merchantID := uuid.New()
	u := &user.User{
		ID:           uuid.New(),
		Email:        "comerciante@loja.com",
		PasswordHash: hash,
		Name:         "João Silva",
		Role:         user.RoleMerchant,
		MerchantID:   &merchantID,
		CreatedAt:    time.Now(),
	}
	if err := userRepo.Create(context.Background(), u); err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	handler := auth.NewHandler(auth.NewService(userRepo, jwtService))
	return handler.Routes(middleware.Auth(jwtService)), u
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func postLogin(t *testing.T, router http.Handler, email, pass string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"email": email, "password": pass})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return rec, env
}

func TestLoginSuccess(t *testing.T) {
	router, u := setupAuthRouter(t)

	rec, env := postLogin(t, router, "comerciante@loja.com", "comerciante123")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !env.Success {
		t.Fatal("expected success envelope")
	}

	var data auth.AuthResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("invalid auth payload: %v", err)
	}
	if data.Token.AccessToken == "" {
		t.Fatal("expected an access token")
	}
	if data.Token.TokenType != "Bearer" {
		t.Fatalf("expected Bearer token type, got %s", data.Token.TokenType)
	}
	if data.User.Role != string(user.RoleMerchant) {
		t.Fatalf("expected comerciante role, got %s", data.User.Role)
	}
	if data.User.MerchantID == nil || *data.User.MerchantID != *u.MerchantID {
		t.Fatal("expected the user's merchant scope in the payload")
	}
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	router, _ := setupAuthRouter(t)

	rec, _ := postLogin(t, router, "Comerciante@Loja.com", "comerciante123")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router, _ := setupAuthRouter(t)

	rec, env := postLogin(t, router, "comerciante@loja.com", "senha-errada")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if env.Success {
		t.Fatal("expected error envelope")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	router, _ := setupAuthRouter(t)

	// indistinguishable from a wrong password
	rec, _ := postLogin(t, router, "ninguem@loja.com", "qualquer")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginValidatesBody(t *testing.T) {
	router, _ := setupAuthRouter(t)

	rec, _ := postLogin(t, router, "not-an-email", "x")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestMeReturnsAuthenticatedActor(t *testing.T) {
	router, u := setupAuthRouter(t)

	_, env := postLogin(t, router, "comerciante@loja.com", "comerciante123")
	var data auth.AuthResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("invalid auth payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+data.Token.AccessToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var me envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	var actor auth.ActorResponse
	if err := json.Unmarshal(me.Data, &actor); err != nil {
		t.Fatalf("invalid actor payload: %v", err)
	}
	if actor.ID != u.ID {
		t.Fatal("expected the logged-in actor")
	}
}

func TestMeRejectsMissingToken(t *testing.T) {
	router, _ := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
