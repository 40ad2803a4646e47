package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"spendscan/internal/dto"
	"spendscan/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuthService struct {
	registerErr error
	loginID     int64
	loginErr    error
}

func (s *fakeAuthService) Register(ctx context.Context, req *dto.RegisterRequest) error {
	return s.registerErr
}

func (s *fakeAuthService) Login(ctx context.Context, req *dto.LoginRequest) (int64, error) {
	return s.loginID, s.loginErr
}

func authApp(svc AuthService) *fiber.App {
	app := fiber.New()
	handler := NewAuthHandler(svc, zap.NewNop())
	app.Post("/register", handler.Register)
	app.Post("/login", handler.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, target string, body any) (int, map[string]any) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", target, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func TestRegisterHandler(t *testing.T) {
	app := authApp(&fakeAuthService{})

	status, body := postJSON(t, app, "/register", dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "secret",
	})

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "User registered successfully", body["message"])
}

func TestRegisterHandlerDuplicateEmail(t *testing.T) {
	app := authApp(&fakeAuthService{registerErr: service.ErrUserExists})

	status, body := postJSON(t, app, "/register", dto.RegisterRequest{
		Email:    "a@b.com",
		Password: "secret",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Email already registered", body["error"])
}

func TestLoginHandler(t *testing.T) {
	app := authApp(&fakeAuthService{loginID: 42})

	status, body := postJSON(t, app, "/login", dto.LoginRequest{
		Email:    "a@b.com",
		Password: "secret",
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, float64(42), body["user_id"])
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	app := authApp(&fakeAuthService{loginErr: service.ErrInvalidCredentials})

	// Same status and body regardless of which credential was wrong.
	status, body := postJSON(t, app, "/login", dto.LoginRequest{
		Email:    "a@b.com",
		Password: "nope",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid email or password", body["error"])
}
