package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/services"
	"fintrack/internal/validator"
)

// --- mock services ---

type mockUserService struct {
	createUserFn            func(name, email, password string) (*models.User, error)
	getUserByEmailFn        func(email string) (*models.User, error)
	getUserByIDFn           func(id string) (*models.User, error)
	verifyPasswordFn        func(user *models.User, password string) bool
	storeRefreshTokenHashFn func(userID, tokenHash string) error
	getRefreshTokenHashFn   func(userID string) (string, error)
	clearRefreshTokenHashFn func(tokenHash string) error
}

func (m *mockUserService) CreateUser(name, email, password string) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(name, email, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByEmail(email string) (*models.User, error) {
	if m.getUserByEmailFn != nil {
		return m.getUserByEmailFn(email)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{}, nil
}

func (m *mockUserService) VerifyPassword(user *models.User, password string) bool {
	if m.verifyPasswordFn != nil {
		return m.verifyPasswordFn(user, password)
	}
	return true
}

func (m *mockUserService) StoreRefreshTokenHash(userID, tokenHash string) error {
	if m.storeRefreshTokenHashFn != nil {
		return m.storeRefreshTokenHashFn(userID, tokenHash)
	}
	return nil
}

func (m *mockUserService) GetRefreshTokenHash(userID string) (string, error) {
	if m.getRefreshTokenHashFn != nil {
		return m.getRefreshTokenHashFn(userID)
	}
	return "", nil
}

func (m *mockUserService) ClearRefreshTokenHash(tokenHash string) error {
	if m.clearRefreshTokenHashFn != nil {
		return m.clearRefreshTokenHashFn(tokenHash)
	}
	return nil
}

var _ services.UserServicer = (*mockUserService)(nil)

// --- test helpers ---

const testUserID = "0195a000-0000-7000-8000-000000000001"

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func setupUserRouter(handler *UserHandler) *gin.Engine {
	r := gin.New()
	r.POST("/users/register", handler.Register)
	r.POST("/users/login", handler.Login)
	r.POST("/users/logout", handler.Logout)
	r.POST("/users/refreshToken", handler.RefreshToken)
	return r
}

func doRequest(r *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func testUser() *models.User {
	user := &models.User{
		Name:  "Test User",
		Email: "test@example.com",
	}
	user.ID = testUserID
	return user
}

// --- tests ---

func TestRegisterHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler := NewUserHandler(&mockUserService{
			createUserFn: func(name, email, password string) (*models.User, error) {
				return testUser(), nil
			},
		})
		r := setupUserRouter(handler)

		rec := doRequest(r, http.MethodPost, "/users/register",
			`{"name":"Test User","email":"test@example.com","password":"password123"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		body := parseJSON(t, rec)
		if body["success"] != true {
			t.Errorf("expected success true, got %v", body["success"])
		}
		if body["message"] != "User Registered Successfully" {
			t.Errorf("unexpected message: %v", body["message"])
		}
	})

	t.Run("invalid_email", func(t *testing.T) {
		handler := NewUserHandler(&mockUserService{})
		r := setupUserRouter(handler)

		rec := doRequest(r, http.MethodPost, "/users/register",
			`{"name":"Test User","email":"not-an-email","password":"password123"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("short_password", func(t *testing.T) {
		handler := NewUserHandler(&mockUserService{})
		r := setupUserRouter(handler)

		rec := doRequest(r, http.MethodPost, "/users/register",
			`{"name":"Test User","email":"test@example.com","password":"short"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		handler := NewUserHandler(&mockUserService{
			createUserFn: func(name, email, password string) (*models.User, error) {
				return nil, apperrors.ErrDuplicateEmail
			},
		})
		r := setupUserRouter(handler)

		rec := doRequest(r, http.MethodPost, "/users/register",
			`{"name":"Test User","email":"test@example.com","password":"password123"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		body := parseJSON(t, rec)
		if body["success"] != false {
			t.Errorf("expected success false, got %v", body["success"])
		}
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stored := ""
		handler := NewUserHandler(&mockUserService{
			getUserByEmailFn: func(email string) (*models.User, error) {
				return testUser(), nil
			},
			storeRefreshTokenHashFn: func(userID, tokenHash string) error {
				stored = tokenHash
				return nil
			},
		})
		r := setupUserRouter(handler)

		rec := doRequest(r, http.MethodPost, "/users/login",
			`{"email":"test@example.com","password":"password123"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := parseJSON(t, rec)
		if body["accessToken"] == nil || body["accessToken"] == "" {
			t.Error("expected an access token in the response")
		}
		user, ok := body["user"].(map[string]interface{})
		if !ok || user["id"] != testUserID {
			t.Errorf("expected user payload with id %s, got %v", testUserID, body["user"])
		}
		if stored == "" {
			t.Error("expected the refresh token hash to be stored")
		}

		var refresh *http.Cookie
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == "refreshToken" {
				refresh = cookie
			}
		}
		if refresh == nil || refresh.Value == "" {
			t.Fatal("expected a refreshToken cookie")
		}
		if !refresh.HttpOnly {
			t.Error("expected the refreshToken cookie to be httpOnly")
		}
	})

	t.Run("user_not_found", func(t *testing.T) {
		handler := NewUserHandler(&mockUserService{
			getUserByEmailFn: func(email string) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		})
		r := setupUserRouter(handler)

		rec := doRequest(r, http.MethodPost, "/users/login",
			`{"email":"nobody@example.com","password":"password123"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		handler := NewUserHandler(&mockUserService{
			getUserByEmailFn: func(email string) (*models.User, error) {
				return testUser(), nil
			},
			verifyPasswordFn: func(user *models.User, password string) bool {
				return false
			},
		})
		r := setupUserRouter(handler)

		rec := doRequest(r, http.MethodPost, "/users/login",
			`{"email":"test@example.com","password":"wrong-password"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}

func TestRefreshTokenHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		user := testUser()
		refreshToken, err := middleware.GenerateRefreshToken(user)
		if err != nil {
			t.Fatalf("failed to generate refresh token: %v", err)
		}

		handler := NewUserHandler(&mockUserService{
			getRefreshTokenHashFn: func(userID string) (string, error) {
				return middleware.HashToken(refreshToken), nil
			},
			getUserByIDFn: func(id string) (*models.User, error) {
				return user, nil
			},
		})
		r := setupUserRouter(handler)

		rec := doRequest(r, http.MethodPost, "/users/refreshToken", "",
			&http.Cookie{Name: "refreshToken", Value: refreshToken})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := parseJSON(t, rec)
		if body["accessToken"] == nil || body["accessToken"] == "" {
			t.Error("expected a new access token")
		}
	})

	t.Run("missing_cookie", func(t *testing.T) {
		handler := NewUserHandler(&mockUserService{})
		r := setupUserRouter(handler)

		rec := doRequest(r, http.MethodPost, "/users/refreshToken", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("garbage_token", func(t *testing.T) {
		handler := NewUserHandler(&mockUserService{})
		r := setupUserRouter(handler)

		rec := doRequest(r, http.MethodPost, "/users/refreshToken", "",
			&http.Cookie{Name: "refreshToken", Value: "not-a-jwt"})

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("rotated_out_token", func(t *testing.T) {
		user := testUser()
		refreshToken, err := middleware.GenerateRefreshToken(user)
		if err != nil {
			t.Fatalf("failed to generate refresh token: %v", err)
		}

		handler := NewUserHandler(&mockUserService{
			getRefreshTokenHashFn: func(userID string) (string, error) {
				return "some-other-hash", nil
			},
		})
		r := setupUserRouter(handler)

		rec := doRequest(r, http.MethodPost, "/users/refreshToken", "",
			&http.Cookie{Name: "refreshToken", Value: refreshToken})

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("access_token_in_cookie", func(t *testing.T) {
		accessToken, err := middleware.GenerateAccessToken(testUser())
		if err != nil {
			t.Fatalf("failed to generate access token: %v", err)
		}

		handler := NewUserHandler(&mockUserService{})
		r := setupUserRouter(handler)

		rec := doRequest(r, http.MethodPost, "/users/refreshToken", "",
			&http.Cookie{Name: "refreshToken", Value: accessToken})

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})
}

func TestLogoutHandler(t *testing.T) {
	t.Run("clears_token_and_cookie", func(t *testing.T) {
		cleared := ""
		handler := NewUserHandler(&mockUserService{
			clearRefreshTokenHashFn: func(tokenHash string) error {
				cleared = tokenHash
				return nil
			},
		})
		r := setupUserRouter(handler)

		rec := doRequest(r, http.MethodPost, "/users/logout", "",
			&http.Cookie{Name: "refreshToken", Value: "some-token"})

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
		if cleared != middleware.HashToken("some-token") {
			t.Errorf("expected the stored hash to be cleared, got %q", cleared)
		}

		var refresh *http.Cookie
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == "refreshToken" {
				refresh = cookie
			}
		}
		if refresh == nil || refresh.MaxAge >= 0 {
			t.Error("expected the refreshToken cookie to be expired")
		}
	})

	t.Run("no_cookie_is_fine", func(t *testing.T) {
		handler := NewUserHandler(&mockUserService{})
		r := setupUserRouter(handler)

		rec := doRequest(r, http.MethodPost, "/users/logout", "")

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", rec.Code)
		}
	})
}
