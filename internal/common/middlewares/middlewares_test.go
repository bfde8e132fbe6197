package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bagaswib/absensi-backend/pkg/utils"
)

const testSecret = "rahasia-jwt-untuk-test-saja"

func signToken(t *testing.T, id int, username, role string, exp time.Time) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(id, username, role, exp)
	if err != nil {
		t.Fatalf("GenerateJWTToken() error = %v", err)
	}
	return token
}

func runGuarded(t *testing.T, authHeader string, mws ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	handler := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{"status": "success"})
	}
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler(c); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	return rec
}

func TestJWTMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	valid := signToken(t, 1, "budi", "karyawan", time.Now().Add(3*time.Hour))
	expired := signToken(t, 1, "budi", "karyawan", time.Now().Add(-time.Minute))

	tests := []struct {
		name       string
		authHeader string
		wantCode   int
	}{
		{"missing header", "", http.StatusForbidden},
		{"no bearer prefix", valid, http.StatusForbidden},
		{"wrong scheme", "Basic " + valid, http.StatusForbidden},
		{"invalid token", "Bearer bukan.token.jwt", http.StatusUnauthorized},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized},
		{"valid token", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runGuarded(t, tt.authHeader, JWTMiddleware())
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d (body: %s)", rec.Code, tt.wantCode, rec.Body.String())
			}
		})
	}
}

func TestJWTMiddleware_StoresClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	token := signToken(t, 9, "siti", "siswa", time.Now().Add(time.Hour))

	e := echo.New()
	var got *utils.Claims
	handler := JWTMiddleware()(func(c echo.Context) error {
		got, _ = c.Get(string(ContextKeyClaims)).(*utils.Claims)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	if got == nil {
		t.Fatal("claims were not stored in context")
	}
	if got.ID != 9 || got.Username != "siti" || got.Role != "siswa" {
		t.Errorf("claims = {%d %s %s}, want {9 siti siswa}", got.ID, got.Username, got.Role)
	}
}

func TestRequireKaryawan(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	tests := []struct {
		name     string
		role     string
		wantCode int
	}{
		{"karyawan allowed", "karyawan", http.StatusOK},
		{"siswa rejected", "siswa", http.StatusForbidden},
		{"other role rejected", "admin", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := signToken(t, 1, "budi", tt.role, time.Now().Add(time.Hour))
			rec := runGuarded(t, "Bearer "+token, JWTMiddleware(), RequireKaryawan())
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d (body: %s)", rec.Code, tt.wantCode, rec.Body.String())
			}
		})
	}
}

func TestRequireKaryawan_WithoutClaims(t *testing.T) {
	// RequireKaryawan dipanggil tanpa JWTMiddleware di depan.
	rec := runGuarded(t, "", RequireKaryawan())
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}
