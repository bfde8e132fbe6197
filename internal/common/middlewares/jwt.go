package middlewares

import (
	"net/http"
	"strings"

	"github.com/bagaswib/absensi-backend/pkg/utils"
	"github.com/labstack/echo/v4"
)

// Key context untuk klaim JWT. Controller mengambil klaim lewat c.Get(string(ContextKeyClaims)).
type contextKey string

const ContextKeyClaims contextKey = "claims"

// JWTMiddleware memverifikasi header Authorization dan menyimpan klaim ke context.
// Token tidak ada: 403. Token ada tapi tidak valid atau kadaluarsa: 401.
func JWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"status":  "error",
					"message": "Token tidak ditemukan, akses ditolak!",
				})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"status":  "error",
					"message": "Format header Authorization tidak valid.",
				})
			}

			claims, err := utils.ValidateJWTToken(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  "error",
					"message": "Token tidak valid!",
				})
			}

			c.Set(string(ContextKeyClaims), claims)
			return next(c)
		}
	}
}
