package middlewares

import (
	"net/http"

	"github.com/bagaswib/absensi-backend/pkg/utils"
	"github.com/labstack/echo/v4"
)

// RequireKaryawan memeriksa apakah klaim JWT memiliki role karyawan.
// Dipasang setelah JWTMiddleware pada rute yang khusus karyawan.
func RequireKaryawan() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawClaims := c.Get(string(ContextKeyClaims))
			claims, ok := rawClaims.(*utils.Claims)
			if !ok || claims == nil {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status":  "error",
					"message": "Klaim JWT tidak ditemukan.",
				})
			}

			if claims.Role != "karyawan" {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"status":  "error",
					"message": "Akses ditolak! Hanya karyawan yang dapat mengakses rute ini.",
				})
			}

			return next(c)
		}
	}
}
