package routes

import (
	"database/sql"

	"github.com/labstack/echo/v4"

	absensiControllers "github.com/bagaswib/absensi-backend/internal/absensi/controllers"
	absensiServices "github.com/bagaswib/absensi-backend/internal/absensi/services"
	"github.com/bagaswib/absensi-backend/internal/common/middlewares"
	manajemenControllers "github.com/bagaswib/absensi-backend/internal/manajemen/controllers"
	manajemenServices "github.com/bagaswib/absensi-backend/internal/manajemen/services"
	"github.com/bagaswib/absensi-backend/ws"
)

// Init menginisialisasi semua routes menggunakan Echo framework
func Init(e *echo.Echo, db *sql.DB) {
	// Inisialisasi service
	authService := manajemenServices.NewAuthService(db)
	userService := manajemenServices.NewUserService(db)
	attendanceService := absensiServices.NewAttendanceService(db)
	analysisService := absensiServices.NewAnalysisService(db)

	// Inisialisasi controller dengan service yang sesuai
	authController := manajemenControllers.NewAuthController(authService)
	userController := manajemenControllers.NewUserController(userService)
	attendanceController := absensiControllers.NewAttendanceController(attendanceService)
	analysisController := absensiControllers.NewAnalysisController(analysisService)

	// Grup API utama
	api := e.Group("/api")

	// **Grup Auth**
	auth := api.Group("/auth")
	auth.POST("/login", authController.Login) // Tidak pakai JWT

	// **Grup Users** (khusus karyawan)
	users := api.Group("/users", middlewares.JWTMiddleware(), middlewares.RequireKaryawan())
	users.GET("/:id", userController.GetUser)
	users.POST("", userController.CreateUser)
	users.PUT("/:id", userController.UpdateUser)
	users.DELETE("/:id", userController.DeleteUser)

	// **Grup Attendance**
	attendance := api.Group("/attendance")
	attendance.POST("", attendanceController.RecordAttendance) // Tidak pakai JWT: dipakai perangkat check-in
	attendance.GET("/history/:user_id", attendanceController.GetHistory, middlewares.JWTMiddleware())
	attendance.GET("/summary/:user_id", analysisController.GetSummary, middlewares.JWTMiddleware())
	attendance.POST("/analysis", analysisController.GetAnalysis, middlewares.JWTMiddleware())

	// Feed kehadiran real-time untuk dashboard
	e.GET("/ws/absensi", ws.ServeWS(ws.HubInstance))
}
