package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bagaswib/absensi-backend/internal/absensi/services"
	"github.com/bagaswib/absensi-backend/ws"
)

type AttendanceController struct {
	Service *services.AttendanceService
}

func NewAttendanceController(service *services.AttendanceService) *AttendanceController {
	return &AttendanceController{Service: service}
}

type RecordAttendanceRequest struct {
	UserID         int    `json:"user_id"`
	AttendanceDate string `json:"attendance_date"`
	AttendanceTime string `json:"attendance_time"`
	Status         string `json:"status"`
}

// RecordAttendance mencatat satu kehadiran dan menyiarkannya ke dashboard via websocket.
func (ac *AttendanceController) RecordAttendance(c echo.Context) error {
	var req RecordAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  "error",
			"message": "Invalid request payload: " + err.Error(),
		})
	}

	if req.UserID == 0 || req.AttendanceDate == "" || req.AttendanceTime == "" || req.Status == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  "error",
			"message": "All fields are required",
		})
	}

	id, err := ac.Service.RecordAttendance(req.UserID, req.AttendanceDate, req.AttendanceTime, req.Status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Gagal mencatat kehadiran: " + err.Error(),
		})
	}

	// Broadcast ke client dashboard yang terhubung
	messageJSON, err := json.Marshal(map[string]interface{}{
		"type": "attendance_recorded",
		"data": map[string]interface{}{
			"id":              id,
			"user_id":         req.UserID,
			"attendance_date": req.AttendanceDate,
			"attendance_time": req.AttendanceTime,
			"status":          req.Status,
		},
	})
	if err == nil {
		ws.HubInstance.Broadcast <- messageJSON
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"status":  "success",
		"message": "Attendance recorded successfully",
	})
}

// GetHistory mengembalikan seluruh riwayat kehadiran satu user, terbaru lebih dulu.
func (ac *AttendanceController) GetHistory(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  "error",
			"message": "Parameter user_id tidak valid.",
		})
	}

	records, err := ac.Service.GetHistoryByUser(userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Gagal mengambil riwayat kehadiran: " + err.Error(),
		})
	}

	if len(records) == 0 {
		return c.JSON(http.StatusNotFound, map[string]interface{}{
			"status":  "error",
			"message": "No attendance history found for this user.",
		})
	}

	history := make([]map[string]interface{}, 0, len(records))
	for _, r := range records {
		history = append(history, map[string]interface{}{
			"id":              r.ID,
			"attendance_date": r.AttendanceDate,
			"attendance_time": r.AttendanceTime,
			"status":          r.Status,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "success",
		"data":   history,
	})
}
