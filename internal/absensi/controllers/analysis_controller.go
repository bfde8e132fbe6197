package controllers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bagaswib/absensi-backend/internal/absensi/services"
)

type AnalysisController struct {
	Service *services.AnalysisService
}

func NewAnalysisController(service *services.AnalysisService) *AnalysisController {
	return &AnalysisController{Service: service}
}

// GetSummary mengembalikan rekap kehadiran bulanan satu user.
func (ac *AnalysisController) GetSummary(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  "error",
			"message": "Parameter user_id tidak valid.",
		})
	}

	month := c.QueryParam("month")
	year := c.QueryParam("year")
	if month == "" || year == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  "error",
			"message": "Month and year are required in query parameters.",
		})
	}

	summary, err := ac.Service.GetMonthlySummary(userID, month, year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  "error",
				"message": "Tidak ada data kehadiran.",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Gagal mengambil rekap kehadiran.",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"user_id":            userID,
			"month":              fmt.Sprintf("%s-%s", month, year),
			"attendance_summary": summary,
		},
	})
}

type AnalysisRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	GroupBy   string `json:"group_by"`
}

// GetAnalysis mengembalikan analisis kehadiran per grup (role) dalam rentang tanggal.
func (ac *AnalysisController) GetAnalysis(c echo.Context) error {
	var req AnalysisRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  "error",
			"message": "Invalid request payload: " + err.Error(),
		})
	}

	if req.StartDate == "" || req.EndDate == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  "error",
			"message": "Parameter start_date dan end_date diperlukan.",
		})
	}

	if req.GroupBy != "siswa" && req.GroupBy != "karyawan" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  "error",
			"message": "Parameter group_by tidak valid. Gunakan 'siswa' atau 'karyawan'.",
		})
	}

	rows, err := ac.Service.GetAnalysisRows(req.StartDate, req.EndDate, req.GroupBy)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  "error",
			"message": "Terjadi kesalahan pada server.",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "success",
		"data": map[string]interface{}{
			"analysis_period": map[string]interface{}{
				"start_date": req.StartDate,
				"end_date":   req.EndDate,
			},
			"grouped_analysis": services.BuildGroupedAnalysis(rows),
		},
	})
}
