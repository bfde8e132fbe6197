package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"

	"github.com/bagaswib/absensi-backend/internal/absensi/services"
)

func TestRecordAttendance_Validation(t *testing.T) {
	db, mock := newMockDB(t)
	ac := NewAttendanceController(services.NewAttendanceService(db))

	tests := []struct {
		name string
		body string
	}{
		{"missing user_id", `{"attendance_date":"2025-02-14","attendance_time":"07:45:00","status":"present"}`},
		{"missing date", `{"user_id":5,"attendance_time":"07:45:00","status":"present"}`},
		{"missing time", `{"user_id":5,"attendance_date":"2025-02-14","status":"present"}`},
		{"missing status", `{"user_id":5,"attendance_date":"2025-02-14","attendance_time":"07:45:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, ac.RecordAttendance, http.MethodPost, "/api/attendance", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("store was accessed: %v", err)
	}
}

func TestRecordAttendance_Success(t *testing.T) {
	db, mock := newMockDB(t)
	ac := NewAttendanceController(services.NewAttendanceService(db))

	mock.ExpectExec("INSERT INTO attendance").
		WithArgs(5, "2025-02-14", "07:45:00", "present").
		WillReturnResult(sqlmock.NewResult(11, 1))

	rec := doJSON(t, ac.RecordAttendance, http.MethodPost, "/api/attendance",
		`{"user_id":5,"attendance_date":"2025-02-14","attendance_time":"07:45:00","status":"present"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body: %s)", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Attendance recorded successfully") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func doHistory(t *testing.T, ac *AttendanceController, userID string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/attendance/history/"+userID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("user_id")
	c.SetParamValues(userID)
	if err := ac.GetHistory(c); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	return rec
}

func TestGetHistory_Success(t *testing.T) {
	db, mock := newMockDB(t)
	ac := NewAttendanceController(services.NewAttendanceService(db))

	rows := sqlmock.NewRows([]string{"id", "attendance_date", "attendance_time", "status"}).
		AddRow(2, "2025-02-14", "07:45:00", "present").
		AddRow(1, "2025-02-13", "08:02:00", "sick")
	mock.ExpectQuery("SELECT").WithArgs(5).WillReturnRows(rows)

	rec := doHistory(t, ac, "5")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	body := decodeBody(t, rec)
	data, _ := body["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("data len = %d, want 2", len(data))
	}
	first, _ := data[0].(map[string]interface{})
	if first["id"] != float64(2) || first["attendance_date"] != "2025-02-14" || first["status"] != "present" {
		t.Errorf("data[0] = %v", first)
	}
}

func TestGetHistory_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	ac := NewAttendanceController(services.NewAttendanceService(db))

	rows := sqlmock.NewRows([]string{"id", "attendance_date", "attendance_time", "status"})
	mock.ExpectQuery("SELECT").WithArgs(99).WillReturnRows(rows)

	rec := doHistory(t, ac, "99")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
