package services

import (
	"database/sql"

	"github.com/bagaswib/absensi-backend/internal/absensi/models"
)

type AttendanceService struct {
	DB *sql.DB
}

func NewAttendanceService(db *sql.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

// RecordAttendance menyimpan satu record kehadiran dan mengembalikan id hasil insert.
// Tidak ada pengecekan duplikat user/tanggal; double-submit dimungkinkan.
func (s *AttendanceService) RecordAttendance(userID int, date, timeStr, status string) (int, error) {
	query := "INSERT INTO attendance (user_id, attendance_date, attendance_time, status) VALUES (?, ?, ?, ?)"
	res, err := s.DB.Exec(query, userID, date, timeStr, status)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// GetHistoryByUser mengambil seluruh record kehadiran satu user,
// diurutkan dari tanggal terbaru.
func (s *AttendanceService) GetHistoryByUser(userID int) ([]models.AttendanceRecord, error) {
	query := `SELECT id, DATE_FORMAT(attendance_date, '%Y-%m-%d') AS attendance_date, attendance_time, status
		FROM attendance
		WHERE user_id = ?
		ORDER BY attendance_date DESC`
	rows, err := s.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		var r models.AttendanceRecord
		if err := rows.Scan(&r.ID, &r.AttendanceDate, &r.AttendanceTime, &r.Status); err != nil {
			return nil, err
		}
		r.UserID = userID
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
