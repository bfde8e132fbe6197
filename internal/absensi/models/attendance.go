package models

// AttendanceRecord mewakili satu baris tabel attendance.
// Record bersifat append-only: tidak ada endpoint update/delete.
type AttendanceRecord struct {
	ID             int    `json:"id" db:"id"`
	UserID         int    `json:"user_id" db:"user_id"`
	AttendanceDate string `json:"attendance_date" db:"attendance_date"`
	AttendanceTime string `json:"attendance_time" db:"attendance_time"`
	Status         string `json:"status" db:"status"`
}
