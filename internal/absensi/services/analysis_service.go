package services

import (
	"database/sql"
	"log"
	"strings"

	"github.com/bagaswib/absensi-backend/internal/absensi/models"
)

type AnalysisService struct {
	DB *sql.DB
}

func NewAnalysisService(db *sql.DB) *AnalysisService {
	return &AnalysisService{DB: db}
}

// GetMonthlySummary menghitung rekap kehadiran satu user untuk bulan/tahun tertentu.
// Mengembalikan sql.ErrNoRows jika user tidak punya record pada periode itu.
// TODO: hitung izin setelah status 'izin' ditambahkan ke enum kolom attendance.status;
// untuk sekarang field izin selalu 0.
func (s *AnalysisService) GetMonthlySummary(userID int, month, year string) (*models.AttendanceSummary, error) {
	query := `SELECT
			SUM(CASE WHEN a.status = 'present' THEN 1 ELSE 0 END) AS hadir,
			SUM(CASE WHEN a.status = 'sick' THEN 1 ELSE 0 END) AS sakit,
			SUM(CASE WHEN a.status = 'absent' THEN 1 ELSE 0 END) AS alpa
		FROM users u
		LEFT JOIN attendance a ON u.id = a.user_id
		WHERE u.id = ? AND MONTH(a.attendance_date) = ? AND YEAR(a.attendance_date) = ?
		GROUP BY u.id`

	var sum models.AttendanceSummary
	err := s.DB.QueryRow(query, userID, month, year).Scan(&sum.Hadir, &sum.Sakit, &sum.Alpa)
	if err != nil {
		return nil, err
	}
	return &sum, nil
}

// GetAnalysisRows mengambil jumlah kehadiran per (role, status) dalam rentang tanggal
// untuk satu role. Agregasi lanjutan dilakukan di BuildGroupedAnalysis.
func (s *AnalysisService) GetAnalysisRows(startDate, endDate, groupBy string) ([]models.AnalysisRow, error) {
	query := `SELECT
			users.role AS group_key,
			attendance.status AS status,
			COUNT(attendance.status) AS count,
			COUNT(DISTINCT users.id) AS total_users
		FROM attendance
		INNER JOIN users ON attendance.user_id = users.id
		WHERE attendance.attendance_date BETWEEN ? AND ? AND users.role = ?
		GROUP BY users.role, attendance.status`

	rows, err := s.DB.Query(query, startDate, endDate, groupBy)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.AnalysisRow
	for rows.Next() {
		var r models.AnalysisRow
		if err := rows.Scan(&r.GroupKey, &r.Status, &r.Count, &r.TotalUsers); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// BuildGroupedAnalysis mengelompokkan baris hasil query per grup (role) ke dalam
// empat bucket status tetap, lalu menghitung persentase tiap bucket terhadap
// total grup. Status di luar empat nilai yang dikenal dicatat ke log dan dilewati.
func BuildGroupedAnalysis(analysisRows []models.AnalysisRow) []models.GroupAnalysis {
	grouped := make(map[string]*models.GroupAnalysis)
	var order []string

	for _, row := range analysisRows {
		group := row.GroupKey
		if group == "" {
			group = "Unspecified"
		}

		ga, ok := grouped[group]
		if !ok {
			ga = &models.GroupAnalysis{
				Group:      group,
				TotalUsers: row.TotalUsers,
			}
			grouped[group] = ga
			order = append(order, group)
		}

		switch strings.ToLower(row.Status) {
		case "present":
			ga.TotalAttendance.Present += row.Count
		case "absent":
			ga.TotalAttendance.Absent += row.Count
		case "sick":
			ga.TotalAttendance.Sick += row.Count
		case "alpa":
			ga.TotalAttendance.Alpa += row.Count
		default:
			log.Printf("analysis: status tidak dikenal '%s' pada grup %s, dilewati", row.Status, group)
		}
	}

	result := make([]models.GroupAnalysis, 0, len(order))
	for _, group := range order {
		ga := grouped[group]
		total := ga.TotalAttendance.Present + ga.TotalAttendance.Absent +
			ga.TotalAttendance.Sick + ga.TotalAttendance.Alpa
		if total > 0 {
			ga.AttendanceRate.PresentPercentage = float64(ga.TotalAttendance.Present) / float64(total) * 100
			ga.AttendanceRate.AbsentPercentage = float64(ga.TotalAttendance.Absent) / float64(total) * 100
			ga.AttendanceRate.SickPercentage = float64(ga.TotalAttendance.Sick) / float64(total) * 100
			ga.AttendanceRate.AlpaPercentage = float64(ga.TotalAttendance.Alpa) / float64(total) * 100
		}
		result = append(result, *ga)
	}
	return result
}
