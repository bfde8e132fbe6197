package models

// AttendanceSummary adalah rekap kehadiran bulanan satu user.
// Izin selalu 0 selama status 'izin' belum ada di data (lihat analysis_service).
type AttendanceSummary struct {
	Hadir int `json:"hadir"`
	Izin  int `json:"izin"`
	Sakit int `json:"sakit"`
	Alpa  int `json:"alpa"`
}

// AnalysisRow adalah satu baris hasil query group-by (role, status).
type AnalysisRow struct {
	GroupKey   string
	Status     string
	Count      int
	TotalUsers int
}

// AttendanceTotals memegang jumlah kehadiran per status untuk satu grup.
// Set status tetap: hanya empat nilai ini yang dihitung.
type AttendanceTotals struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Sick    int `json:"sick"`
	Alpa    int `json:"alpa"`
}

// AttendanceRate memegang persentase tiap status terhadap total grup.
type AttendanceRate struct {
	PresentPercentage float64 `json:"present_percentage"`
	AbsentPercentage  float64 `json:"absent_percentage"`
	SickPercentage    float64 `json:"sick_percentage"`
	AlpaPercentage    float64 `json:"alpa_percentage"`
}

// GroupAnalysis adalah hasil analisis untuk satu grup (role).
type GroupAnalysis struct {
	Group           string           `json:"group"`
	TotalUsers      int              `json:"total_users"`
	TotalAttendance AttendanceTotals `json:"total_attendance"`
	AttendanceRate  AttendanceRate   `json:"attendance_rate"`
}
