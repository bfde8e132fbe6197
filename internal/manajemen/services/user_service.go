package services

import (
	"database/sql"

	"golang.org/x/crypto/bcrypt"

	"github.com/bagaswib/absensi-backend/internal/manajemen/models"
)

type UserService struct {
	DB *sql.DB
}

func NewUserService(db *sql.DB) *UserService {
	return &UserService{DB: db}
}

// GetUserByID mengambil satu user tanpa kolom password.
// Mengembalikan sql.ErrNoRows jika id tidak ditemukan.
func (s *UserService) GetUserByID(id int) (*models.User, error) {
	var u models.User
	query := "SELECT id, name, username, role FROM users WHERE id = ?"
	err := s.DB.QueryRow(query, id).Scan(&u.ID, &u.Name, &u.Username, &u.Role)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser menyimpan user baru dengan password yang sudah di-hash bcrypt,
// lalu mengembalikan id hasil insert.
func (s *UserService) CreateUser(username, name, email, password, role string) (int, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	query := "INSERT INTO users (username, name, email, password, role) VALUES (?, ?, ?, ?, ?)"
	res, err := s.DB.Exec(query, username, name, email, string(hashed), role)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// UpdateUser mengubah name, email, dan role berdasarkan id.
// RowsAffected tidak dicek: MySQL menghitung baris yang berubah, bukan yang
// cocok, sehingga update dengan nilai sama akan salah terbaca sebagai 404.
func (s *UserService) UpdateUser(id int, name, email, role string) error {
	query := "UPDATE users SET name = ?, email = ?, role = ? WHERE id = ?"
	_, err := s.DB.Exec(query, name, email, role, id)
	return err
}

// DeleteUser menghapus user berdasarkan id.
// Mengembalikan sql.ErrNoRows jika tidak ada baris yang terhapus.
func (s *UserService) DeleteUser(id int) error {
	res, err := s.DB.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
