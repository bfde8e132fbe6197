package services

import (
	"database/sql"

	"golang.org/x/crypto/bcrypt"

	"github.com/bagaswib/absensi-backend/internal/manajemen/models"
)

type AuthService struct {
	DB *sql.DB
}

func NewAuthService(db *sql.DB) *AuthService {
	return &AuthService{DB: db}
}

// FindUserByUsername mencari user berdasarkan username persis.
// Mengembalikan sql.ErrNoRows jika username tidak terdaftar.
func (s *AuthService) FindUserByUsername(username string) (*models.User, error) {
	var u models.User
	query := "SELECT id, name, username, password, role FROM users WHERE username = ?"
	err := s.DB.QueryRow(query, username).Scan(&u.ID, &u.Name, &u.Username, &u.Password, &u.Role)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// VerifyPassword membandingkan password plaintext dengan hash bcrypt yang tersimpan.
func (s *AuthService) VerifyPassword(u *models.User, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}
