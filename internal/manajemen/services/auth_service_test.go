package services

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/bagaswib/absensi-backend/internal/manajemen/models"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("bcrypt.GenerateFromPassword() error = %v", err)
	}
	return string(hash)
}

const findUserQuery = "SELECT id, name, username, password, role FROM users WHERE username = ?"

func TestFindUserByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	rows := sqlmock.NewRows([]string{"id", "name", "username", "password", "role"}).
		AddRow(1, "Budi Santoso", "budi", "hash", "karyawan")
	mock.ExpectQuery(regexp.QuoteMeta(findUserQuery)).WithArgs("budi").WillReturnRows(rows)

	u, err := svc.FindUserByUsername("budi")
	if err != nil {
		t.Fatalf("FindUserByUsername() error = %v", err)
	}
	if u.ID != 1 || u.Username != "budi" || u.Role != "karyawan" {
		t.Errorf("user = %+v, want id=1 username=budi role=karyawan", u)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery(regexp.QuoteMeta(findUserQuery)).WithArgs("ghost").WillReturnError(sql.ErrNoRows)

	if _, err := svc.FindUserByUsername("ghost"); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("FindUserByUsername() error = %v, want sql.ErrNoRows", err)
	}
}

func TestVerifyPassword(t *testing.T) {
	svc := NewAuthService(nil)
	u := &models.User{Password: hashPassword(t, "rahasia123")}

	if err := svc.VerifyPassword(u, "rahasia123"); err != nil {
		t.Errorf("VerifyPassword() error = %v, want nil", err)
	}

	err := svc.VerifyPassword(u, "salah")
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Errorf("VerifyPassword() error = %v, want ErrMismatchedHashAndPassword", err)
	}
}
