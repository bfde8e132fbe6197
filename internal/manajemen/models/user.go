package models

// User mewakili data pengguna dari tabel users.
// Password berisi hash bcrypt dan tidak pernah ikut diserialisasi ke response.
type User struct {
	ID       int    `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"`
	Role     string `json:"role" db:"role"`
}
