package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"vehiclebooking/internal/db"
	apperrors "vehiclebooking/internal/errors"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(database *sql.DB) *UserRepository {
	return &UserRepository{DB: database}
}

const userColumns = `id, username, email, password_hash, first_name, last_name, phone, is_admin, created_at`

func scanUser(row *sql.Row) (*db.User, error) {
	var u db.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Phone, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(u *db.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, first_name, last_name, phone, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`
	err := r.DB.QueryRow(query, u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Phone, u.IsAdmin).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return apperrors.Conflict("username or email already registered")
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(id int) (*db.User, error) {
	u, err := scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user %d not found", id)
		}
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(email string) (*db.User, error) {
	u, err := scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepository) Count() (int, error) {
	var count int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}
