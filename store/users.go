package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"waterme/models"
)

const uniqueViolation = "23505"

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts a new account. The password must already be hashed; this
// layer never sees plaintext.
func (s *UserStore) Create(name, email, passwordHash string) (int, error) {
	var id int
	err := s.db.QueryRow(
		`INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id`,
		name, email, passwordHash,
	).Scan(&id)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("%w: insert user: %v", ErrUnavailable, err)
	}

	return id, nil
}

func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	var u models.User
	err := s.db.QueryRow(
		`SELECT id, name, password FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Name, &u.PasswordHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: select user: %v", ErrUnavailable, err)
	}

	u.Email = email
	return &u, nil
}
