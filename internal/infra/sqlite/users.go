package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/dayflow-app/dayflow/internal/domain"
)

// ─── User Repository ────────────────────────────────────────────────────────

// CreateUser inserts a new account and returns it with its assigned id.
// A duplicate email yields domain.ErrEmailTaken.
func (d *DB) CreateUser(ctx context.Context, username, email, passwordHash string) (*domain.User, error) {
	now := time.Now()
	res, err := d.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		username, email, passwordHash, now.Unix(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE") {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Unix(now.Unix(), 0),
	}, nil
}

// UserByEmail retrieves an account by email address.
func (d *DB) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE email = ?`, email)
	return scanUser(row)
}

// UserByID retrieves an account by id.
func (d *DB) UserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, created_at FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func scanUser(s scanner) (*domain.User, error) {
	var u domain.User
	var createdAt int64
	err := s.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &createdAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt = time.Unix(createdAt, 0)
	return &u, nil
}

// ─── Sessions ───────────────────────────────────────────────────────────────

// InsertSession stores a login session.
func (d *DB) InsertSession(ctx context.Context, s domain.Session) error {
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO sessions (token, user_id, created_at, expires_at) VALUES (?, ?, ?, ?)`,
		s.Token, s.UserID, s.CreatedAt.Unix(), s.ExpiresAt.Unix(),
	)
	return err
}

// SessionByToken retrieves a session; unknown tokens yield ErrSessionExpired.
func (d *DB) SessionByToken(ctx context.Context, token string) (*domain.Session, error) {
	var s domain.Session
	var createdAt, expiresAt int64
	err := d.db.QueryRowContext(ctx,
		`SELECT token, user_id, created_at, expires_at FROM sessions WHERE token = ?`, token,
	).Scan(&s.Token, &s.UserID, &createdAt, &expiresAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrSessionExpired
	}
	if err != nil {
		return nil, err
	}
	s.CreatedAt = time.Unix(createdAt, 0)
	s.ExpiresAt = time.Unix(expiresAt, 0)
	return &s, nil
}

// PruneSessions removes sessions expired before the given time and returns
// how many were deleted.
func (d *DB) PruneSessions(ctx context.Context, before time.Time) (int64, error) {
	res, err := d.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at < ?`, before.Unix())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
