// Package account implements registration, login, and sessions.
// Accounts are keyed by email; passwords are stored as bcrypt digests and a
// successful login issues a uuid session token with a 7-day expiry.
package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dayflow-app/dayflow/internal/domain"
	"github.com/dayflow-app/dayflow/internal/infra/metrics"
	"github.com/dayflow-app/dayflow/internal/infra/sqlite"
)

// SessionTTL is how long a login session stays valid.
const SessionTTL = 7 * 24 * time.Hour

const bcryptCost = 10

// Service manages accounts and sessions.
type Service struct {
	db  *sqlite.DB
	now func() time.Time
}

// NewService creates an account service. Pass nil for time.Now.
func NewService(db *sqlite.DB, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{db: db, now: now}
}

// Register creates a new account. The email must be unused.
func (s *Service) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", domain.ErrInvalidArgument)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email %q", domain.ErrInvalidArgument, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.db.CreateUser(ctx, username, email, string(hash))
	if err != nil {
		return nil, err
	}

	metrics.UsersRegistered.Inc()
	return u, nil
}

// Login checks the credentials and issues a session. A wrong email and a
// wrong password both return ErrInvalidCredentials; which one failed is
// never revealed.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	u, err := s.db.UserByEmail(ctx, email)
	if err == domain.ErrUserNotFound {
		metrics.Logins.WithLabelValues("denied").Inc()
		return nil, nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		metrics.Logins.WithLabelValues("denied").Inc()
		return nil, nil, domain.ErrInvalidCredentials
	}

	now := s.now()
	sess := domain.Session{
		Token:     uuid.NewString(),
		UserID:    u.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}
	if err := s.db.InsertSession(ctx, sess); err != nil {
		return nil, nil, fmt.Errorf("store session: %w", err)
	}

	metrics.Logins.WithLabelValues("ok").Inc()
	return u, &sess, nil
}

// Get returns the public profile for a user id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.db.UserByID(ctx, id)
}

// ValidateSession resolves a token to its user id, rejecting unknown or
// expired sessions.
func (s *Service) ValidateSession(ctx context.Context, token string) (int64, error) {
	sess, err := s.db.SessionByToken(ctx, token)
	if err != nil {
		return 0, err
	}
	if sess.Expired(s.now()) {
		return 0, domain.ErrSessionExpired
	}
	return sess.UserID, nil
}

// PruneSessions drops sessions that expired before now. Called periodically
// by the daemon.
func (s *Service) PruneSessions(ctx context.Context) (int64, error) {
	return s.db.PruneSessions(ctx, s.now())
}
