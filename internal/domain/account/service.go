package account

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinicdesk/clinicdesk/internal/platform/apperror"
	"github.com/clinicdesk/clinicdesk/internal/platform/db"
	"github.com/clinicdesk/clinicdesk/internal/platform/session"
	"github.com/clinicdesk/clinicdesk/internal/platform/validation"
)

type Service struct {
	users    Repository
	sessions session.Store
	secret   []byte
	ttl      time.Duration
}

func NewService(users Repository, sessions session.Store, secret []byte, ttl time.Duration) *Service {
	return &Service{users: users, sessions: sessions, secret: secret, ttl: ttl}
}

// AuthResult is what signup and login hand back: the user, the bearer token
// and when it stops working.
type AuthResult struct {
	User      *User     `json:"user"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Persistence(err)
	}

	u := &User{
		Name:         in.Name,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
	}
	if err := s.users.Insert(ctx, u); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, apperror.Conflict("email already registered")
		}
		return nil, apperror.Persistence(err)
	}

	return s.startSession(ctx, u)
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if u == nil {
		return nil, apperror.InvalidCredentials()
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		return nil, apperror.InvalidCredentials()
	}

	return s.startSession(ctx, u)
}

// Logout revokes the session server-side; the token is dead immediately even
// though its signature stays valid until expiry.
func (s *Service) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return apperror.Persistence(err)
	}
	return nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	if u == nil {
		return nil, apperror.Unauthenticated()
	}
	return u, nil
}

func (s *Service) startSession(ctx context.Context, u *User) (*AuthResult, error) {
	sess := session.New(u.ID, u.ClinicID, s.ttl)
	if err := s.sessions.Put(ctx, sess); err != nil {
		return nil, apperror.Persistence(err)
	}
	token, err := session.IssueToken(s.secret, sess)
	if err != nil {
		return nil, apperror.Persistence(err)
	}
	return &AuthResult{User: u, Token: token, ExpiresAt: sess.ExpiresAt}, nil
}
