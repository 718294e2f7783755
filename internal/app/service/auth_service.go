package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/jongwon/todo-app/internal/core/domain"
	"github.com/jongwon/todo-app/internal/core/ports"
)

const sessionTokenBytes = 32

type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionRepository
	sessionTTL time.Duration
	bcryptCost int
	opts       options
}

func NewAuthService(
	users ports.UserRepository,
	sessions ports.SessionRepository,
	sessionTTL time.Duration,
	bcryptCost int,
	opts ...Option,
) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
		opts:       buildOptions(opts),
	}
}

// Login checks the credentials and opens a session. The returned token is
// the only copy of the secret; the store keeps its hash.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.Session, domain.User, error) {
	user, err := s.users.FindUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.Session{}, domain.User{}, domain.ErrInvalidCredentials
		}
		return "", domain.Session{}, domain.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.Session{}, domain.User{}, domain.ErrInvalidCredentials
	}

	token, err := newSessionToken()
	if err != nil {
		return "", domain.Session{}, domain.User{}, err
	}

	now := s.opts.now().UTC()
	session := domain.Session{
		ID:        HashSessionToken(token),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return "", domain.Session{}, domain.User{}, err
	}

	return token, session, user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	err := s.sessions.DeleteSession(ctx, HashSessionToken(token))
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil
	}
	return err
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.CallerIdentity, error) {
	if strings.TrimSpace(token) == "" {
		return domain.CallerIdentity{}, domain.ErrUnauthenticated
	}

	session, err := s.sessions.FindSession(ctx, HashSessionToken(token))
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.CallerIdentity{}, domain.ErrUnauthenticated
		}
		return domain.CallerIdentity{}, err
	}

	if session.Expired(s.opts.now()) {
		if err := s.sessions.DeleteSession(ctx, session.ID); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
			zap.L().Warn("failed to delete expired session", zap.String("user_id", session.UserID), zap.Error(err))
		}
		return domain.CallerIdentity{}, domain.ErrUnauthenticated
	}

	return domain.CallerIdentity{UserID: session.UserID}, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, caller domain.CallerIdentity) (domain.User, error) {
	if err := caller.Require(); err != nil {
		return domain.User{}, err
	}
	user, err := s.users.FindUserByID(ctx, caller.UserID)
	if errors.Is(err, domain.ErrUserNotFound) {
		// The session outlived its user.
		return domain.User{}, domain.ErrUnauthenticated
	}
	return user, err
}

func (s *AuthService) RegisterUser(ctx context.Context, in domain.RegisterUserInput) (domain.User, error) {
	if err := in.Validate(); err != nil {
		return domain.User{}, err
	}

	email := domain.NormalizeEmail(in.Email)
	_, err := s.users.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.User{}, domain.NewValidationError("email", domain.MsgEmailTaken)
	case !errors.Is(err, domain.ErrUserNotFound):
		return domain.User{}, err
	}

	hash, err := HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return domain.User{}, err
	}

	now := s.opts.now().UTC()
	user := domain.User{
		ID:           s.opts.newID(),
		Email:        email,
		Name:         in.Name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *AuthService) PruneSessions(ctx context.Context, now time.Time) (int64, error) {
	return s.sessions.DeleteExpiredSessions(ctx, now.UTC())
}

// HashPassword hashes a password with bcrypt at the given cost.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// HashSessionToken derives the stored session id from a raw token.
func HashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

var _ ports.AuthService = (*AuthService)(nil)
