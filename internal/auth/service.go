// Package auth implements email/password accounts with opaque session tokens.
// Only the SHA-256 of a token is stored; the raw token travels in the sid
// cookie or an Authorization: Bearer header.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/akyairhashvil/momentum/internal/contract"
	"github.com/akyairhashvil/momentum/internal/database"
	"github.com/akyairhashvil/momentum/internal/models"
	"github.com/akyairhashvil/momentum/internal/util"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const (
	CookieName = "sid"
	tokenBytes = 32
	DefaultTTL = 7 * 24 * time.Hour
)

// Config controls session lifetime and cookie flags.
type Config struct {
	TTL           time.Duration
	SecureCookies bool
	PasswordCost  int
}

// Session is a freshly issued login.
type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      models.User `json:"user"`
}

type Service struct {
	users  database.UserRepository
	cfg    Config
	logger *zap.Logger
	now    func() time.Time

	dummyOnce sync.Once
	dummyHash []byte
}

func NewService(users database.UserRepository, cfg Config, logger *zap.Logger) *Service {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.PasswordCost == 0 {
		cfg.PasswordCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{users: users, cfg: cfg, logger: logger, now: time.Now}
}

// HashPassword returns the bcrypt hash of pass at the given cost.
func HashPassword(pass string, cost int) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(pass), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// NewToken returns 32 random bytes encoded as unpadded base64url.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Register creates an account and logs it in.
func (s *Service) Register(ctx context.Context, req contract.RegisterRequest) (Session, error) {
	user, err := s.CreateAccount(ctx, req)
	if err != nil {
		return Session{}, err
	}
	return s.issue(ctx, user)
}

// CreateAccount validates req and stores the user without starting a session.
func (s *Service) CreateAccount(ctx context.Context, req contract.RegisterRequest) (models.User, error) {
	if err := req.Validate(); err != nil {
		return models.User{}, err
	}
	hash, err := HashPassword(req.Password, s.cfg.PasswordCost)
	if err != nil {
		return models.User{}, err
	}
	user, err := s.users.CreateUser(ctx, database.NewUser{
		Email:        contract.NormalizeEmail(req.Email),
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	})
	if errors.Is(err, database.ErrDuplicate) {
		return models.User{}, &contract.ValidationError{Field: "email", Message: "email is already registered"}
	}
	if err != nil {
		return models.User{}, err
	}
	s.logger.Info("user registered", zap.String("user_id", user.ID))
	return user, nil
}

// Login checks credentials and issues a session. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req contract.LoginRequest) (Session, error) {
	if err := req.Validate(); err != nil {
		return Session{}, err
	}
	user, err := s.users.GetUserByEmail(ctx, contract.NormalizeEmail(req.Email))
	if errors.Is(err, database.ErrNotFound) {
		// Burn the same bcrypt time as a real comparison.
		_ = bcrypt.CompareHashAndPassword(s.dummy(), []byte(req.Password))
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return Session{}, ErrInvalidCredentials
	}
	return s.issue(ctx, user)
}

func (s *Service) dummy() []byte {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("momentum-dummy-password"), s.cfg.PasswordCost)
	})
	return s.dummyHash
}

func (s *Service) issue(ctx context.Context, user models.User) (Session, error) {
	token, err := NewToken()
	if err != nil {
		return Session{}, err
	}
	expires := s.now().Add(s.cfg.TTL)
	stored, err := s.users.CreateSession(ctx, util.HashToken(token), user.ID, expires)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: stored.ExpiresAt, User: user}, nil
}

// Authenticate resolves a raw token to its user.
func (s *Service) Authenticate(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrUnauthorized
	}
	user, err := s.users.GetSessionUser(ctx, util.HashToken(token))
	if errors.Is(err, database.ErrNotFound) {
		return models.User{}, ErrUnauthorized
	}
	return user, err
}

// Logout forgets the session. An empty or unknown token is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.users.DeleteSession(ctx, util.HashToken(token))
}

// PurgeExpired deletes stale sessions.
func (s *Service) PurgeExpired(ctx context.Context) (int64, error) {
	return s.users.DeleteExpiredSessions(ctx)
}
