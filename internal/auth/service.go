package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ram-fashion/storefront/internal/domain"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Notifier is the slice of the dispatcher the auth service needs: signup
// emits a user_signup event, fire-and-forget.
type Notifier interface {
	Add(ctx context.Context, n domain.Notification) (domain.Notification, bool, error)
}

type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// Validate returns field-level errors; empty map means the input is complete.
func (in *SignupInput) Validate() map[string]string {
	errs := make(map[string]string)
	if in.Email == "" {
		errs["email"] = "Email is required"
	}
	if in.Password == "" {
		errs["password"] = "Password is required"
	}
	if in.FirstName == "" {
		errs["firstName"] = "First name is required"
	}
	if in.LastName == "" {
		errs["lastName"] = "Last name is required"
	}
	return errs
}

type Service struct {
	repo     UserRepository
	hasher   PasswordHasher
	tokens   *TokenManager
	notifier Notifier
	logger   *zap.Logger
}

func NewService(repo UserRepository, hasher PasswordHasher, tokens *TokenManager, notifier Notifier, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		notifier: notifier,
		logger:   logger,
	}
}

// Login checks credentials and issues a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

// Signup registers a new account and emits the user_signup notification. The
// notification is best-effort and never fails the signup.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*User, string, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	exists, err := s.repo.Exists(ctx, in.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, "", ErrEmailTaken
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		CreatedAt:    time.Now(),
		PasswordHash: hash,
	}
	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, "", err
	}

	if _, _, err := s.notifier.Add(ctx, domain.Notification{
		Type:      domain.NotificationUserSignup,
		Message:   fmt.Sprintf("New user registered: %s", user.Email),
		UserEmail: user.Email,
	}); err != nil {
		s.logger.Warn("failed to emit signup notification",
			zap.String("email", user.Email), zap.Error(err))
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}
