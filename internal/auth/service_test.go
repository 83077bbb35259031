package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ram-fashion/storefront/internal/domain"
)

// MockNotifier implements Notifier for testing
type MockNotifier struct {
	added []domain.Notification
	err   error
}

func (m *MockNotifier) Add(_ context.Context, n domain.Notification) (domain.Notification, bool, error) {
	if m.err != nil {
		return domain.Notification{}, false, m.err
	}
	n.ID = "test-id"
	m.added = append(m.added, n)
	return n, false, nil
}

func newTestService(notifier *MockNotifier) *Service {
	return NewService(
		NewMemoryRepository(),
		NewBcryptHasher(),
		NewTokenManager("test-secret", time.Hour),
		notifier,
		zap.NewNop(),
	)
}

func demoSignup() SignupInput {
	return SignupInput{
		Email:     "Demo@RAM.com",
		Password:  "password123",
		FirstName: "Demo",
		LastName:  "User",
		Phone:     "+91 9876543210",
	}
}

func TestSignup_CreatesUserAndIssuesToken(t *testing.T) {
	notifier := &MockNotifier{}
	svc := newTestService(notifier)

	user, token, err := svc.Signup(context.Background(), demoSignup())
	require.NoError(t, err)

	assert.Equal(t, "demo@ram.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.NotEmpty(t, token)
	assert.NotEqual(t, "password123", user.PasswordHash)
}

func TestSignup_EmitsSignupNotification(t *testing.T) {
	notifier := &MockNotifier{}
	svc := newTestService(notifier)

	_, _, err := svc.Signup(context.Background(), demoSignup())
	require.NoError(t, err)

	require.Len(t, notifier.added, 1)
	assert.Equal(t, domain.NotificationUserSignup, notifier.added[0].Type)
	assert.Equal(t, "New user registered: demo@ram.com", notifier.added[0].Message)
	assert.Equal(t, "demo@ram.com", notifier.added[0].UserEmail)
}

func TestSignup_DuplicateEmailRejected(t *testing.T) {
	svc := newTestService(&MockNotifier{})
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, demoSignup())
	require.NoError(t, err)

	_, _, err = svc.Signup(ctx, demoSignup())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin_RoundTrip(t *testing.T) {
	svc := newTestService(&MockNotifier{})
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, demoSignup())
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "demo@ram.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "demo@ram.com", user.Email)

	claims, err := svc.tokens.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(&MockNotifier{})
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, demoSignup())
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "demo@ram.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(&MockNotifier{})

	_, _, err := svc.Login(context.Background(), "nobody@ram.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignupInputValidate(t *testing.T) {
	in := SignupInput{}
	errs := in.Validate()

	assert.Len(t, errs, 4)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}
