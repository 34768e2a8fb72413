package auth_test

import (
	"context"
	"sync"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/mock"

	"github.com/sakshisharma25/meetyfi-b/auth"
)

// MockUsers implements auth.Users for testing
type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *MockUsers) Insert(ctx context.Context, user *auth.User) (*auth.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *MockUsers) UpdateFields(ctx context.Context, email string, update auth.UserUpdate) (*auth.User, error) {
	args := m.Called(ctx, email, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

// MockCodes implements auth.CodeGenerator for testing
type MockCodes struct {
	mock.Mock
}

func (m *MockCodes) Generate() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

// MockTokens implements auth.TokenService for testing
type MockTokens struct {
	mock.Mock
}

func (m *MockTokens) Generate(subject string) (string, error) {
	args := m.Called(subject)
	return args.String(0), args.Error(1)
}

func (m *MockTokens) Validate(raw string) (*auth.JWTClaims, error) {
	args := m.Called(raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.JWTClaims), args.Error(1)
}

// captureNotifier records deliveries and signals each one on Sent so
// tests can wait for the detached delivery goroutine.
type captureNotifier struct {
	mu    sync.Mutex
	calls []delivery
	fail  error
	Sent  chan struct{}
}

type delivery struct {
	email string
	code  string
}

func newCaptureNotifier() *captureNotifier {
	return &captureNotifier{Sent: make(chan struct{}, 8)}
}

func (n *captureNotifier) SendVerificationCode(ctx context.Context, email, code string) error {
	n.mu.Lock()
	n.calls = append(n.calls, delivery{email: email, code: code})
	err := n.fail
	n.mu.Unlock()
	n.Sent <- struct{}{}
	return err
}

func (n *captureNotifier) deliveries() []delivery {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]delivery, len(n.calls))
	copy(out, n.calls)
	return out
}

// memUsers is an in-memory auth.Users used by the end-to-end flow tests.
type memUsers struct {
	mu    sync.Mutex
	users map[string]*auth.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[string]*auth.User{}}
}

func (s *memUsers) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return nil, notFoundErr(email)
	}
	clone := *user
	return &clone, nil
}

func (s *memUsers) Insert(ctx context.Context, user *auth.User) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Email]; ok {
		return nil, goerrors.New("duplicate email", goerrors.CategoryConflict).
			WithCode(goerrors.CodeBadRequest)
	}
	clone := *user
	clone.ID = "user-" + user.Email
	s.users[user.Email] = &clone
	out := clone
	return &out, nil
}

func (s *memUsers) UpdateFields(ctx context.Context, email string, update auth.UserUpdate) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return nil, notFoundErr(email)
	}
	if update.IsVerified != nil {
		user.IsVerified = *update.IsVerified
	}
	if update.VerificationCode != nil {
		code := *update.VerificationCode
		user.VerificationCode = &code
	}
	if update.ClearVerificationCode {
		user.VerificationCode = nil
	}
	clone := *user
	return &clone, nil
}

func (s *memUsers) storedCode(email string) *string {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok || user.VerificationCode == nil {
		return nil
	}
	code := *user.VerificationCode
	return &code
}

func (s *memUsers) setManager(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user, ok := s.users[email]; ok {
		user.IsManager = true
	}
}

func notFoundErr(email string) error {
	return goerrors.New("record not found", goerrors.CategoryNotFound).
		WithCode(goerrors.CodeNotFound).
		WithMetadata(map[string]any{"email": email})
}

// fixedCodes returns a canned sequence of codes.
type fixedCodes struct {
	mu    sync.Mutex
	codes []string
}

func (f *fixedCodes) Generate() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.codes) == 0 {
		return "000000", nil
	}
	code := f.codes[0]
	if len(f.codes) > 1 {
		f.codes = f.codes[1:]
	}
	return code, nil
}
