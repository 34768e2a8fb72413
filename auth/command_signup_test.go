package auth_test

import (
	"context"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sakshisharma25/meetyfi-b/auth"
)

func TestSignupHandler_Execute(t *testing.T) {
	t.Run("creates unverified user and delivers the code", func(t *testing.T) {
		users := &MockUsers{}
		notifier := newCaptureNotifier()
		codes := &MockCodes{}

		codes.On("Generate").Return("482910", nil)
		users.On("FindByEmail", mock.Anything, "new@example.com").
			Return(nil, notFoundErr("new@example.com"))
		users.On("Insert", mock.Anything, mock.MatchedBy(func(u *auth.User) bool {
			return u.Email == "new@example.com" &&
				u.Phone == "+14155552671" &&
				!u.IsVerified &&
				!u.IsManager &&
				u.VerificationCode != nil &&
				*u.VerificationCode == "482910"
		})).Return(&auth.User{ID: "user-1", Email: "new@example.com"}, nil)

		handler := auth.NewSignupHandler(users, notifier, codes, nil)
		err := handler.Execute(context.Background(), auth.SignupMessage{
			Name:  "New User",
			Email: "New@Example.COM",
			Phone: "+1 415 555 2671",
		})
		require.NoError(t, err)

		select {
		case <-notifier.Sent:
		case <-time.After(2 * time.Second):
			t.Fatal("verification code was never delivered")
		}

		deliveries := notifier.deliveries()
		require.Len(t, deliveries, 1)
		assert.Equal(t, "new@example.com", deliveries[0].email)
		assert.Equal(t, "482910", deliveries[0].code)

		users.AssertExpectations(t)
		codes.AssertExpectations(t)
	})

	t.Run("rejects malformed email before touching the store", func(t *testing.T) {
		users := &MockUsers{}
		handler := auth.NewSignupHandler(users, newCaptureNotifier(), &MockCodes{}, nil)

		err := handler.Execute(context.Background(), auth.SignupMessage{Email: "not-an-email"})

		var richErr *goerrors.Error
		require.ErrorAs(t, err, &richErr)
		assert.Equal(t, auth.ErrInvalidEmail.TextCode, richErr.TextCode)
		users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
		users.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("rejects an invalid phone number before touching the store", func(t *testing.T) {
		users := &MockUsers{}
		handler := auth.NewSignupHandler(users, newCaptureNotifier(), &MockCodes{}, nil)

		err := handler.Execute(context.Background(), auth.SignupMessage{
			Email: "new@example.com",
			Phone: "not-a-number",
		})

		var richErr *goerrors.Error
		require.ErrorAs(t, err, &richErr)
		assert.Equal(t, auth.ErrInvalidPhone.TextCode, richErr.TextCode)
		users.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("rejects an already registered email", func(t *testing.T) {
		users := &MockUsers{}
		users.On("FindByEmail", mock.Anything, "taken@example.com").
			Return(&auth.User{Email: "taken@example.com"}, nil)

		handler := auth.NewSignupHandler(users, newCaptureNotifier(), &MockCodes{}, nil)
		err := handler.Execute(context.Background(), auth.SignupMessage{Email: "taken@example.com"})

		assert.ErrorIs(t, err, auth.ErrEmailTaken)
		users.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("maps a duplicate key race to the taken error", func(t *testing.T) {
		users := &MockUsers{}
		codes := &MockCodes{}
		codes.On("Generate").Return("111111", nil)
		users.On("FindByEmail", mock.Anything, "race@example.com").
			Return(nil, notFoundErr("race@example.com"))
		users.On("Insert", mock.Anything, mock.Anything).
			Return(nil, goerrors.New("duplicate", goerrors.CategoryConflict))

		handler := auth.NewSignupHandler(users, newCaptureNotifier(), codes, nil)
		err := handler.Execute(context.Background(), auth.SignupMessage{Email: "race@example.com"})

		assert.ErrorIs(t, err, auth.ErrEmailTaken)
	})

	t.Run("delivery failure does not fail signup", func(t *testing.T) {
		users := &MockUsers{}
		notifier := newCaptureNotifier()
		notifier.fail = goerrors.New("smtp unavailable", goerrors.CategoryInternal)
		codes := &MockCodes{}
		codes.On("Generate").Return("222222", nil)
		users.On("FindByEmail", mock.Anything, "flaky@example.com").
			Return(nil, notFoundErr("flaky@example.com"))
		users.On("Insert", mock.Anything, mock.Anything).
			Return(&auth.User{Email: "flaky@example.com"}, nil)

		handler := auth.NewSignupHandler(users, notifier, codes, nil)
		err := handler.Execute(context.Background(), auth.SignupMessage{Email: "flaky@example.com"})
		require.NoError(t, err)

		select {
		case <-notifier.Sent:
		case <-time.After(2 * time.Second):
			t.Fatal("delivery was never attempted")
		}
	})

	t.Run("cancelled context aborts early", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		handler := auth.NewSignupHandler(&MockUsers{}, newCaptureNotifier(), &MockCodes{}, nil)
		err := handler.Execute(ctx, auth.SignupMessage{Email: "late@example.com"})

		var richErr *goerrors.Error
		require.ErrorAs(t, err, &richErr)
		assert.Equal(t, goerrors.CategoryOperation, richErr.Category)
	})
}
