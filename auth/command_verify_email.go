package auth

import (
	"context"
	"crypto/subtle"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type VerifyEmailMessage struct {
	Email string `form:"email" json:"email"`
	Code  string `form:"otp" json:"otp"`
}

func (e VerifyEmailMessage) Type() string { return "auth.verify_email" }

// VerifyEmailHandler consumes a signup code: it flips is_verified exactly
// once and clears the stored code so it cannot be replayed.
type VerifyEmailHandler struct {
	users  Users
	logger Logger
}

func NewVerifyEmailHandler(users Users, logger Logger) *VerifyEmailHandler {
	if logger == nil {
		logger = defLogger{}
	}
	return &VerifyEmailHandler{users: users, logger: logger}
}

func (h *VerifyEmailHandler) Execute(ctx context.Context, event VerifyEmailMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during email verification",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *VerifyEmailHandler) execute(ctx context.Context, event VerifyEmailMessage) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	user, err := h.users.FindByEmail(ctx, NormalizeEmail(event.Email))
	if err != nil {
		if goerrors.IsNotFound(err) {
			return ErrUserNotFound
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve user")
	}

	if !codeMatches(user.VerificationCode, event.Code) {
		return ErrInvalidCode
	}

	verified := true
	if _, err := h.users.UpdateFields(ctx, user.Email, UserUpdate{
		IsVerified:            &verified,
		ClearVerificationCode: true,
	}); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to mark user as verified")
	}

	return nil
}

// codeMatches compares the stored code against the submitted one in
// constant time. A nil stored code never matches: once consumed, repeat
// submissions fail the same way a wrong guess does.
func codeMatches(stored *string, submitted string) bool {
	if stored == nil || submitted == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(*stored), []byte(submitted)) == 1
}
