package auth

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type LoginRequestMessage struct {
	Email string `form:"email" json:"email"`
}

func (e LoginRequestMessage) Type() string { return "auth.login_request" }

// LoginRequestHandler issues a fresh login code for a verified account.
// Each request overwrites the previously stored code; concurrent requests
// race and the last write wins, the stale code then fails on confirm.
type LoginRequestHandler struct {
	users    Users
	notifier Notifier
	codes    CodeGenerator
	logger   Logger
}

func NewLoginRequestHandler(users Users, notifier Notifier, codes CodeGenerator, logger Logger) *LoginRequestHandler {
	if codes == nil {
		codes = OTPGenerator{}
	}
	if logger == nil {
		logger = defLogger{}
	}
	return &LoginRequestHandler{
		users:    users,
		notifier: notifier,
		codes:    codes,
		logger:   logger,
	}
}

func (h *LoginRequestHandler) Execute(ctx context.Context, event LoginRequestMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during login request",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *LoginRequestHandler) execute(ctx context.Context, event LoginRequestMessage) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	user, err := h.users.FindByEmail(ctx, NormalizeEmail(event.Email))
	if err != nil {
		if goerrors.IsNotFound(err) {
			return ErrUserNotFound
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve user")
	}

	if !user.IsVerified {
		return ErrEmailNotVerified
	}

	code, err := h.codes.Generate()
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to generate login code")
	}

	if _, err := h.users.UpdateFields(ctx, user.Email, UserUpdate{
		VerificationCode: &code,
	}); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to store login code")
	}

	deliverCode(h.notifier, h.logger, user.Email, code)

	return nil
}
