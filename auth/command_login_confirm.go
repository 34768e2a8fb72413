package auth

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type LoginConfirmMessage struct {
	Email      string `form:"email" json:"email"`
	Code       string `form:"otp" json:"otp"`
	OnResponse func(resp *LoginConfirmResponse)
}

func (e LoginConfirmMessage) Type() string { return "auth.login_confirm" }

type LoginConfirmResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// LoginConfirmHandler consumes a login code and mints the bearer token.
// This is the sole path that produces a token.
type LoginConfirmHandler struct {
	users  Users
	tokens TokenService
	logger Logger
}

func NewLoginConfirmHandler(users Users, tokens TokenService, logger Logger) *LoginConfirmHandler {
	if logger == nil {
		logger = defLogger{}
	}
	return &LoginConfirmHandler{
		users:  users,
		tokens: tokens,
		logger: logger,
	}
}

func (h *LoginConfirmHandler) Execute(ctx context.Context, event LoginConfirmMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during login confirmation",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *LoginConfirmHandler) execute(ctx context.Context, event LoginConfirmMessage) error {
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

	if !codeMatches(user.VerificationCode, event.Code) {
		return ErrInvalidCode
	}

	if _, err := h.users.UpdateFields(ctx, user.Email, UserUpdate{
		ClearVerificationCode: true,
	}); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to clear login code")
	}

	token, err := h.tokens.Generate(user.Email)
	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return richErr
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to issue access token")
	}

	if event.OnResponse != nil {
		event.OnResponse(&LoginConfirmResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}

	return nil
}
