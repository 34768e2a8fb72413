package auth

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	goerrors "github.com/goliatone/go-errors"
)

const deliveryTimeout = 10 * time.Second

type SignupMessage struct {
	Name     string `form:"name" json:"name"`
	Email    string `form:"email" json:"email"`
	Phone    string `form:"phone" json:"phone"`
	Password string `form:"password" json:"password"`
}

func (e SignupMessage) Type() string { return "auth.signup" }

// SignupHandler creates an unverified user record with a fresh one-time
// code and triggers delivery of the code to the given address.
type SignupHandler struct {
	users    Users
	notifier Notifier
	codes    CodeGenerator
	logger   Logger
}

func NewSignupHandler(users Users, notifier Notifier, codes CodeGenerator, logger Logger) *SignupHandler {
	if codes == nil {
		codes = OTPGenerator{}
	}
	if logger == nil {
		logger = defLogger{}
	}
	return &SignupHandler{
		users:    users,
		notifier: notifier,
		codes:    codes,
		logger:   logger,
	}
}

func (h *SignupHandler) Execute(ctx context.Context, event SignupMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during signup",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *SignupHandler) execute(ctx context.Context, event SignupMessage) error {
	if err := validation.Validate(event.Email, validation.Required, is.Email); err != nil {
		return ErrInvalidEmail.Clone().WithMetadata(map[string]any{
			"email": event.Email,
		})
	}

	email := NormalizeEmail(event.Email)

	phone, err := NormalizePhone(event.Phone)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	if _, err := h.users.FindByEmail(ctx, email); err == nil {
		return ErrEmailTaken
	} else if !goerrors.IsNotFound(err) {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to check for existing user")
	}

	code, err := h.codes.Generate()
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to generate verification code")
	}

	user := &User{
		Email:            email,
		Name:             event.Name,
		Phone:            phone,
		VerificationCode: &code,
		IsVerified:       false,
		IsManager:        false,
	}

	if event.Password != "" {
		hash, err := HashPassword(event.Password)
		if err != nil {
			var richErr *goerrors.Error
			if goerrors.As(err, &richErr) {
				return richErr
			}
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
		}
		user.PasswordHash = hash
	}

	if _, err := h.users.Insert(ctx, user); err != nil {
		// unique index enforces email uniqueness under concurrent signups
		if IsConflict(err) {
			return ErrEmailTaken
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "could not create user")
	}

	deliverCode(h.notifier, h.logger, email, code)

	return nil
}

// deliverCode sends the code on a detached context. Delivery failure does
// not roll back the persisted record; the original flow offers no retry or
// compensation either.
func deliverCode(notifier Notifier, logger Logger, email, code string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		defer cancel()

		if err := notifier.SendVerificationCode(ctx, email, code); err != nil {
			logger.Error("verification code delivery failed", "email", email, "error", err)
		}
	}()
}
