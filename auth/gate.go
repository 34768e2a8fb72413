package auth

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// Gate resolves and validates the caller identity on protected requests.
// Token validity plus a live store lookup are the whole authority check;
// there is no revocation list.
type Gate struct {
	tokens TokenService
	users  Users
	logger Logger
}

func NewGate(tokens TokenService, users Users) *Gate {
	return &Gate{
		tokens: tokens,
		users:  users,
		logger: defLogger{},
	}
}

func (g *Gate) WithLogger(logger Logger) *Gate {
	if logger != nil {
		g.logger = logger
	}
	return g
}

// Authenticate validates a raw bearer token and resolves the user record
// behind its subject.
func (g *Gate) Authenticate(ctx context.Context, raw string) (*User, error) {
	claims, err := g.tokens.Validate(raw)
	if err != nil {
		g.logger.Debug("gate token validation failed", "error", err)
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) && richErr.Category == goerrors.CategoryAuth {
			return nil, richErr
		}
		return nil, ErrUnauthorized
	}

	subject := claims.Subject()
	if subject == "" {
		return nil, ErrUnauthorized
	}

	user, err := g.users.FindByEmail(ctx, subject)
	if err != nil {
		if goerrors.IsNotFound(err) {
			// a valid signature over an unknown subject is still a
			// credential failure, not a 404
			return nil, ErrUnauthorized
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to resolve token subject")
	}

	// unreachable after a normal login since is_verified never reverts,
	// kept as a hard stop regardless
	if !user.IsVerified {
		return nil, ErrEmailNotVerified
	}

	return user, nil
}

// RequireManager rejects identities without the manager role flag.
// Pure derived check, no I/O.
func (g *Gate) RequireManager(user *User) error {
	if user == nil || !user.IsManager {
		return ErrNotManager
	}
	return nil
}
