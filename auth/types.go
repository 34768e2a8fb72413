package auth

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Users is the credential store contract. The backing engine only needs to
// support lookup by email, insert, and partial field updates.
type Users interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, user *User) (*User, error)
	UpdateFields(ctx context.Context, email string, update UserUpdate) (*User, error)
}

// Notifier delivers one-time codes to users. Callers treat delivery as
// fire-and-forget: a failed send is logged, never rolled back.
type Notifier interface {
	SendVerificationCode(ctx context.Context, email, code string) error
}

// CodeGenerator produces one-time login codes.
type CodeGenerator interface {
	Generate() (string, error)
}

// TokenService mints and validates bearer credentials.
type TokenService interface {
	Generate(subject string) (string, error)
	Validate(raw string) (*JWTClaims, error)
}

type defLogger struct{}

func (d defLogger) Error(msg string, args ...any) { d.print("ERR", msg, args...) }
func (d defLogger) Warn(msg string, args ...any)  { d.print("WRN", msg, args...) }
func (d defLogger) Info(msg string, args ...any)  { d.print("INF", msg, args...) }
func (d defLogger) Debug(msg string, args ...any) { d.print("DBG", msg, args...) }

func (defLogger) print(level, msg string, args ...any) {
	fmt.Printf("[%s] AUTH %s %v\n", level, msg, args)
}
