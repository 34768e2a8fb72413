package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sakshisharma25/meetyfi-b/auth"
	"github.com/sakshisharma25/meetyfi-b/config"
	"github.com/sakshisharma25/meetyfi-b/httpapi"
	"github.com/sakshisharma25/meetyfi-b/mailer"
	"github.com/sakshisharma25/meetyfi-b/meeting"
	"github.com/sakshisharma25/meetyfi-b/store"
)

func main() {
	zl, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer zl.Sync()

	logger := zapAdapter{zl.Sugar()}

	if err := run(logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(logger zapAdapter) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Warn("mongo disconnect failed", "error", err)
		}
	}()

	db := client.Database(cfg.MongoDBName)

	users := store.NewUsers(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		return err
	}
	meetings := store.NewMeetings(db)

	mail := mailer.New(cfg.EmailAPIKey, cfg.EmailSender, cfg.ProjectName)

	tokens := auth.NewTokenService([]byte(cfg.SigningKey), cfg.TokenTTL, cfg.ProjectName, logger)
	codes := auth.OTPGenerator{}

	srv := httpapi.New(httpapi.Config{
		Signup:       auth.NewSignupHandler(users, mail, codes, logger),
		VerifyEmail:  auth.NewVerifyEmailHandler(users, logger),
		LoginRequest: auth.NewLoginRequestHandler(users, mail, codes, logger),
		LoginConfirm: auth.NewLoginConfirmHandler(users, tokens, logger),
		Gate:         auth.NewGate(tokens, users).WithLogger(logger),
		Meetings:     meeting.NewService(meetings, mail, logger),
		CORSOrigins:  cfg.CORSOrigins,
		Logger:       logger,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.HTTPAddr)
		errCh <- srv.Listen(cfg.HTTPAddr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		return srv.Shutdown(cfg.ShutdownTimeout)
	}
}

// zapAdapter bridges zap's sugared logger to the Logger interfaces the
// packages in this module declare.
type zapAdapter struct {
	s *zap.SugaredLogger
}

func (l zapAdapter) Debug(msg string, args ...any) { l.s.Debugw(msg, args...) }
func (l zapAdapter) Info(msg string, args ...any)  { l.s.Infow(msg, args...) }
func (l zapAdapter) Warn(msg string, args ...any)  { l.s.Warnw(msg, args...) }
func (l zapAdapter) Error(msg string, args ...any) { l.s.Errorw(msg, args...) }
