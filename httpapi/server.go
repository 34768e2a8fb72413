// Package httpapi exposes the scheduling service over HTTP. Controllers
// translate between wire payloads and the command handlers; every domain
// error carries its HTTP status so the translation stays mechanical.
package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	goerrors "github.com/goliatone/go-errors"

	"github.com/sakshisharma25/meetyfi-b/auth"
	"github.com/sakshisharma25/meetyfi-b/meeting"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Config carries the collaborators the server needs; all fields are
// required unless noted.
type Config struct {
	Signup       *auth.SignupHandler
	VerifyEmail  *auth.VerifyEmailHandler
	LoginRequest *auth.LoginRequestHandler
	LoginConfirm *auth.LoginConfirmHandler
	Gate         *auth.Gate
	Meetings     *meeting.Service
	CORSOrigins  string
	Logger       Logger
}

type Server struct {
	app    *fiber.App
	logger Logger
}

func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = defLogger{}
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          errorHandler(logger),
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Use(requestLogger(logger))

	srv := &Server{app: app, logger: logger}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authCtrl := &authController{
		signup:       cfg.Signup,
		verifyEmail:  cfg.VerifyEmail,
		loginRequest: cfg.LoginRequest,
		loginConfirm: cfg.LoginConfirm,
	}
	meetCtrl := &meetingController{meetings: cfg.Meetings}

	v1 := app.Group("/api/v1")

	ar := v1.Group("/auth")
	ar.Post("/signup", authCtrl.Signup)
	ar.Post("/verify-email", authCtrl.VerifyEmail)
	ar.Post("/login", authCtrl.Login)
	ar.Post("/verify-login", authCtrl.VerifyLogin)

	mr := v1.Group("/meetings", RequireUser(cfg.Gate))
	mr.Post("/", meetCtrl.Create)
	mr.Get("/", meetCtrl.List)
	mr.Get("/:id", meetCtrl.Get)
	mr.Post("/:id/cancel", meetCtrl.Cancel)

	mgr := v1.Group("/manager", RequireUser(cfg.Gate), RequireManager(cfg.Gate))
	mgr.Get("/meetings", meetCtrl.ListAll)

	return srv
}

// Listen blocks serving HTTP on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(timeout time.Duration) error {
	return s.app.ShutdownWithTimeout(timeout)
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func requestLogger(logger Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start).String(),
		)
		return err
	}
}

// errorHandler renders every error as {"detail": message}. Domain errors
// carry their status code; anything else is a 500 with a generic body.
func errorHandler(logger Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		detail := "Internal server error"

		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			if richErr.Code > 0 {
				status = richErr.Code
			}
			detail = richErr.Message
			if status >= fiber.StatusInternalServerError {
				detail = "Internal server error"
			}
		} else if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
			detail = fe.Message
		}

		if status >= fiber.StatusInternalServerError {
			logger.Error("request failed", "path", c.Path(), "error", err)
		}

		if status == fiber.StatusUnauthorized {
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		}

		return c.Status(status).JSON(fiber.Map{"detail": detail})
	}
}

type defLogger struct{}

func (l defLogger) Debug(msg string, args ...any) {}
func (l defLogger) Info(msg string, args ...any)  {}
func (l defLogger) Warn(msg string, args ...any)  {}
func (l defLogger) Error(msg string, args ...any) {}
