package httpapi

import (
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"

	"github.com/sakshisharma25/meetyfi-b/auth"
)

type authController struct {
	signup       *auth.SignupHandler
	verifyEmail  *auth.VerifyEmailHandler
	loginRequest *auth.LoginRequestHandler
	loginConfirm *auth.LoginConfirmHandler
}

func (ctrl *authController) Signup(c *fiber.Ctx) error {
	var msg auth.SignupMessage
	if err := c.BodyParser(&msg); err != nil {
		return badPayload(err)
	}

	if err := ctrl.signup.Execute(c.UserContext(), msg); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Signup successful. Please verify your email.",
	})
}

func (ctrl *authController) VerifyEmail(c *fiber.Ctx) error {
	var msg auth.VerifyEmailMessage
	if err := c.BodyParser(&msg); err != nil {
		return badPayload(err)
	}

	if err := ctrl.verifyEmail.Execute(c.UserContext(), msg); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Email verified successfully"})
}

func (ctrl *authController) Login(c *fiber.Ctx) error {
	var msg auth.LoginRequestMessage
	if err := c.BodyParser(&msg); err != nil {
		return badPayload(err)
	}

	if err := ctrl.loginRequest.Execute(c.UserContext(), msg); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "OTP sent to your email. Please verify to login.",
	})
}

func (ctrl *authController) VerifyLogin(c *fiber.Ctx) error {
	var msg auth.LoginConfirmMessage
	if err := c.BodyParser(&msg); err != nil {
		return badPayload(err)
	}

	var resp *auth.LoginConfirmResponse
	msg.OnResponse = func(r *auth.LoginConfirmResponse) {
		resp = r
	}

	if err := ctrl.loginConfirm.Execute(c.UserContext(), msg); err != nil {
		return err
	}

	return c.JSON(resp)
}

func badPayload(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryBadInput, "malformed request body").
		WithCode(fiber.StatusBadRequest).
		WithTextCode("BAD_REQUEST")
}
