package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/campushq/registrar/internal/app/models/dto"
	"github.com/campushq/registrar/internal/app/services"
	"github.com/campushq/registrar/internal/middleware"
	"github.com/campushq/registrar/internal/pkg/apperrors"
	"github.com/campushq/registrar/internal/pkg/flash"
)

// AuthController handles login, registration, password recovery and the
// profile/settings pages.
type AuthController struct {
	authService services.AuthService
	cookieName  string
	sessionTTL  time.Duration
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService services.AuthService, cookieName string, sessionTTL time.Duration, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		cookieName:  cookieName,
		sessionTTL:  sessionTTL,
		logger:      logger,
	}
}

// ShowLogin renders the login page.
func (ctrl *AuthController) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{
		"Title": "Login",
	})
}

// Login authenticates the posted credentials and establishes a session.
func (ctrl *AuthController) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/", "Email and password are required.")
		return
	}

	session, _, err := ctrl.authService.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			redirectWithError(c, "/", "Invalid email or password.")
			return
		}
		ctrl.logger.Error().Err(err).Msg("Login failed")
		redirectWithError(c, "/", "Something went wrong. Please try again.")
		return
	}

	c.SetCookie(ctrl.cookieName, session.ID.String(), int(ctrl.sessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard/")
}

// ShowRegister renders the registration page.
func (ctrl *AuthController) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{
		"Title": "Register",
	})
}

// Register creates a new staff account. There is no automatic login; the
// new account lands on the login page.
func (ctrl *AuthController) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/register/", "All fields are required.")
		return
	}

	err := ctrl.authService.Register(c.Request.Context(), form.FullName, form.Email, form.Password, form.ConfirmPassword)
	if err != nil {
		var custom *apperrors.CustomError
		switch {
		case errors.As(err, &custom) && errors.Is(err, apperrors.ErrValidationFailed):
			redirectWithError(c, "/register/", custom.Message)
		case errors.Is(err, apperrors.ErrAccountExists):
			redirectWithError(c, "/register/", "Email is already registered.")
		default:
			// Persistence failures are reported generically, without
			// exposing internals.
			ctrl.logger.Error().Err(err).Msg("Registration failed")
			redirectWithError(c, "/register/", "Could not create the account. Please try again.")
		}
		return
	}

	flash.Success(c, "Account created! You can now login.")
	c.Redirect(http.StatusFound, "/")
}

// ShowForgotPassword renders the forgot-password page.
func (ctrl *AuthController) ShowForgotPassword(c *gin.Context) {
	render(c, http.StatusOK, "forgot-password.html", gin.H{
		"Title": "Forgot Password",
	})
}

// ForgotPassword issues a reset token for an existing account. The response
// is identical whether or not the account exists, matching the login page's
// non-disclosure of account existence.
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var form dto.ForgotPasswordForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/forgot-password/", "Email is required.")
		return
	}

	if _, err := ctrl.authService.ForgotPassword(c.Request.Context(), form.Email); err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			ctrl.logger.Error().Err(err).Msg("Forgot password failed")
		}
	}

	flash.Success(c, "If an account exists, a reset link has been sent to your email.")
	c.Redirect(http.StatusFound, "/")
}

// ShowResetPassword renders the reset form for a tokenized link.
func (ctrl *AuthController) ShowResetPassword(c *gin.Context) {
	render(c, http.StatusOK, "reset-password.html", gin.H{
		"Title": "Reset Password",
		"Token": c.Query("token"),
	})
}

// ResetPassword sets a new password for a valid reset token.
func (ctrl *AuthController) ResetPassword(c *gin.Context) {
	var form dto.ResetPasswordForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/reset-password/", "All fields are required.")
		return
	}

	err := ctrl.authService.ResetPassword(c.Request.Context(), form.Token, form.Password, form.ConfirmPassword)
	if err != nil {
		var custom *apperrors.CustomError
		switch {
		case errors.As(err, &custom) && errors.Is(err, apperrors.ErrValidationFailed):
			redirectWithError(c, "/reset-password/?token="+form.Token, custom.Message)
		case errors.Is(err, apperrors.ErrResetTokenInvalid):
			redirectWithError(c, "/forgot-password/", "The reset link is invalid or has expired.")
		default:
			ctrl.logger.Error().Err(err).Msg("Password reset failed")
			redirectWithError(c, "/forgot-password/", "Something went wrong. Please try again.")
		}
		return
	}

	flash.Success(c, "Password updated. You can now login.")
	c.Redirect(http.StatusFound, "/")
}

// Logout terminates the current session unconditionally.
func (ctrl *AuthController) Logout(c *gin.Context) {
	if session := middleware.CurrentSession(c); session != nil {
		if err := ctrl.authService.Logout(c.Request.Context(), session.ID); err != nil {
			ctrl.logger.Error().Err(err).Msg("Logout failed to delete session")
		}
	}

	c.SetCookie(ctrl.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// ShowProfile renders the current user's profile page.
func (ctrl *AuthController) ShowProfile(c *gin.Context) {
	render(c, http.StatusOK, "profile.html", gin.H{
		"Title": "Profile",
	})
}

// ShowSettings renders the settings form.
func (ctrl *AuthController) ShowSettings(c *gin.Context) {
	render(c, http.StatusOK, "settings.html", gin.H{
		"Title": "Settings",
	})
}

// UpdateSettings updates the display name and contact email of the current
// user. The login identifier stays as registered.
func (ctrl *AuthController) UpdateSettings(c *gin.Context) {
	var form dto.SettingsForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithError(c, "/settings/", "Full name and email are required.")
		return
	}

	user := middleware.CurrentUser(c)
	err := ctrl.authService.UpdateProfile(c.Request.Context(), user.ID, form.FullName, form.Email)
	if err != nil {
		var custom *apperrors.CustomError
		if errors.As(err, &custom) && errors.Is(err, apperrors.ErrValidationFailed) {
			redirectWithError(c, "/settings/", custom.Message)
			return
		}
		ctrl.logger.Error().Err(err).Msg("Profile update failed")
		redirectWithError(c, "/settings/", "Something went wrong. Please try again.")
		return
	}

	flash.Success(c, "Profile details updated successfully!")
	c.Redirect(http.StatusFound, "/settings/")
}
