// Package dto defines the typed request structs the presentation layer
// binds form submissions into before anything reaches a service.
package dto

// LoginForm is the credentials form posted to /.
type LoginForm struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// RegisterForm is the account creation form.
type RegisterForm struct {
	FullName        string `form:"full_name" binding:"required"`
	Email           string `form:"email" binding:"required"`
	Password        string `form:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" binding:"required"`
}

// ForgotPasswordForm requests a reset link.
type ForgotPasswordForm struct {
	Email string `form:"email" binding:"required"`
}

// ResetPasswordForm completes a password reset.
type ResetPasswordForm struct {
	Token           string `form:"token" binding:"required"`
	Password        string `form:"password" binding:"required"`
	ConfirmPassword string `form:"confirm_password" binding:"required"`
}

// SettingsForm updates the display name and contact email. The login
// identifier is not part of the form.
type SettingsForm struct {
	FullName string `form:"full_name" binding:"required"`
	Email    string `form:"email" binding:"required"`
}

// StudentForm is shared by the add and edit student pages. The course field
// carries the selected course id.
type StudentForm struct {
	FullName string `form:"full_name" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Age      int    `form:"age" binding:"required"`
	CourseID int64  `form:"course" binding:"required"`
}

// CourseForm is shared by the add and edit course pages.
type CourseForm struct {
	Name       string  `form:"name" binding:"required"`
	Code       string  `form:"code" binding:"required"`
	Credits    float64 `form:"credits" binding:"required"`
	Department string  `form:"department" binding:"required"`
}
