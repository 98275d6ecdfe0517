package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/registrar/internal/app/controllers"
	"github.com/campushq/registrar/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	dashboardController *controllers.DashboardController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	exportController *controllers.ExportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public auth routes ---
	// Logged-in users are bounced from the login and register pages.
	entry := router.Group("", authMiddleware.RedirectIfAuthenticated())
	{
		entry.GET("/", authController.ShowLogin)
		entry.POST("/", authController.Login)
		entry.GET("/register/", authController.ShowRegister)
		entry.POST("/register/", authController.Register)
	}

	router.GET("/forgot-password/", authController.ShowForgotPassword)
	router.POST("/forgot-password/", authController.ForgotPassword)
	router.GET("/reset-password/", authController.ShowResetPassword)
	router.POST("/reset-password/", authController.ResetPassword)

	// --- Protected routes ---
	protected := router.Group("", authMiddleware.RequireSession())
	{
		protected.GET("/logout/", authController.Logout)
		protected.GET("/dashboard/", dashboardController.Dashboard)
		protected.GET("/profile/", authController.ShowProfile)
		protected.GET("/settings/", authController.ShowSettings)
		protected.POST("/settings/", authController.UpdateSettings)

		students := protected.Group("/students")
		{
			students.GET("/", studentController.List)
			students.GET("/add/", studentController.ShowAdd)
			students.POST("/add/", studentController.Add)
			students.GET("/edit/:id/", studentController.ShowEdit)
			students.POST("/edit/:id/", studentController.Edit)
			students.GET("/delete/:id/", studentController.ShowDelete)
			students.POST("/delete/:id/", studentController.Delete)
		}

		protected.GET("/export/", exportController.ExportStudentsCSV)

		courses := protected.Group("/courses")
		{
			courses.GET("/", courseController.List)
			courses.GET("/add/", courseController.ShowAdd)
			courses.POST("/add/", courseController.Add)
			courses.GET("/edit/:id/", courseController.ShowEdit)
			courses.POST("/edit/:id/", courseController.Edit)
			courses.GET("/delete/:id/", courseController.ShowDelete)
			courses.POST("/delete/:id/", courseController.Delete)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "not-found.html", gin.H{
			"Title": "Not Found",
		})
	})
}
