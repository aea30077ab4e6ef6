package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/uniplace/placement-backend/internal/app/controllers"
	"github.com/uniplace/placement-backend/internal/app/models"
	"github.com/uniplace/placement-backend/internal/app/models/dto"
	"github.com/uniplace/placement-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	companyController *controllers.CompanyController,
	driveController *controllers.DriveController,
	emailController *controllers.EmailController,
	dashboardController *controllers.DashboardController,
	reportController *controllers.ReportController,
	blogController *controllers.BlogController,
	settingsController *controllers.SettingsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/users/me", authController.Me)

		// Blog routes (all authenticated users)
		blogs := authenticated.Group("/blogs")
		{
			blogs.GET("", blogController.ListApproved)
			blogs.POST("", blogController.CreateBlog)
			blogs.GET("/mine", blogController.ListMine)
			blogs.GET("/:id", blogController.GetBlog)
			blogs.POST("/:id/ack", blogController.Acknowledge)

			// Moderation routes (admin only)
			blogsAdminProtected := blogs.Group("")
			blogsAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				blogsAdminProtected.GET("/moderation", blogController.ListForModeration)
				blogsAdminProtected.POST("/:id/moderate", blogController.Moderate)
				blogsAdminProtected.DELETE("/:id", blogController.DeleteBlog)
			}
		}

		// --- Admin routes ---
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			students := admin.Group("/students")
			{
				students.GET("", studentController.ListStudents)
				students.POST("", studentController.CreateStudent)
				students.GET("/branches", studentController.GetBranches)
				students.GET("/:enrollment", studentController.GetStudent)
				students.GET("/:enrollment/summary", studentController.GetStudentSummary)
				students.PATCH("/:enrollment", studentController.UpdateStudent)
				students.DELETE("/:enrollment", studentController.DeleteStudent)
			}

			companies := admin.Group("/companies")
			{
				companies.GET("", companyController.ListCompanies)
				companies.POST("", companyController.CreateCompany)
				companies.GET("/:id", companyController.GetCompany)
				companies.PATCH("/:id", companyController.UpdateCompany)
				companies.DELETE("/:id", companyController.DeleteCompany)
			}

			drives := admin.Group("/drives")
			{
				drives.GET("", driveController.ListDrives)
				drives.POST("/upload", driveController.UploadResults)
				drives.GET("/:id", driveController.GetDrive)
				drives.GET("/:id/results", driveController.GetDriveResults)
				drives.DELETE("/:id", driveController.DeleteDrive)
			}

			emails := admin.Group("/emails")
			{
				emails.GET("/audience", emailController.GetAudience)
				emails.POST("/send", emailController.SendEmail)
			}

			admin.GET("/dashboard", dashboardController.GetDashboard)
			admin.GET("/reports/:id", reportController.DownloadReport)

			settings := admin.Group("/settings")
			{
				settings.GET("", settingsController.GetSettings)
				settings.PATCH("", settingsController.UpdateSettings)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
