package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/intered/portal/internal/app/controllers"
	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/middleware"
)

// Controllers groups the handlers mounted under /api.
type Controllers struct {
	Auth        *controllers.AuthController
	User        *controllers.UserController
	Student     *controllers.StudentController
	University  *controllers.UniversityController
	Program     *controllers.ProgramController
	Agent       *controllers.AgentController
	Application *controllers.ApplicationController
	Stats       *controllers.StatsController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// Auth routes resolve the caller when there is one but never require it,
	// except for current-user.
	auth := api.Group("/auth")
	auth.Use(authMiddleware.LoadPrincipal())
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/token", c.Auth.IssueToken)
		auth.GET("/logout", c.Auth.Logout)
		auth.POST("/logout", c.Auth.Logout)
		auth.GET("/current-user", authMiddleware.RequireAuthenticated(), c.Auth.CurrentUser)
	}

	authenticated := api.Group("")
	authenticated.Use(authMiddleware.RequireAuthenticated())

	adminOnly := authMiddleware.RequireRole(models.RoleAdmin)

	users := authenticated.Group("/users")
	users.Use(adminOnly)
	{
		users.GET("", c.User.ListUsers)
		users.GET("/:id", c.User.GetUserByID)
		users.PUT("/:id", c.User.UpdateUser)
		users.DELETE("/:id", c.User.DeleteUser)
	}

	students := authenticated.Group("/students")
	{
		students.GET("", c.Student.ListStudents)
		students.POST("", c.Student.CreateStudent)
		students.GET("/filter/stage/:stage", c.Student.StudentsByStage)
		students.GET("/:id", c.Student.GetStudent)
		students.PUT("/:id", c.Student.UpdateStudent)
		students.DELETE("/:id", adminOnly, c.Student.DeleteStudent)
	}

	universities := authenticated.Group("/universities")
	{
		universities.GET("", c.University.ListUniversities)
		universities.POST("", c.University.CreateUniversity)
		universities.GET("/:id", c.University.GetUniversity)
		universities.PUT("/:id", c.University.UpdateUniversity)
		universities.DELETE("/:id", adminOnly, c.University.DeleteUniversity)
		universities.GET("/:id/programs", c.University.ListPrograms)
	}

	programs := authenticated.Group("/programs")
	{
		programs.GET("", c.Program.ListPrograms)
		programs.POST("", c.Program.CreateProgram)
		programs.GET("/:id", c.Program.GetProgram)
		programs.PUT("/:id", c.Program.UpdateProgram)
		programs.DELETE("/:id", adminOnly, c.Program.DeleteProgram)
	}

	agents := authenticated.Group("/agents")
	{
		agents.GET("", c.Agent.ListAgents)
		agents.POST("", c.Agent.CreateAgent)
		agents.GET("/:id", c.Agent.GetAgent)
		agents.PUT("/:id", c.Agent.UpdateAgent)
		agents.DELETE("/:id", adminOnly, c.Agent.DeleteAgent)
	}

	applications := authenticated.Group("/applications")
	{
		applications.GET("", c.Application.ListApplications)
		applications.POST("", c.Application.CreateApplication)
		applications.GET("/filter/stage/:stage", c.Application.ApplicationsByStage)
		applications.GET("/student/:studentId", c.Application.ListByStudent)
		applications.GET("/university/:universityId", c.Application.ListByUniversity)
		applications.GET("/program/:programId", c.Application.ListByProgram)
		applications.GET("/:id", c.Application.GetApplication)
		applications.PUT("/:id", c.Application.UpdateApplication)
		applications.DELETE("/:id", adminOnly, c.Application.DeleteApplication)
	}

	stats := authenticated.Group("/stats")
	{
		stats.GET("/students/stage-counts", c.Stats.StudentStageCounts)
		stats.GET("/applications/stage-counts", c.Stats.ApplicationStageCounts)
		stats.GET("/summary", c.Stats.Summary)
	}
}
