package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Hazen1Yang/pathfinder-backend/controllers"
	"github.com/Hazen1Yang/pathfinder-backend/middlewares"
)

type Controllers struct {
	Auth     *controllers.AuthController
	User     *controllers.UserController
	Goal     *controllers.GoalController
	Quiz     *controllers.QuizController
	Career   *controllers.CareerController
	Daily    *controllers.DailyTaskController
	Realtime *controllers.RealtimeController
}

func SetupRouter(c Controllers) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/verify-mfa", c.Auth.VerifyMFA)
		auth.POST("/forgot-password", c.Auth.ForgotPassword)
		auth.POST("/reset-password", c.Auth.ResetPassword)
	}

	// Public catalog routes
	r.GET("/careers", c.Career.List)
	r.GET("/careers/:id", c.Career.Get)
	r.GET("/programs/:id/careers", c.Career.ProgramCareers)
	r.GET("/quiz/recommendations/:category", c.Quiz.Recommendations)
	r.GET("/quiz/roadmap/:category", c.Quiz.Roadmap)

	// Scoped routes: signed-in account or anonymous device
	scoped := r.Group("/")
	scoped.Use(middlewares.ResolveScope())
	{
		scoped.POST("/quiz/score", c.Quiz.Score)

		scoped.GET("/goals", c.Goal.List)
		scoped.POST("/goals", c.Goal.Create)
		scoped.PUT("/goals/:id", c.Goal.Update)
		scoped.DELETE("/goals/:id", c.Goal.Delete)
		scoped.DELETE("/goals", c.Goal.ClearAll)
		scoped.POST("/goals/:id/tasks", c.Goal.AddTask)
		scoped.PATCH("/goals/:id/tasks/:index", c.Goal.ToggleTask)
		scoped.DELETE("/goals/:id/tasks/:index", c.Goal.DeleteTask)

		scoped.GET("/ws/goals", c.Realtime.GoalsWS)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthRequired())
	{
		user.GET("/profile", c.User.GetProfile)
		user.PUT("/profile", c.User.UpdateProfile)
		user.GET("/tasks/today", c.Daily.Today)
		user.POST("/tasks/today/:index/complete", c.Daily.Complete)
		user.POST("/goals/adopt", c.Goal.AdoptDeviceGoals)
	}

	return r
}
