package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sibyct/timesheet/internal/handlers"
	"github.com/sibyct/timesheet/internal/middleware"
	"github.com/sibyct/timesheet/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthCheck)

	user := r.Group("/user")
	{
		user.POST("/login", middleware.LoginRateLimiter(), handlers.Login)
		user.GET("/logout", handlers.Logout)
		user.GET("/isAuthenticated", middleware.AuthMiddleware(), handlers.IsAuthenticated)
		user.POST("/changePassword", middleware.AuthMiddleware(), handlers.ChangePassword)
	}

	timesheet := r.Group("/time", middleware.AuthMiddleware())
	{
		timesheet.GET("/getUserTimeLogin", handlers.GetUserTimeLogin)
		timesheet.POST("/getDateInfoBetweenDates", handlers.GetDateInfoBetweenDates)
		timesheet.POST("/updateTimeSheet", handlers.UpdateTimeSheet)
		timesheet.POST("/submitTimeSheet", handlers.SubmitTimeSheet)
		timesheet.GET("/getProfileInfo", handlers.GetProfileInfo)
		timesheet.POST("/saveProfileInfo", handlers.SaveProfileInfo)
	}

	admin := r.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("/getuserInfo", handlers.GetUserInfo)
		admin.GET("/getuserId", handlers.GetUserID)
		admin.POST("/register", handlers.Register)
		admin.GET("/deleteUser/:userId", handlers.DeleteUser)
		admin.POST("/updateUserDetails", handlers.UpdateUserDetails)
		admin.GET("/getProjectList", handlers.GetProjectList)
		admin.POST("/saveProjectList", handlers.SaveProjectList)
		admin.GET("/deleteProjectList/:id", handlers.DeleteProjectList)
		admin.GET("/getProjectListAndUserList", handlers.GetProjectListAndUserList)
		admin.POST("/getSearchDetails", handlers.GetSearchDetails)
		admin.POST("/saveAdminData", handlers.SaveAdminData)
		admin.POST("/exportToExcel", handlers.ExportToExcel)
		admin.GET("/resetPassword/:username", handlers.ResetPassword)
	}

	return r
}
