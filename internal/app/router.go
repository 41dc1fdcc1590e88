package app

import (
	"explore_ia_backend/docs"
	"explore_ia_backend/internal/config"
	"explore_ia_backend/internal/middleware"
	"explore_ia_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	registerPublicRoutes(router, c, cfg)

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	registerStudentRoutes(authGroup, c)
}

func registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)

		// 携带 token 时附带学习进度
		public.GET("/modules", middleware.TryAuthMiddleware(cfg), c.course.ListModules)
		public.GET("/modules/:moduleId", middleware.TryAuthMiddleware(cfg), c.course.GetModule)
	}
}

func registerStudentRoutes(group *gin.RouterGroup, c *controllers) {
	profile := group.Group("/profile")
	{
		profile.GET("", c.profile.GetProfile)
		profile.PUT("", c.profile.UpdateProfile)
		profile.PUT("/password", c.profile.ChangePassword)
		profile.POST("/avatar", c.profile.UploadAvatar)
		profile.GET("/avatar", c.profile.GetAvatar)
		profile.DELETE("/avatar", c.profile.DeleteAvatar)
	}

	group.GET("/progress", c.course.GetProgress)
	group.GET("/modules/:moduleId/next", c.course.NextModule)

	quiz := group.Group("/quiz/:moduleId")
	{
		quiz.GET("/rules", c.quiz.Rules)
		quiz.POST("/start", c.quiz.Start)
		quiz.GET("", c.quiz.Get)
		quiz.PUT("/selection", c.quiz.Select)
		quiz.POST("/answer", c.quiz.Answer)
		quiz.POST("/advance", c.quiz.Advance)
		quiz.DELETE("", c.quiz.Abandon)
	}

	certificate := group.Group("/certificate")
	{
		certificate.GET("", c.certificate.Get)
		certificate.POST("", c.certificate.Generate)
		certificate.GET("/eligibility", c.certificate.Eligibility)
		certificate.GET("/download", c.certificate.Download)
	}
}
