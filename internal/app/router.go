package app

import (
	"lingo_edu_backend/docs"
	"lingo_edu_backend/internal/config"
	"lingo_edu_backend/internal/middleware"
	"lingo_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由（无需登录）
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/signup", c.auth.Signup)
		public.POST("/auth/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/me", c.auth.Me)

		authGroup.GET("/home", c.home.GetHome)

		authGroup.GET("/missions/daily", c.mission.List)
		authGroup.POST("/missions/update", c.mission.Update)

		authGroup.GET("/modulos", c.module.ListModules)
		authGroup.GET("/modulos/:id/lecciones", c.module.ListLessons)

		authGroup.GET("/lecciones/:id", c.lesson.Detail)
		authGroup.GET("/lecciones/:id/question", c.lesson.Question)
		authGroup.POST("/lecciones/:id/answer", c.lesson.Answer)

		authGroup.GET("/dictionary", c.dictionary.Search)
		authGroup.GET("/dictionary/:id", c.dictionary.GetWord)

		authGroup.GET("/avatars", c.profile.Avatars)
		authGroup.GET("/profile/me", c.profile.GetProfile)
		authGroup.PUT("/profile/update", c.profile.UpdateProfile)
		authGroup.PUT("/profile/avatar", c.profile.SetAvatar)
		authGroup.POST("/profile/avatar/upload", c.profile.UploadAvatar)
	}
}
