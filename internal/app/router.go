package app

import (
	"micro_learning_backend/docs"
	"micro_learning_backend/internal/config"
	"micro_learning_backend/internal/middleware"
	"micro_learning_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
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
		authGroup.GET("/profile", c.auth.GetProfile)

		authGroup.GET("/topics", c.topic.List)

		authGroup.GET("/content/:topicId", c.content.ListByTopic)
		authGroup.POST("/content", c.content.Create)

		authGroup.GET("/progress/:topicId", c.progress.Get)
		authGroup.PUT("/progress/:topicId", c.progress.Complete)

		authGroup.POST("/generate/lesson", c.content.GenerateLesson)
		authGroup.POST("/generate/topics", c.topic.Suggest)
	}
}
