package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sergioneto-tech/academic-hub-app-sub000/config"
	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/api/handler"
	"github.com/sergioneto-tech/academic-hub-app-sub000/internal/api/middleware"
	"github.com/sergioneto-tech/academic-hub-app-sub000/pkg/jwt"
	"github.com/sergioneto-tech/academic-hub-app-sub000/pkg/redis"
)

// 请求体大小上限（注册/课程等均为小 JSON 请求）
const maxRequestBody = 1 << 20 // 1 MiB

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxRequestBody))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，按 IP 限流防暴力破解）
		auth := v1.Group("/auth")
		auth.Use(middleware.RateLimit(rdb, 10, time.Minute))
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.User.GetProfile)
			authorized.POST("/auth/password", h.Auth.ChangePassword)

			// 个人资料模块
			authorized.GET("/me", h.User.GetProfile)
			authorized.PATCH("/me", h.User.UpdateProfile)

			// 课程模块
			courses := authorized.Group("/courses")
			{
				courses.POST("", h.Course.Create)
				courses.GET("", h.Course.List)
				courses.GET("/:id", h.Course.Get)
				courses.PATCH("/:id", h.Course.Update)
				courses.DELETE("/:id", h.Course.Delete)
				courses.POST("/:id/activate", h.Course.Activate)
				courses.POST("/:id/complete", h.Course.Complete)
				courses.POST("/:id/reopen", h.Course.Reopen)
				courses.GET("/:id/rules", h.Course.GetRules)
				courses.PATCH("/:id/rules", h.Course.UpdateRules)
				courses.GET("/:id/assessments", h.Assessment.ListByCourse)
			}

			// 评估项模块
			assessments := authorized.Group("/assessments")
			{
				assessments.PUT("/:id/grade", h.Assessment.SetGrade)
				assessments.DELETE("/:id/grade", h.Assessment.ClearGrade)
				assessments.PATCH("/:id/dates", h.Assessment.UpdateDates)
			}

			// 学习计划模块
			studyBlocks := authorized.Group("/study-blocks")
			{
				studyBlocks.POST("", h.StudyBlock.Create)
				studyBlocks.GET("", h.StudyBlock.List)
				studyBlocks.PATCH("/:id", h.StudyBlock.Update)
				studyBlocks.PATCH("/:id/status", h.StudyBlock.SetStatus)
				studyBlocks.DELETE("/:id", h.StudyBlock.Delete)
			}

			// 提醒模块
			alerts := authorized.Group("/alerts")
			{
				alerts.GET("", h.Alert.List)
				alerts.GET("/deadlines", h.Alert.ListDeadlines)
				alerts.GET("/calendar", h.Alert.ListCalendar)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/calendar", h.Export.ExportCalendar)
				export.GET("/grades", h.Export.ExportGradeReport)
			}
		}
	}

	return r
}
