package router

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/admin-nexus/internal/cache"
	"github.com/admin-nexus/internal/config"
	apihandlers "github.com/admin-nexus/internal/http/handlers/api"
	"github.com/admin-nexus/internal/logger"
	"github.com/admin-nexus/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()
	r.HandleMethodNotAllowed = false

	h := apihandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "nexus"
	}
	redisClient := cache.Client()
	writeRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:write", redisPrefix),
		WindowSeconds: cfg.Security.WriteRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.WriteRateLimit.MaxRequests,
	}
	xpRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:add_xp", redisPrefix),
		WindowSeconds: cfg.Security.AddXPRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.AddXPRateLimit.MaxRequests,
	}

	// 中间件
	r.Use(RequestIDMiddleware())
	r.Use(RecoveryMiddleware(cfg.Server.IsProduction()))
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	if c.Metrics != nil {
		r.Use(c.Metrics.Middleware())
	}

	api := r.Group("/api")
	api.Use(IdentityMiddleware(c.IdentityService))
	api.Use(WritesOnly(RateLimitMiddleware(redisClient, writeRule, KeyByIP)))
	{
		users := api.Group("/users")
		{
			users.GET("", h.ListUsers)
			users.GET("/search", h.SearchUsers)
			users.GET("/:id", h.GetUser)
			users.POST("", h.CreateUser)
			users.PUT("/:id", h.UpdateUser)
			users.DELETE("/:id", h.DeleteUser)
			users.POST("/:id/add-xp", RateLimitMiddleware(redisClient, xpRule, KeyByIPAndParam("id")), h.AddUserXP)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", h.ListCategories)
			categories.GET("/active", h.ListActiveCategories)
			categories.GET("/slug/:slug", h.GetCategoryBySlug)
			categories.GET("/:id", h.GetCategory)
			categories.POST("", h.CreateCategory)
			categories.PUT("/:id", h.UpdateCategory)
			categories.DELETE("/:id", h.DeleteCategory)
		}

		products := api.Group("/products")
		{
			products.GET("", h.ListProducts)
			products.GET("/active", h.ListActiveProducts)
			products.GET("/search", h.SearchProducts)
			products.GET("/category/:categoryId", h.ListProductsByCategory)
			products.GET("/:id", h.GetProduct)
			products.POST("", h.CreateProduct)
			products.PUT("/:id", h.UpdateProduct)
			products.DELETE("/:id", h.DeleteProduct)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", h.ListCourses)
			courses.GET("/active", h.ListActiveCourses)
			courses.GET("/user/:userId", h.ListUserCourses)
			courses.GET("/:id", h.GetCourse)
			courses.POST("", h.CreateCourse)
			courses.PUT("/:id", h.UpdateCourse)
			courses.DELETE("/:id", h.DeleteCourse)
			courses.POST("/:id/progress", withParamAlias("id", "courseId"), h.UpdateCourseProgress)
		}

		rewards := api.Group("/rewards")
		{
			rewards.GET("", h.ListRewards)
			rewards.GET("/user/:userId", h.ListUserRewards)
			rewards.GET("/:id", h.GetReward)
			rewards.POST("", h.CreateReward)
			rewards.PUT("/:id", h.UpdateReward)
			rewards.DELETE("/:id", h.DeleteReward)
			rewards.POST("/check/:userId", h.CheckUserRewards)
		}

		announcements := api.Group("/announcements")
		{
			announcements.GET("", h.ListAnnouncements)
			announcements.GET("/active", h.ListActiveAnnouncements)
			announcements.GET("/:id", h.GetAnnouncement)
			announcements.POST("", h.CreateAnnouncement)
			announcements.PUT("/:id", h.UpdateAnnouncement)
			announcements.DELETE("/:id", h.DeleteAnnouncement)
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", h.ListTestimonials)
			testimonials.GET("/active", h.ListActiveTestimonials)
			testimonials.GET("/:id", h.GetTestimonial)
			testimonials.POST("", h.CreateTestimonial)
			testimonials.PUT("/:id", h.UpdateTestimonial)
			testimonials.DELETE("/:id", h.DeleteTestimonial)
		}

		referrals := api.Group("/referrals")
		{
			referrals.GET("", h.ListReferrals)
			referrals.GET("/user/:userId", h.ListUserReferrals)
			referrals.PUT("/:id/status", h.UpdateReferralStatus)
		}

		transactions := api.Group("/transactions")
		{
			transactions.GET("", h.ListTransactions)
			transactions.GET("/user/:userId", h.ListUserTransactions)
			transactions.POST("", h.CreateTransaction)
			transactions.PUT("/:id/status", h.UpdateTransactionStatus)
		}

		activities := api.Group("/activities")
		{
			activities.GET("", h.ListActivities)
			activities.GET("/user/:userId", h.ListUserActivities)
			activities.POST("/log", h.LogActivity)
			activities.POST("/click", h.LogClick)
			activities.POST("/conversion", h.LogConversion)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("", h.ListNotifications)
			notifications.GET("/user/:userId", h.ListUserNotifications)
			notifications.POST("", h.CreateNotification)
			notifications.PUT("/:id/read", h.MarkNotificationRead)
			notifications.DELETE("/:id", h.DeleteNotification)
		}

		waitlist := api.Group("/waitlist")
		{
			waitlist.GET("", h.ListWaitlist)
			waitlist.GET("/export", h.ExportWaitlist)
			waitlist.GET("/:id", h.GetWaitlistEntry)
			waitlist.POST("", h.CreateWaitlistEntry)
			waitlist.PUT("/:id", h.UpdateWaitlistEntry)
			waitlist.PUT("/:id/status", h.UpdateWaitlistStatus)
			waitlist.DELETE("/:id", h.DeleteWaitlistEntry)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/general", h.GetGeneralStats)
			stats.GET("/users-by-tier", h.GetUsersByTier)
		}

		productCategories := api.Group("/product-categories")
		{
			productCategories.GET("", h.ListProductCategories)
			productCategories.POST("", h.CreateProductCategory)
			productCategories.DELETE("/:id", h.DeleteProductCategory)
		}

		productReviews := api.Group("/product-reviews")
		{
			productReviews.GET("", h.ListProductReviews)
			productReviews.GET("/product/:productId", h.ListReviewsByProduct)
			productReviews.POST("", h.CreateProductReview)
			productReviews.PUT("/:id", h.UpdateProductReview)
			productReviews.DELETE("/:id", h.DeleteProductReview)
		}

		timelineSteps := api.Group("/timeline-steps")
		{
			timelineSteps.GET("", h.ListTimelineSteps)
			timelineSteps.POST("", h.CreateTimelineStep)
			timelineSteps.PUT("/:id", h.UpdateTimelineStep)
			timelineSteps.DELETE("/:id", h.DeleteTimelineStep)
		}

		trustBadges := api.Group("/trust-badges")
		{
			trustBadges.GET("", h.ListTrustBadges)
			trustBadges.POST("", h.CreateTrustBadge)
			trustBadges.PUT("/:id", h.UpdateTrustBadge)
			trustBadges.DELETE("/:id", h.DeleteTrustBadge)
		}

		navigationItems := api.Group("/navigation-items")
		{
			navigationItems.GET("", h.ListNavigationItems)
			navigationItems.POST("", h.CreateNavigationItem)
			navigationItems.PUT("/:id", h.UpdateNavigationItem)
			navigationItems.DELETE("/:id", h.DeleteNavigationItem)
		}
	}

	// 健康检查
	version := cfg.Server.Version
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   version,
		})
	})

	if c.Metrics != nil {
		path := strings.TrimSpace(cfg.Metrics.Path)
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(c.Metrics.Handler()))
	}

	r.NoRoute(NotFoundHandler)

	return r
}

// withParamAlias 以另一个名字暴露同一路径参数（gin 要求同层级参数同名）
func withParamAlias(from, to string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value := c.Param(from)
		c.Params = append(c.Params, gin.Param{Key: to, Value: value})
		c.Next()
	}
}
