package provider

import (
	"time"

	"github.com/admin-nexus/internal/cache"
	"github.com/admin-nexus/internal/config"
	"github.com/admin-nexus/internal/logger"
	"github.com/admin-nexus/internal/metrics"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/queue"
	"github.com/admin-nexus/internal/repository"
	"github.com/admin-nexus/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Metrics     *metrics.Metrics // 未启用时为 nil

	// Repositories
	UserRepo            *repository.GormResourceRepository[models.User]
	CategoryRepo        repository.CategoryRepository
	ProductRepo         *repository.GormResourceRepository[models.Product]
	CourseRepo          *repository.GormResourceRepository[models.Course]
	CourseProgressRepo  repository.CourseProgressRepository
	RewardRepo          repository.RewardRepository
	AnnouncementRepo    *repository.GormResourceRepository[models.Announcement]
	TestimonialRepo     *repository.GormResourceRepository[models.Testimonial]
	ReferralRepo        *repository.GormResourceRepository[models.Referral]
	TransactionRepo     *repository.GormResourceRepository[models.Transaction]
	ActivityRepo        repository.ActivityRepository
	ConversionRepo      *repository.GormResourceRepository[models.UserConversion]
	NotificationRepo    *repository.GormResourceRepository[models.Notification]
	WaitlistRepo        *repository.GormResourceRepository[models.WaitlistEntry]
	ProductCategoryRepo *repository.GormResourceRepository[models.ProductCategory]
	ProductReviewRepo   *repository.GormResourceRepository[models.ProductReview]
	TimelineStepRepo    *repository.GormResourceRepository[models.TimelineStep]
	TrustBadgeRepo      *repository.GormResourceRepository[models.TrustBadge]
	NavigationItemRepo  *repository.GormResourceRepository[models.NavigationItem]
	StatsRepo           repository.StatsRepository
	ProcedureRepo       repository.ProcedureRepository

	// Services
	IdentityService        *service.IdentityService
	UserService            *service.UserService
	CategoryService        *service.CategoryService
	ProductService         *service.ProductService
	CourseService          *service.CourseService
	RewardService          *service.RewardService
	ProcedureService       *service.ProcedureService
	AnnouncementService    *service.AnnouncementService
	TestimonialService     *service.TestimonialService
	ReferralService        *service.ReferralService
	TransactionService     *service.TransactionService
	ActivityService        *service.ActivityService
	NotificationService    *service.NotificationService
	WaitlistService        *service.WaitlistService
	StatsService           *service.StatsService
	ProductCategoryService *service.ProductCategoryService
	ProductReviewService   *service.ProductReviewService
	TimelineStepService    *service.ResourceService[models.TimelineStep]
	TrustBadgeService      *service.ResourceService[models.TrustBadge]
	NavigationItemService  *service.ResourceService[models.NavigationItem]
}

// NewContainer 初始化容器（使用全局数据库连接）
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}
	cache.SetListTTL(time.Duration(cfg.Cache.ActiveListTTLSeconds) * time.Second)

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}
	c := NewContainerWithDB(cfg, models.DB, queueClient)
	if cfg.Metrics.Enabled {
		c.Metrics = metrics.New(cfg.Metrics)
	}
	return c
}

// NewContainerWithDB 基于指定连接初始化仓库与服务
func NewContainerWithDB(cfg *config.Config, db *gorm.DB, queueClient *queue.Client) *Container {
	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories(db)

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CourseRepo = repository.NewCourseRepository(db)
	c.CourseProgressRepo = repository.NewCourseProgressRepository(db)
	c.RewardRepo = repository.NewRewardRepository(db)
	c.AnnouncementRepo = repository.NewAnnouncementRepository(db)
	c.TestimonialRepo = repository.NewTestimonialRepository(db)
	c.ReferralRepo = repository.NewReferralRepository(db)
	c.TransactionRepo = repository.NewTransactionRepository(db)
	c.ActivityRepo = repository.NewActivityRepository(db)
	c.ConversionRepo = repository.NewConversionRepository(db)
	c.NotificationRepo = repository.NewNotificationRepository(db)
	c.WaitlistRepo = repository.NewWaitlistRepository(db)
	c.ProductCategoryRepo = repository.NewProductCategoryRepository(db)
	c.ProductReviewRepo = repository.NewProductReviewRepository(db)
	c.TimelineStepRepo = repository.NewTimelineStepRepository(db)
	c.TrustBadgeRepo = repository.NewTrustBadgeRepository(db)
	c.NavigationItemRepo = repository.NewNavigationItemRepository(db)
	c.StatsRepo = repository.NewStatsRepository(db)
	c.ProcedureRepo = repository.NewProcedureRepository(db, c.Config.Procedures.Backend)
}

func (c *Container) initServices() {
	c.IdentityService = service.NewIdentityService(c.Config.Auth)
	if !c.IdentityService.Enabled() {
		logger.Warnw("provider_identity_disabled", "reason", "auth.jwt_secret is empty, bearer tokens will be rejected")
	}
	c.UserService = service.NewUserService(c.UserRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryService)
	c.CourseService = service.NewCourseService(c.CourseRepo, c.CourseProgressRepo)
	c.RewardService = service.NewRewardService(c.RewardRepo)
	c.ProcedureService = service.NewProcedureService(c.ProcedureRepo, c.UserRepo, c.QueueClient)
	c.AnnouncementService = service.NewAnnouncementService(c.AnnouncementRepo)
	c.TestimonialService = service.NewTestimonialService(c.TestimonialRepo)
	c.ReferralService = service.NewReferralService(c.ReferralRepo)
	c.TransactionService = service.NewTransactionService(c.TransactionRepo)
	c.ActivityService = service.NewActivityService(c.ActivityRepo, c.ConversionRepo)
	c.NotificationService = service.NewNotificationService(c.NotificationRepo)
	c.WaitlistService = service.NewWaitlistService(c.WaitlistRepo)
	c.StatsService = service.NewStatsService(c.StatsRepo)
	c.ProductCategoryService = service.NewProductCategoryService(c.ProductCategoryRepo)
	c.ProductReviewService = service.NewProductReviewService(c.ProductReviewRepo)
	c.TimelineStepService = service.NewTimelineStepService(c.TimelineStepRepo)
	c.TrustBadgeService = service.NewTrustBadgeService(c.TrustBadgeRepo)
	c.NavigationItemService = service.NewNavigationItemService(c.NavigationItemRepo)
}
