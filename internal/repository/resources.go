package repository

import (
	"github.com/admin-nexus/internal/models"

	"gorm.io/gorm"
)

// 单表资源仓库：仅包含通用 CRUD 与搜索配置，无额外查询

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) *GormResourceRepository[models.User] {
	return NewResourceRepository[models.User](db, ResourceOptions{
		SearchColumns: []string{"email", "username", "full_name"},
	})
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormResourceRepository[models.Product] {
	return NewResourceRepository[models.Product](db, ResourceOptions{
		SearchColumns: []string{"name", "description"},
	})
}

// NewCourseRepository 创建课程仓库
func NewCourseRepository(db *gorm.DB) *GormResourceRepository[models.Course] {
	return NewResourceRepository[models.Course](db, ResourceOptions{
		DefaultOrder:  "sort_order ASC, created_at DESC",
		SearchColumns: []string{"title", "description"},
	})
}

// NewAnnouncementRepository 创建公告仓库
func NewAnnouncementRepository(db *gorm.DB) *GormResourceRepository[models.Announcement] {
	return NewResourceRepository[models.Announcement](db, ResourceOptions{
		SearchColumns: []string{"title", "content"},
	})
}

// NewTestimonialRepository 创建评价仓库
func NewTestimonialRepository(db *gorm.DB) *GormResourceRepository[models.Testimonial] {
	return NewResourceRepository[models.Testimonial](db, ResourceOptions{
		SearchColumns: []string{"name", "quote"},
	})
}

// NewReferralRepository 创建邀请仓库
func NewReferralRepository(db *gorm.DB) *GormResourceRepository[models.Referral] {
	return NewResourceRepository[models.Referral](db, ResourceOptions{
		SearchColumns: []string{"referred_email", "referral_code"},
	})
}

// NewTransactionRepository 创建钱包流水仓库
func NewTransactionRepository(db *gorm.DB) *GormResourceRepository[models.Transaction] {
	return NewResourceRepository[models.Transaction](db, ResourceOptions{
		SearchColumns: []string{"type", "description", "reference_id"},
	})
}

// NewNotificationRepository 创建通知仓库
func NewNotificationRepository(db *gorm.DB) *GormResourceRepository[models.Notification] {
	return NewResourceRepository[models.Notification](db, ResourceOptions{
		SearchColumns: []string{"title", "message"},
	})
}

// NewWaitlistRepository 创建候补名单仓库
func NewWaitlistRepository(db *gorm.DB) *GormResourceRepository[models.WaitlistEntry] {
	return NewResourceRepository[models.WaitlistEntry](db, ResourceOptions{
		SearchColumns: []string{"email", "source"},
	})
}

// NewConversionRepository 创建转化记录仓库
func NewConversionRepository(db *gorm.DB) *GormResourceRepository[models.UserConversion] {
	return NewResourceRepository[models.UserConversion](db, ResourceOptions{
		DefaultOrder: "conversion_date DESC, created_at DESC",
	})
}

// NewProductCategoryRepository 创建商品分类关联仓库
func NewProductCategoryRepository(db *gorm.DB) *GormResourceRepository[models.ProductCategory] {
	return NewResourceRepository[models.ProductCategory](db, ResourceOptions{})
}

// NewProductReviewRepository 创建商品评价仓库
func NewProductReviewRepository(db *gorm.DB) *GormResourceRepository[models.ProductReview] {
	return NewResourceRepository[models.ProductReview](db, ResourceOptions{
		SearchColumns: []string{"comment"},
	})
}

// NewTimelineStepRepository 创建流程步骤仓库
func NewTimelineStepRepository(db *gorm.DB) *GormResourceRepository[models.TimelineStep] {
	return NewResourceRepository[models.TimelineStep](db, ResourceOptions{
		DefaultOrder:  "sort_order ASC",
		SearchColumns: []string{"title", "description"},
	})
}

// NewTrustBadgeRepository 创建信任徽章仓库
func NewTrustBadgeRepository(db *gorm.DB) *GormResourceRepository[models.TrustBadge] {
	return NewResourceRepository[models.TrustBadge](db, ResourceOptions{
		DefaultOrder:  "sort_order ASC",
		SearchColumns: []string{"title", "description"},
	})
}

// NewNavigationItemRepository 创建导航菜单仓库
func NewNavigationItemRepository(db *gorm.DB) *GormResourceRepository[models.NavigationItem] {
	return NewResourceRepository[models.NavigationItem](db, ResourceOptions{
		DefaultOrder:  "sort_order ASC",
		SearchColumns: []string{"label", "href"},
	})
}
