package main

import (
	"time"

	"github.com/admin-nexus/internal/config"
	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/logger"
	"github.com/admin-nexus/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}
	if err := models.InitDefaultRewards(); err != nil {
		stdLog.Printf("Failed to create default rewards: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "Software", Slug: "software", Icon: "code", Description: "SaaS and developer tools", AvgCommission: 25, ConversionRate: 3.2, BadgeText: "Hot", BadgeColor: "#ef4444", IsActive: true, SortOrder: 1},
		{Name: "Education", Slug: "education", Icon: "book", Description: "Courses and learning platforms", AvgCommission: 40, ConversionRate: 2.1, IsActive: true, SortOrder: 2},
		{Name: "Finance", Slug: "finance", Icon: "wallet", Description: "Banking and investment apps", AvgCommission: 15, ConversionRate: 1.4, IsActive: true, SortOrder: 3},
	}
	for i := range categories {
		cat := categories[i]
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err == nil {
			stdLog.Printf("Category already exists: %s", cat.Slug)
			categories[i] = existing
			continue
		}
		if err := models.DB.Create(&cat).Error; err != nil {
			stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			continue
		}
		categories[i] = cat
		stdLog.Printf("Created category: %s", cat.Slug)
	}
	categoryIDs := map[string]string{}
	for _, cat := range categories {
		if cat.ID != "" {
			categoryIDs[cat.Slug] = cat.ID
		}
	}

	// 添加产品
	products := []models.Product{
		{CategoryID: categoryIDs["software"], Name: "CloudNote Pro", Description: "Team note taking", CommissionRate: 30, ConversionRate: 3.5, XPReward: 50, AverageOrderValue: money(49.99), IsActive: true},
		{CategoryID: categoryIDs["software"], Name: "DeployKit", Description: "One click deployments", CommissionRate: 20, ConversionRate: 2.8, XPReward: 40, AverageOrderValue: money(99), IsActive: true},
		{CategoryID: categoryIDs["education"], Name: "Creator Academy", Description: "Video courses for creators", CommissionRate: 45, ConversionRate: 2.2, XPReward: 80, AverageOrderValue: money(199), IsActive: true},
		{CategoryID: categoryIDs["finance"], Name: "PocketInvest", Description: "Micro investing app", CommissionRate: 12, ConversionRate: 1.1, XPReward: 30, AverageOrderValue: money(25), IsActive: true},
	}
	for _, product := range products {
		if product.CategoryID == "" {
			continue
		}
		var count int64
		models.DB.Model(&models.Product{}).Where("name = ?", product.Name).Count(&count)
		if count > 0 {
			stdLog.Printf("Product already exists: %s", product.Name)
			continue
		}
		if err := models.DB.Create(&product).Error; err != nil {
			stdLog.Printf("Failed to create product %s: %v", product.Name, err)
			continue
		}
		link := models.ProductCategory{ProductID: product.ID, CategoryID: product.CategoryID, IsPrimary: true}
		if err := models.DB.Create(&link).Error; err != nil {
			stdLog.Printf("Failed to link product %s: %v", product.Name, err)
		}
		stdLog.Printf("Created product: %s", product.Name)
	}

	// 添加课程
	courses := []models.Course{
		{Title: "Affiliate Basics", Description: "Start earning with your first links", XPReward: 100, RevenueImpact: "+10%", DurationHours: 1.5, DifficultyLevel: constants.DifficultyBeginner, IsActive: true, SortOrder: 1},
		{Title: "Content That Converts", Description: "Write reviews people trust", XPReward: 200, RevenueImpact: "+25%", DurationHours: 3, DifficultyLevel: constants.DifficultyIntermediate, IsActive: true, SortOrder: 2},
		{Title: "Scaling Your Funnel", Description: "Email, SEO and paid traffic", XPReward: 400, RevenueImpact: "+60%", DurationHours: 6, DifficultyLevel: constants.DifficultyAdvanced, IsPremium: true, IsActive: true, SortOrder: 3},
	}
	for _, course := range courses {
		seedByColumn(stdLog, "title", course.Title, &course)
	}

	// 公告与落地页内容
	announcement := models.Announcement{
		Title:     "Welcome to the creator program",
		Content:   "Complete your first course to earn bonus XP.",
		Type:      constants.AnnouncementTypeInfo,
		Priority:  constants.AnnouncementPriorityMin,
		StartDate: models.NewDateTime(time.Now()),
		IsActive:  true,
	}
	seedByColumn(stdLog, "title", announcement.Title, &announcement)

	testimonials := []models.Testimonial{
		{Name: "Alex R.", Tier: constants.TierGold, Quote: "I replaced my part-time job within six months.", EarningsLabel: "$2.4k / month", IsActive: true},
		{Name: "Mina K.", Tier: constants.TierSilver, Quote: "The courses paid for themselves in a week.", EarningsLabel: "$800 / month", IsActive: true},
	}
	for _, item := range testimonials {
		seedByColumn(stdLog, "name", item.Name, &item)
	}

	steps := []models.TimelineStep{
		{Title: "Sign up", Description: "Create your creator profile", Icon: "user-plus", SortOrder: 1, IsActive: true},
		{Title: "Share links", Description: "Promote products you love", Icon: "link", SortOrder: 2, IsActive: true},
		{Title: "Get paid", Description: "Monthly payouts", Icon: "dollar-sign", SortOrder: 3, IsActive: true},
	}
	for _, item := range steps {
		seedByColumn(stdLog, "title", item.Title, &item)
	}

	badges := []models.TrustBadge{
		{Title: "Secure payouts", Icon: "shield", SortOrder: 1, IsActive: true},
		{Title: "10k+ creators", Icon: "users", SortOrder: 2, IsActive: true},
	}
	for _, item := range badges {
		seedByColumn(stdLog, "title", item.Title, &item)
	}

	navigation := []models.NavigationItem{
		{Label: "Dashboard", Href: "/dashboard", Icon: "home", SortOrder: 1, IsActive: true},
		{Label: "Products", Href: "/products", Icon: "package", SortOrder: 2, IsActive: true},
		{Label: "Academy", Href: "/courses", Icon: "graduation-cap", SortOrder: 3, IsActive: true},
	}
	for _, item := range navigation {
		seedByColumn(stdLog, "label", item.Label, &item)
	}

	stdLog.Printf("Seed completed")
}

type printer interface {
	Printf(format string, v ...interface{})
}

// seedByColumn 按唯一列判断是否已存在，不存在时写入
func seedByColumn[T any](log printer, column, value string, row *T) {
	var count int64
	if err := models.DB.Model(row).Where(column+" = ?", value).Count(&count).Error; err != nil {
		log.Printf("Failed to check %s: %v", value, err)
		return
	}
	if count > 0 {
		log.Printf("Already exists: %s", value)
		return
	}
	if err := models.DB.Create(row).Error; err != nil {
		log.Printf("Failed to create %s: %v", value, err)
		return
	}
	log.Printf("Created: %s", value)
}

func money(amount float64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromFloat(amount))
}
