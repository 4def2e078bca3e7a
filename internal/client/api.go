package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/repository"
)

// API 全部资源组
type API struct {
	*Client

	Users             *Resource[models.User]
	Categories        *Resource[models.Category]
	Products          *Resource[models.Product]
	Courses           *Resource[models.Course]
	Rewards           *Resource[models.Reward]
	Announcements     *Resource[models.Announcement]
	Testimonials      *Resource[models.Testimonial]
	Referrals         *Resource[models.Referral]
	Transactions      *Resource[models.Transaction]
	Activities        *Resource[models.UserActivity]
	Notifications     *Resource[models.Notification]
	Waitlist          *Resource[models.WaitlistEntry]
	ProductCategories *Resource[models.ProductCategory]
	ProductReviews    *Resource[models.ProductReview]
	TimelineSteps     *Resource[models.TimelineStep]
	TrustBadges       *Resource[models.TrustBadge]
	NavigationItems   *Resource[models.NavigationItem]
}

// NewAPI 基于客户端创建资源组
func NewAPI(c *Client) *API {
	return &API{
		Client:            c,
		Users:             NewResource[models.User](c, "users"),
		Categories:        NewResource[models.Category](c, "categories"),
		Products:          NewResource[models.Product](c, "products"),
		Courses:           NewResource[models.Course](c, "courses"),
		Rewards:           NewResource[models.Reward](c, "rewards"),
		Announcements:     NewResource[models.Announcement](c, "announcements"),
		Testimonials:      NewResource[models.Testimonial](c, "testimonials"),
		Referrals:         NewResource[models.Referral](c, "referrals"),
		Transactions:      NewResource[models.Transaction](c, "transactions"),
		Activities:        NewResource[models.UserActivity](c, "activities"),
		Notifications:     NewResource[models.Notification](c, "notifications"),
		Waitlist:          NewResource[models.WaitlistEntry](c, "waitlist"),
		ProductCategories: NewResource[models.ProductCategory](c, "product-categories"),
		ProductReviews:    NewResource[models.ProductReview](c, "product-reviews"),
		TimelineSteps:     NewResource[models.TimelineStep](c, "timeline-steps"),
		TrustBadges:       NewResource[models.TrustBadge](c, "trust-badges"),
		NavigationItems:   NewResource[models.NavigationItem](c, "navigation-items"),
	}
}

// AddXP 原子增加用户 XP
func (a *API) AddXP(ctx context.Context, userID string, amount int64) (*models.User, error) {
	var user models.User
	body := map[string]int64{"xpAmount": amount}
	if _, err := a.Do(ctx, http.MethodPost, a.Users.Path()+"/"+url.PathEscape(userID)+"/add-xp", nil, body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckRewards 评估奖励，返回新解锁的奖励
func (a *API) CheckRewards(ctx context.Context, userID string) ([]models.Reward, error) {
	rewards := make([]models.Reward, 0)
	if _, err := a.Do(ctx, http.MethodPost, a.Rewards.Path()+"/check/"+url.PathEscape(userID), nil, nil, &rewards); err != nil {
		return nil, err
	}
	return rewards, nil
}

// UpdateCourseProgress 更新课程进度
func (a *API) UpdateCourseProgress(ctx context.Context, courseID, userID string, progress int, completed *bool) (*models.UserCourseProgress, error) {
	body := map[string]interface{}{"userId": userID, "progress": progress}
	if completed != nil {
		body["isCompleted"] = *completed
	}
	var out models.UserCourseProgress
	if _, err := a.Do(ctx, http.MethodPost, a.Courses.Path()+"/"+url.PathEscape(courseID)+"/progress", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkNotificationRead 标记通知已读
func (a *API) MarkNotificationRead(ctx context.Context, id string) (*models.Notification, error) {
	var out models.Notification
	if _, err := a.Do(ctx, http.MethodPut, a.Notifications.Path()+"/"+url.PathEscape(id)+"/read", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GeneralStats 总览统计
func (a *API) GeneralStats(ctx context.Context) (*repository.GeneralStatsRow, error) {
	var out repository.GeneralStatsRow
	if _, err := a.Do(ctx, http.MethodGet, "/api/stats/general", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UsersByTier 各等级人数
func (a *API) UsersByTier(ctx context.Context) ([]repository.TierCountRow, error) {
	rows := make([]repository.TierCountRow, 0)
	if _, err := a.Do(ctx, http.MethodGet, "/api/stats/users-by-tier", nil, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ExportWaitlist 服务端导出候补名单
func (a *API) ExportWaitlist(ctx context.Context, format string, filter url.Values) ([]byte, string, error) {
	query := url.Values{}
	for k, v := range filter {
		query[k] = v
	}
	if format != "" {
		query.Set("format", format)
	}
	return a.Download(ctx, a.Waitlist.Path()+"/export", query)
}
