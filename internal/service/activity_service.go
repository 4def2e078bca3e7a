package service

import (
	"strings"
	"time"

	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/repository"
)

// ActivityService 用户行为记录服务（只追加）
type ActivityService struct {
	*ResourceService[models.UserActivity]
	repo        repository.ActivityRepository
	conversions *ResourceService[models.UserConversion]
}

// NewActivityService 创建行为服务
func NewActivityService(repo repository.ActivityRepository, conversionRepo repository.ResourceRepository[models.UserConversion]) *ActivityService {
	return &ActivityService{
		ResourceService: NewResourceService[models.UserActivity](repo, ResourceSpec[models.UserActivity]{
			Name: "activities",
			Normalize: func(a *models.UserActivity) {
				a.ActivityType = strings.ToLower(strings.TrimSpace(a.ActivityType))
			},
		}),
		repo:        repo,
		conversions: NewResourceService(conversionRepo, ResourceSpec[models.UserConversion]{
			Name: "conversions",
		}),
	}
}

// ListForUser 用户行为记录
func (s *ActivityService) ListForUser(userID string) ([]models.UserActivity, error) {
	return s.ListBy(map[string]interface{}{"user_id": userID})
}

// Log 追加一条行为记录
func (s *ActivityService) Log(activity *models.UserActivity) (*models.UserActivity, error) {
	return s.Create(activity)
}

type clickInput struct {
	UserID    string `json:"userId" validate:"notblank"`
	ProductID string `json:"productId" validate:"notblank"`
}

// LogClick 记录商品点击：点击汇总原子 +1，并追加一条 click 行为
func (s *ActivityService) LogClick(userID, productID string) (*models.UserClick, error) {
	if err := validateStruct(clickInput{UserID: userID, ProductID: productID}); err != nil {
		return nil, err
	}
	click, err := s.repo.UpsertClick(userID, productID, time.Now())
	if err != nil {
		return nil, err
	}
	product := productID
	if _, err := s.Create(&models.UserActivity{
		UserID:       userID,
		ActivityType: constants.ActivityTypeClick,
		ProductID:    &product,
		Metadata:     models.JSON{"click_count": click.ClickCount},
	}); err != nil {
		return nil, err
	}
	return click, nil
}

// ConversionInput 转化记录输入
type ConversionInput struct {
	UserID           string
	ProductID        string
	ConversionValue  models.Money
	CommissionEarned models.Money
	XPEarned         int
}

// LogConversion 记录一次转化，并追加一条 conversion 行为
func (s *ActivityService) LogConversion(input ConversionInput) (*models.UserConversion, error) {
	conversion, err := s.conversions.Create(&models.UserConversion{
		UserID:           strings.TrimSpace(input.UserID),
		ProductID:        strings.TrimSpace(input.ProductID),
		ConversionValue:  input.ConversionValue,
		CommissionEarned: input.CommissionEarned,
		XPEarned:         input.XPEarned,
		ConversionDate:   models.NewDateTime(time.Now()),
	})
	if err != nil {
		return nil, err
	}
	product := conversion.ProductID
	if _, err := s.Create(&models.UserActivity{
		UserID:       conversion.UserID,
		ActivityType: constants.ActivityTypeConversion,
		ProductID:    &product,
		XPEarned:     conversion.XPEarned,
		Earnings:     conversion.CommissionEarned,
		Metadata:     models.JSON{"conversion_id": conversion.ID, "conversion_value": conversion.ConversionValue.String()},
	}); err != nil {
		return nil, err
	}
	return conversion, nil
}
