package api

import (
	"github.com/admin-nexus/internal/http/response"
	"github.com/admin-nexus/internal/models"

	"github.com/gin-gonic/gin"
)

var (
	resProductCategory = resource{one: "product category", many: "product categories"}
	resProductReview   = resource{one: "product review", many: "product reviews"}
	resTimelineStep    = resource{one: "timeline step", many: "timeline steps"}
	resTrustBadge      = resource{one: "trust badge", many: "trust badges"}
	resNavigationItem  = resource{one: "navigation item", many: "navigation items"}
)

var activeOnly = map[string]interface{}{"is_active": true}

// ProductCategoryRequest 商品分类关联请求
type ProductCategoryRequest struct {
	ProductID  string `json:"productId" binding:"required"`
	CategoryID string `json:"categoryId" binding:"required"`
	IsPrimary  bool   `json:"isPrimary"`
}

// ListProductCategories 商品分类关联（含名称）
func (h *Handler) ListProductCategories(c *gin.Context) {
	links, err := h.ProductCategoryService.List()
	respondList(c, resProductCategory, links, err)
}

// CreateProductCategory 创建关联
func (h *Handler) CreateProductCategory(c *gin.Context) {
	var req ProductCategoryRequest
	if !bindRequest(c, &req, "productId and categoryId are required") {
		return
	}
	link, err := h.ProductCategoryService.Create(&models.ProductCategory{
		ProductID:  req.ProductID,
		CategoryID: req.CategoryID,
		IsPrimary:  req.IsPrimary,
	})
	if err != nil {
		respondServiceError(c, resProductCategory, resProductCategory.failed("create", false), err)
		return
	}
	response.Created(c, link)
}

// DeleteProductCategory 删除关联
func (h *Handler) DeleteProductCategory(c *gin.Context) {
	deleteResource[models.ProductCategory](c, h.ProductCategoryService, resProductCategory)
}

// ListProductReviews 评价列表
func (h *Handler) ListProductReviews(c *gin.Context) {
	reviews, err := h.ProductReviewService.List()
	respondList(c, resProductReview, reviews, err)
}

// ListReviewsByProduct 商品下的评价
func (h *Handler) ListReviewsByProduct(c *gin.Context) {
	productID, ok := requireParam(c, "productId")
	if !ok {
		return
	}
	reviews, err := h.ProductReviewService.ListByProduct(productID)
	respondList(c, resProductReview, reviews, err)
}

// CreateProductReview 创建评价
func (h *Handler) CreateProductReview(c *gin.Context) {
	createResource(c, h.ProductReviewService, resProductReview, models.ProductReview{})
}

// UpdateProductReview 部分更新评价
func (h *Handler) UpdateProductReview(c *gin.Context) {
	updateResource[models.ProductReview](c, h.ProductReviewService, resProductReview)
}

// DeleteProductReview 删除评价
func (h *Handler) DeleteProductReview(c *gin.Context) {
	deleteResource[models.ProductReview](c, h.ProductReviewService, resProductReview)
}

// ListTimelineSteps 启用的流程步骤
func (h *Handler) ListTimelineSteps(c *gin.Context) {
	steps, err := h.TimelineStepService.ListBy(activeOnly)
	respondList(c, resTimelineStep, steps, err)
}

// CreateTimelineStep 创建流程步骤
func (h *Handler) CreateTimelineStep(c *gin.Context) {
	createResource(c, h.TimelineStepService, resTimelineStep, models.TimelineStep{IsActive: true})
}

// UpdateTimelineStep 部分更新流程步骤
func (h *Handler) UpdateTimelineStep(c *gin.Context) {
	updateResource[models.TimelineStep](c, h.TimelineStepService, resTimelineStep)
}

// DeleteTimelineStep 删除流程步骤
func (h *Handler) DeleteTimelineStep(c *gin.Context) {
	deleteResource[models.TimelineStep](c, h.TimelineStepService, resTimelineStep)
}

// ListTrustBadges 启用的信任徽章
func (h *Handler) ListTrustBadges(c *gin.Context) {
	badges, err := h.TrustBadgeService.ListBy(activeOnly)
	respondList(c, resTrustBadge, badges, err)
}

// CreateTrustBadge 创建信任徽章
func (h *Handler) CreateTrustBadge(c *gin.Context) {
	createResource(c, h.TrustBadgeService, resTrustBadge, models.TrustBadge{IsActive: true})
}

// UpdateTrustBadge 部分更新信任徽章
func (h *Handler) UpdateTrustBadge(c *gin.Context) {
	updateResource[models.TrustBadge](c, h.TrustBadgeService, resTrustBadge)
}

// DeleteTrustBadge 删除信任徽章
func (h *Handler) DeleteTrustBadge(c *gin.Context) {
	deleteResource[models.TrustBadge](c, h.TrustBadgeService, resTrustBadge)
}

// ListNavigationItems 启用的导航项
func (h *Handler) ListNavigationItems(c *gin.Context) {
	items, err := h.NavigationItemService.ListBy(activeOnly)
	respondList(c, resNavigationItem, items, err)
}

// CreateNavigationItem 创建导航项
func (h *Handler) CreateNavigationItem(c *gin.Context) {
	createResource(c, h.NavigationItemService, resNavigationItem, models.NavigationItem{IsActive: true})
}

// UpdateNavigationItem 部分更新导航项
func (h *Handler) UpdateNavigationItem(c *gin.Context) {
	updateResource[models.NavigationItem](c, h.NavigationItemService, resNavigationItem)
}

// DeleteNavigationItem 删除导航项
func (h *Handler) DeleteNavigationItem(c *gin.Context) {
	deleteResource[models.NavigationItem](c, h.NavigationItemService, resNavigationItem)
}
