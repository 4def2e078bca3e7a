package api

import (
	"net/http"
	"strings"

	"github.com/admin-nexus/internal/models"

	"github.com/gin-gonic/gin"
)

var (
	resCategory = resource{one: "category", many: "categories"}
	resProduct  = resource{one: "product", many: "products"}
)

// ListCategories 分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	respondList(c, resCategory, categories, err)
}

// ListActiveCategories 启用中的分类
func (h *Handler) ListActiveCategories(c *gin.Context) {
	categories, err := h.CategoryService.ListActive(c.Request.Context())
	respondList(c, resCategory, categories, err)
}

// GetCategory 分类详情
func (h *Handler) GetCategory(c *gin.Context) {
	getResource[models.Category](c, h.CategoryService, resCategory)
}

// GetCategoryBySlug 按 slug 获取启用分类
func (h *Handler) GetCategoryBySlug(c *gin.Context) {
	slug, ok := requireParam(c, "slug")
	if !ok {
		return
	}
	category, err := h.CategoryService.GetBySlug(slug)
	respondItem(c, resCategory, "fetch", category, err)
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	createResource(c, h.CategoryService, resCategory, models.Category{IsActive: true})
}

// UpdateCategory 部分更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	updateResource[models.Category](c, h.CategoryService, resCategory)
}

// DeleteCategory 删除分类（仍有商品时拒绝）
func (h *Handler) DeleteCategory(c *gin.Context) {
	deleteResource[models.Category](c, h.CategoryService, resCategory)
}

// ListProducts 商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.ProductService.List()
	respondList(c, resProduct, products, err)
}

// ListActiveProducts 上架商品
func (h *Handler) ListActiveProducts(c *gin.Context) {
	products, err := h.ProductService.ListActive(c.Request.Context())
	respondList(c, resProduct, products, err)
}

// SearchProducts 按名称/描述搜索
func (h *Handler) SearchProducts(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		respondError(c, http.StatusBadRequest, "Search query is required", nil)
		return
	}
	products, err := h.ProductService.Search(q)
	respondList(c, resProduct, products, err)
}

// ListProductsByCategory 分类下的上架商品
func (h *Handler) ListProductsByCategory(c *gin.Context) {
	categoryID, ok := requireParam(c, "categoryId")
	if !ok {
		return
	}
	products, err := h.ProductService.ListByCategory(categoryID)
	respondList(c, resProduct, products, err)
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	getResource[models.Product](c, h.ProductService, resProduct)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	createResource(c, h.ProductService, resProduct, models.Product{IsActive: true})
}

// UpdateProduct 部分更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	updateResource[models.Product](c, h.ProductService, resProduct)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	deleteResource[models.Product](c, h.ProductService, resProduct)
}
