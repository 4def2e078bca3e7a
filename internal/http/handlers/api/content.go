package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/models"

	"github.com/gin-gonic/gin"
)

var (
	resAnnouncement = resource{one: "announcement", many: "announcements"}
	resTestimonial  = resource{one: "testimonial", many: "testimonials"}
)

// ListAnnouncements 公告列表
func (h *Handler) ListAnnouncements(c *gin.Context) {
	announcements, err := h.AnnouncementService.List()
	respondList(c, resAnnouncement, announcements, err)
}

// ListActiveAnnouncements 当前生效的公告
func (h *Handler) ListActiveAnnouncements(c *gin.Context) {
	announcements, err := h.AnnouncementService.ListActive(c.Request.Context())
	respondList(c, resAnnouncement, announcements, err)
}

// GetAnnouncement 公告详情
func (h *Handler) GetAnnouncement(c *gin.Context) {
	getResource[models.Announcement](c, h.AnnouncementService, resAnnouncement)
}

// CreateAnnouncement 创建公告
func (h *Handler) CreateAnnouncement(c *gin.Context) {
	createResource(c, h.AnnouncementService, resAnnouncement, models.Announcement{
		Type:     constants.AnnouncementTypeInfo,
		Priority: constants.AnnouncementPriorityMin,
		IsActive: true,
	})
}

// UpdateAnnouncement 部分更新公告
func (h *Handler) UpdateAnnouncement(c *gin.Context) {
	updateResource[models.Announcement](c, h.AnnouncementService, resAnnouncement)
}

// DeleteAnnouncement 删除公告
func (h *Handler) DeleteAnnouncement(c *gin.Context) {
	deleteResource[models.Announcement](c, h.AnnouncementService, resAnnouncement)
}

// ListTestimonials 推荐语列表
func (h *Handler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.TestimonialService.List()
	respondList(c, resTestimonial, testimonials, err)
}

// ListActiveTestimonials 展示中的推荐语，limit 默认 10
func (h *Handler) ListActiveTestimonials(c *gin.Context) {
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(c, http.StatusBadRequest, "limit must be a non-negative integer", nil)
			return
		}
		limit = parsed
	}
	testimonials, err := h.TestimonialService.ListActive(limit)
	respondList(c, resTestimonial, testimonials, err)
}

// GetTestimonial 推荐语详情
func (h *Handler) GetTestimonial(c *gin.Context) {
	getResource[models.Testimonial](c, h.TestimonialService, resTestimonial)
}

// CreateTestimonial 创建推荐语
func (h *Handler) CreateTestimonial(c *gin.Context) {
	createResource(c, h.TestimonialService, resTestimonial, models.Testimonial{IsActive: true})
}

// UpdateTestimonial 部分更新推荐语
func (h *Handler) UpdateTestimonial(c *gin.Context) {
	updateResource[models.Testimonial](c, h.TestimonialService, resTestimonial)
}

// DeleteTestimonial 删除推荐语
func (h *Handler) DeleteTestimonial(c *gin.Context) {
	deleteResource[models.Testimonial](c, h.TestimonialService, resTestimonial)
}
