package service

import (
	"strings"

	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/repository"
)

const defaultTestimonialLimit = 10

// TestimonialService 用户评价服务
type TestimonialService struct {
	*ResourceService[models.Testimonial]
}

// NewTestimonialService 创建评价服务
func NewTestimonialService(repo repository.ResourceRepository[models.Testimonial]) *TestimonialService {
	return &TestimonialService{
		ResourceService: NewResourceService(repo, ResourceSpec[models.Testimonial]{
			Name:      "testimonials",
			Patchable: []string{"user_id", "name", "tier", "quote", "avatar_url", "earnings_label", "is_active"},
			Normalize: func(t *models.Testimonial) {
				t.Name = strings.TrimSpace(t.Name)
				t.Quote = strings.TrimSpace(t.Quote)
			},
		}),
	}
}

// ListActive 展示中的评价，limit 非正数时取默认 10 条
func (s *TestimonialService) ListActive(limit int) ([]models.Testimonial, error) {
	if limit <= 0 {
		limit = defaultTestimonialLimit
	}
	return s.Query(repository.ListQuery{
		Filters: map[string]interface{}{"is_active": true},
		Limit:   limit,
	})
}
