package api

import (
	"net/http"

	"github.com/admin-nexus/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetGeneralStats 平台总体统计
func (h *Handler) GetGeneralStats(c *gin.Context) {
	stats, err := h.StatsService.General()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch statistics", err)
		return
	}
	response.Success(c, stats)
}

// GetUsersByTier 各等级用户数
func (h *Handler) GetUsersByTier(c *gin.Context) {
	rows, err := h.StatsService.UsersByTier()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch tier statistics", err)
		return
	}
	response.Success(c, rows)
}
