package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/export"
	"github.com/admin-nexus/internal/http/response"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/service"

	"github.com/gin-gonic/gin"
)

var resWaitlist = resource{one: "waitlist entry", many: "waitlist entries"}

// ListWaitlist 候补名单
func (h *Handler) ListWaitlist(c *gin.Context) {
	entries, err := h.WaitlistService.List()
	respondList(c, resWaitlist, entries, err)
}

// GetWaitlistEntry 候补详情
func (h *Handler) GetWaitlistEntry(c *gin.Context) {
	getResource[models.WaitlistEntry](c, h.WaitlistService, resWaitlist)
}

// CreateWaitlistEntry 加入候补名单
func (h *Handler) CreateWaitlistEntry(c *gin.Context) {
	createResource(c, h.WaitlistService, resWaitlist, models.WaitlistEntry{
		Status: constants.WaitlistStatusPending,
	})
}

// UpdateWaitlistEntry 部分更新候补记录
func (h *Handler) UpdateWaitlistEntry(c *gin.Context) {
	updateResource[models.WaitlistEntry](c, h.WaitlistService, resWaitlist)
}

// UpdateWaitlistStatus 更新候补状态
func (h *Handler) UpdateWaitlistStatus(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}
	var req StatusRequest
	if !bindRequest(c, &req, "status is required") {
		return
	}
	if _, err := h.WaitlistService.UpdateStatus(id, req.Status); err != nil {
		respondServiceError(c, resWaitlist, resWaitlist.failed("update", false), err)
		return
	}
	response.Message(c, "Waitlist status updated successfully")
}

// DeleteWaitlistEntry 删除候补记录
func (h *Handler) DeleteWaitlistEntry(c *gin.Context) {
	deleteResource[models.WaitlistEntry](c, h.WaitlistService, resWaitlist)
}

// ExportWaitlist 按筛选条件导出 CSV 或 XLSX
func (h *Handler) ExportWaitlist(c *gin.Context) {
	format, ok := export.NormalizeFormat(c.Query("format"))
	if !ok {
		respondError(c, http.StatusBadRequest, "format must be csv or xlsx", nil)
		return
	}
	entries, err := h.WaitlistService.Filter(service.WaitlistFilter{
		Status: c.Query("status"),
		Source: c.Query("source"),
		Search: c.Query("q"),
	})
	if err != nil {
		respondServiceError(c, resWaitlist, "Failed to export waitlist", err)
		return
	}

	table := export.Build(export.WaitlistColumns, entries)
	var buf bytes.Buffer
	if format == export.FormatXLSX {
		err = export.WriteXLSX(&buf, "waitlist", table)
	} else {
		err = export.WriteCSV(&buf, table)
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to export waitlist", err)
		return
	}

	filename := export.Filename("waitlist", format, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType(format), buf.Bytes())
}
