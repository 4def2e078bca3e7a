package api

import (
	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/http/response"
	"github.com/admin-nexus/internal/models"

	"github.com/gin-gonic/gin"
)

var (
	resReferral    = resource{one: "referral", many: "referrals"}
	resTransaction = resource{one: "transaction", many: "transactions"}
)

// ListReferrals 推荐记录列表（含邀请人）
func (h *Handler) ListReferrals(c *gin.Context) {
	referrals, err := h.ReferralService.List()
	respondList(c, resReferral, referrals, err)
}

// ListUserReferrals 用户发出的推荐
func (h *Handler) ListUserReferrals(c *gin.Context) {
	userID, ok := requireParam(c, "userId")
	if !ok {
		return
	}
	referrals, err := h.ReferralService.ListForUser(userID)
	respondList(c, resReferral, referrals, err)
}

// UpdateReferralStatus 推进推荐状态
func (h *Handler) UpdateReferralStatus(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}
	var req StatusRequest
	if !bindRequest(c, &req, "status is required") {
		return
	}
	if _, err := h.ReferralService.UpdateStatus(id, req.Status); err != nil {
		respondServiceError(c, resReferral, resReferral.failed("update", false), err)
		return
	}
	response.Message(c, "Referral status updated successfully")
}

// ListTransactions 交易列表（含用户）
func (h *Handler) ListTransactions(c *gin.Context) {
	transactions, err := h.TransactionService.List()
	respondList(c, resTransaction, transactions, err)
}

// ListUserTransactions 用户交易
func (h *Handler) ListUserTransactions(c *gin.Context) {
	userID, ok := requireParam(c, "userId")
	if !ok {
		return
	}
	transactions, err := h.TransactionService.ListForUser(userID)
	respondList(c, resTransaction, transactions, err)
}

// CreateTransaction 创建交易
func (h *Handler) CreateTransaction(c *gin.Context) {
	createResource(c, h.TransactionService, resTransaction, models.Transaction{
		Status: constants.TransactionStatusPending,
	})
}

// UpdateTransactionStatus 更新交易状态
func (h *Handler) UpdateTransactionStatus(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}
	var req StatusRequest
	if !bindRequest(c, &req, "status is required") {
		return
	}
	if _, err := h.TransactionService.UpdateStatus(id, req.Status); err != nil {
		respondServiceError(c, resTransaction, resTransaction.failed("update", false), err)
		return
	}
	response.Message(c, "Transaction status updated successfully")
}
