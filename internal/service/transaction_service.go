package service

import (
	"strings"

	"github.com/admin-nexus/internal/constants"
	"github.com/admin-nexus/internal/models"
	"github.com/admin-nexus/internal/repository"
)

// TransactionService 钱包流水服务
type TransactionService struct {
	*ResourceService[models.Transaction]
}

// NewTransactionService 创建流水服务
func NewTransactionService(repo repository.ResourceRepository[models.Transaction]) *TransactionService {
	return &TransactionService{
		ResourceService: NewResourceService(repo, ResourceSpec[models.Transaction]{
			Name:      "transactions",
			Patchable: []string{"type", "amount", "status", "description", "reference_id"},
			Normalize: func(t *models.Transaction) {
				t.Type = strings.TrimSpace(t.Type)
				t.Status = strings.ToLower(strings.TrimSpace(t.Status))
				if t.Status == "" {
					t.Status = constants.TransactionStatusPending
				}
			},
		}),
	}
}

// List 全部流水（含用户）
func (s *TransactionService) List() ([]models.Transaction, error) {
	return s.Query(repository.ListQuery{Preload: []string{"User"}})
}

// ListForUser 用户流水
func (s *TransactionService) ListForUser(userID string) ([]models.Transaction, error) {
	return s.ListBy(map[string]interface{}{"user_id": userID})
}

// UpdateStatus 更新流水状态
func (s *TransactionService) UpdateStatus(id, status string) (*models.Transaction, error) {
	status = strings.ToLower(strings.TrimSpace(status))
	if validateOneOf(status, constants.TransactionStatuses) != nil {
		return nil, ErrInvalidStatus
	}
	tx, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	tx.Status = status
	return s.Save(id, tx, []string{"status"})
}
