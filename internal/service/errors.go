package service

import "errors"

// 业务错误（handler 通过 errors.Is 映射为 HTTP 状态码）
var (
	ErrNotFound                = errors.New("resource not found")
	ErrInvalidInput            = errors.New("invalid input")
	ErrConflict                = errors.New("resource already exists")
	ErrCategoryInUse           = errors.New("category still has products")
	ErrCategoryMissing         = errors.New("category does not exist")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidStatusTransition = errors.New("status cannot move backwards")
	ErrInvalidXPAmount         = errors.New("xp amount must be a positive integer")
)
