package api

import (
	"github.com/admin-nexus/internal/http/handlers/shared"
	"github.com/admin-nexus/internal/http/response"
	"github.com/admin-nexus/internal/service"

	"github.com/gin-gonic/gin"
)

// crudService 资源服务的通用读写能力
type crudService[T any] interface {
	Get(id string) (*T, error)
	Create(entity *T) (*T, error)
	Update(id string, patch service.Patch) (*T, error)
	Delete(id string) error
}

// respondList 输出列表；带 page 参数时按窗口切片
func respondList[T any](c *gin.Context, res resource, items []T, err error) {
	if err != nil {
		respondServiceError(c, res, res.failed("fetch", true), err)
		return
	}
	if items == nil {
		items = make([]T, 0)
	}
	if offset, limit, ok := shared.PageWindow(c); ok {
		items = shared.SliceWindow(items, offset, limit)
	}
	response.Success(c, items)
}

// respondItem 输出单条记录
func respondItem[T any](c *gin.Context, res resource, action string, item *T, err error) {
	if err != nil {
		respondServiceError(c, res, res.failed(action, false), err)
		return
	}
	response.Success(c, item)
}

func getResource[T any](c *gin.Context, svc crudService[T], res resource) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}
	item, err := svc.Get(id)
	respondItem(c, res, "fetch", item, err)
}

// createResource 以 defaults 为初始值创建记录
func createResource[T any](c *gin.Context, svc crudService[T], res resource, defaults T) {
	entity := defaults
	if !bindEntity(c, &entity) {
		return
	}
	created, err := svc.Create(&entity)
	if err != nil {
		respondServiceError(c, res, res.failed("create", false), err)
		return
	}
	response.Created(c, created)
}

func updateResource[T any](c *gin.Context, svc crudService[T], res resource) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	updated, err := svc.Update(id, patch)
	respondItem(c, res, "update", updated, err)
}

func deleteResource[T any](c *gin.Context, svc crudService[T], res resource) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}
	if err := svc.Delete(id); err != nil {
		respondServiceError(c, res, res.failed("delete", false), err)
		return
	}
	response.Message(c, res.done("deleted"))
}
