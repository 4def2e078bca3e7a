package shared

import (
	"github.com/admin-nexus/internal/service"

	"github.com/gin-gonic/gin"
)

// IdentityKey gin 上下文中的调用者身份键
const IdentityKey = "identity"

// SetIdentity 写入调用者身份
func SetIdentity(c *gin.Context, identity *service.Identity) {
	if identity != nil {
		c.Set(IdentityKey, identity)
	}
}

// GetIdentity 读取调用者身份，匿名请求返回 nil
func GetIdentity(c *gin.Context) *service.Identity {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*service.Identity)
	if !ok {
		return nil
	}
	return identity
}
