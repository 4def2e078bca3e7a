package service

import (
	"errors"
	"strings"

	"github.com/admin-nexus/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken 身份令牌无效
var ErrInvalidToken = errors.New("invalid identity token")

// IdentityClaims 外部认证服务签发的令牌声明
type IdentityClaims struct {
	Email        string                 `json:"email"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
	jwt.RegisteredClaims
}

// Identity 当前请求的调用者身份
type Identity struct {
	UserID   string
	Email    string
	Metadata map[string]interface{}
}

// MetadataString 读取元数据中的字符串字段
func (i *Identity) MetadataString(key string) string {
	if i == nil || i.Metadata == nil {
		return ""
	}
	value, ok := i.Metadata[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

// IdentityService 身份令牌校验服务（只校验，不签发）
type IdentityService struct {
	secret string
}

// NewIdentityService 创建身份服务
func NewIdentityService(cfg config.AuthConfig) *IdentityService {
	return &IdentityService{secret: strings.TrimSpace(cfg.JWTSecret)}
}

// Enabled 是否配置了校验密钥
func (s *IdentityService) Enabled() bool {
	return s != nil && s.secret != ""
}

// Parse 解析并校验 HS256 令牌
func (s *IdentityService) Parse(tokenString string) (*Identity, error) {
	if !s.Enabled() {
		return nil, ErrInvalidToken
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &IdentityClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*IdentityClaims)
	if !ok || !token.Valid || strings.TrimSpace(claims.Subject) == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{
		UserID:   claims.Subject,
		Email:    strings.TrimSpace(claims.Email),
		Metadata: claims.UserMetadata,
	}, nil
}
