package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	Success bool        `json:"success"`           // 是否成功
	Data    interface{} `json:"data,omitempty"`    // 数据内容
	Error   string      `json:"error,omitempty"`   // 错误描述
	Message string      `json:"message,omitempty"` // 提示消息
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

// Message 成功响应（仅消息）
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Response{Success: true, Message: msg})
}

// SuccessWithMsg 成功响应（数据 + 消息）
func SuccessWithMsg(c *gin.Context, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data, Message: msg})
}

// Error 错误响应
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, Response{Success: false, Error: msg})
}

// ErrorWithFields 错误响应（附加顶层字段，如 path、stack）
func ErrorWithFields(c *gin.Context, status int, msg string, fields gin.H) {
	body := gin.H{"success": false, "error": msg}
	for key, value := range fields {
		if key == "success" || key == "error" {
			continue
		}
		body[key] = value
	}
	c.JSON(status, body)
}

// AbortWithError 写入错误并中止后续处理
func AbortWithError(c *gin.Context, status int, msg string) {
	Error(c, status, msg)
	c.Abort()
}

// Unauthorized 401响应
func Unauthorized(c *gin.Context, msg string) {
	Error(c, http.StatusUnauthorized, msg)
}
