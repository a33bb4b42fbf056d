package utils

import (
	"github.com/gin-gonic/gin"
)

// Response amplop JSON standar: frontend selalu ngecek success + message
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"` // kalau null, tidak usah ikut dikirim
}

// APIResponse tulis amplop standar ke client
func APIResponse(c *gin.Context, code int, success bool, message string, data interface{}) {
	c.JSON(code, Response{
		Success: success,
		Message: message,
		Data:    data,
	})
}
