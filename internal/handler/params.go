package handler

import (
	"strconv"

	"copygen/internal/errs"

	"github.com/gin-gonic/gin"
)

// parseID 解析路径中的数字ID
func parseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errs.New(errs.ErrValidation, "无效的"+name)
	}
	return uint(id), nil
}
