package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile("^[a-zA-Z0-9_]+$")

// RegisterValidators 在gin的校验引擎上注册自定义校验规则
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin校验引擎不是validator/v10")
	}

	// 错误信息中使用JSON字段名
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	return v.RegisterValidation("username", validateUsername)
}

// validateUsername 验证用户名
func validateUsername(fl validator.FieldLevel) bool {
	username := fl.Field().String()
	if len(username) < 3 || len(username) > 50 {
		return false
	}
	return usernamePattern.MatchString(username)
}

// FormatValidationError 格式化验证错误
// 非校验错误(如JSON格式错误)原样返回
func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "请求格式错误: " + err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		param := e.Param()

		var message string
		switch e.Tag() {
		case "required":
			message = fmt.Sprintf("%s是必填字段", field)
		case "min":
			message = fmt.Sprintf("%s长度不能小于%s", field, param)
		case "max":
			message = fmt.Sprintf("%s长度不能大于%s", field, param)
		case "len":
			message = fmt.Sprintf("%s长度必须为%s", field, param)
		case "email":
			message = fmt.Sprintf("%s必须是有效的邮箱地址", field)
		case "username":
			message = fmt.Sprintf("%s只能包含字母、数字和下划线，长度3-50", field)
		case "url":
			message = fmt.Sprintf("%s必须是有效的URL", field)
		default:
			message = fmt.Sprintf("%s验证失败: %s", field, e.Tag())
		}
		messages = append(messages, message)
	}

	return strings.Join(messages, "; ")
}
