package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("缺少字段: %w", ErrValidation), http.StatusBadRequest},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("token过期: %w", ErrUnauthenticated), http.StatusUnauthorized},
		{fmt.Errorf("生成记录: %w", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("邮箱已注册: %w", ErrConflict), http.StatusConflict},
		{fmt.Errorf("%w: timeout", ErrGenerationFailed), http.StatusInternalServerError},
		{New(ErrNotFound, "生成记录不存在"), http.StatusNotFound},
		{Wrap(ErrGenerationFailed, "调用模型失败", errors.New("EOF")), http.StatusInternalServerError},
		{errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(ErrGenerationFailed, "调用模型失败", cause)

	assert.Equal(t, "调用模型失败: connection reset", err.Error())
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)

	plain := New(ErrConflict, "邮箱已被注册")
	assert.Equal(t, "邮箱已被注册", plain.Error())
	assert.ErrorIs(t, fmt.Errorf("注册失败: %w", plain), ErrConflict)
}
