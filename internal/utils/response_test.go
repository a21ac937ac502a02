package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"copygen/internal/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err         error
		wantStatus  int
		wantMessage string
	}{
		{errs.New(errs.ErrValidation, "topic是必填字段"), http.StatusBadRequest, "topic是必填字段"},
		{errs.ErrInvalidCredentials, http.StatusUnauthorized, "用户名或密码错误"},
		{errs.New(errs.ErrNotFound, "生成记录不存在"), http.StatusNotFound, "生成记录不存在"},
		{errs.New(errs.ErrConflict, "邮箱已被注册"), http.StatusConflict, "邮箱已被注册"},
		{errs.Wrap(errs.ErrGenerationFailed, "生成商品文案失败", errors.New("EOF")), http.StatusInternalServerError, "生成商品文案失败: EOF"},
		{fmt.Errorf("写库失败: %w", errors.New("disk full")), http.StatusInternalServerError, "服务器内部错误"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		HandleError(c, tc.err)

		assert.Equal(t, tc.wantStatus, w.Code, tc.err.Error())
		var resp Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, tc.wantStatus, resp.Code)
		assert.Equal(t, tc.wantMessage, resp.Message)

		if tc.wantStatus == http.StatusUnauthorized {
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		}
		if tc.wantStatus == http.StatusInternalServerError {
			assert.Len(t, c.Errors, 1)
		}
	}
}
