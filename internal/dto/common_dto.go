package dto

// 分页默认值
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// PageQuery 分页参数
type PageQuery struct {
	Skip  int `form:"skip" binding:"min=0"`
	Limit int `form:"limit" binding:"min=0,max=100"`
}

// Normalize 填充默认值
func (q *PageQuery) Normalize() {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Skip < 0 {
		q.Skip = 0
	}
}

// MessageResponse 仅包含消息的响应
type MessageResponse struct {
	Message string `json:"message"`
}
