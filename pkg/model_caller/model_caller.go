package model_caller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// 消息角色
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrEmptyResponse 模型返回内容为空
var ErrEmptyResponse = errors.New("模型返回内容为空")

// Message 消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CallOptions 调用选项
type CallOptions struct {
	MaxTokens   int
	Temperature float64
}

// Caller 文本生成服务客户端
type Caller interface {
	Chat(ctx context.Context, messages []Message, options *CallOptions) (string, error)
}

// chatRequest OpenAI兼容接口请求格式
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// chatResponse OpenAI兼容接口响应格式
type chatResponse struct {
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason,omitempty"`
	} `json:"choices"`
}

// ModelCaller 基于HTTP的模型调用客户端
type ModelCaller struct {
	client  *http.Client
	apiBase string
	apiKey  string
	model   string
}

// NewModelCaller 创建模型调用客户端
// timeout 为 0 时不设置客户端超时, 只受请求 context 控制
func NewModelCaller(apiBase, apiKey, model string, timeout time.Duration) *ModelCaller {
	return &ModelCaller{
		client: &http.Client{
			Timeout: timeout,
		},
		apiBase: strings.TrimRight(apiBase, "/"),
		apiKey:  apiKey,
		model:   model,
	}
}

// Chat 调用模型, 返回第一个候选的文本内容
func (mc *ModelCaller) Chat(ctx context.Context, messages []Message, options *CallOptions) (string, error) {
	if options == nil {
		options = &CallOptions{}
	}

	jsonBody, err := json.Marshal(chatRequest{
		Model:       mc.model,
		Messages:    messages,
		Temperature: options.Temperature,
		MaxTokens:   options.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("序列化请求失败: %w", err)
	}

	url := mc.apiBase + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("创建请求失败: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if mc.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+mc.apiKey)
	}

	resp, err := mc.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("读取响应失败: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API返回错误: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("解析响应失败: %w", err)
	}

	if len(result.Choices) == 0 || strings.TrimSpace(result.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}

	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}
