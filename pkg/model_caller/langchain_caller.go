package model_caller

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// LangChainCaller 基于 langchaingo 的模型调用客户端
type LangChainCaller struct {
	llm llms.Model
}

// NewLangChainCaller 创建 langchaingo 客户端
func NewLangChainCaller(apiBase, apiKey, model string) (*LangChainCaller, error) {
	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
	}
	if apiBase != "" {
		opts = append(opts, openai.WithBaseURL(strings.TrimRight(apiBase, "/")))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("创建langchaingo客户端失败: %w", err)
	}
	return &LangChainCaller{llm: llm}, nil
}

// Chat 调用模型, 返回第一个候选的文本内容
func (lc *LangChainCaller) Chat(ctx context.Context, messages []Message, options *CallOptions) (string, error) {
	content := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		content = append(content, llms.TextParts(chatMessageType(m.Role), m.Content))
	}

	var callOpts []llms.CallOption
	if options != nil {
		if options.Temperature > 0 {
			callOpts = append(callOpts, llms.WithTemperature(options.Temperature))
		}
		if options.MaxTokens > 0 {
			callOpts = append(callOpts, llms.WithMaxTokens(options.MaxTokens))
		}
	}

	resp, err := lc.llm.GenerateContent(ctx, content, callOpts...)
	if err != nil {
		return "", fmt.Errorf("请求失败: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return "", ErrEmptyResponse
	}

	return strings.TrimSpace(resp.Choices[0].Content), nil
}

func chatMessageType(role string) schema.ChatMessageType {
	switch role {
	case RoleSystem:
		return schema.ChatMessageTypeSystem
	case RoleAssistant:
		return schema.ChatMessageTypeAI
	default:
		return schema.ChatMessageTypeHuman
	}
}
