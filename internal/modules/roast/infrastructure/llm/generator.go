package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

var (
	// ErrEmptyCompletion 模型返回了空内容，视为格式错误
	ErrEmptyCompletion = errors.New("chat model returned empty completion")
	// ErrGeneratorUnavailable 未配置模型时的占位错误
	ErrGeneratorUnavailable = errors.New("chat model unavailable")
)

// ChatGenerator 基于 Eino ChatModel 的文本生成
type ChatGenerator struct {
	chatModel model.BaseChatModel
	meta      ChatModelMeta
}

func NewChatGenerator(chatModel model.BaseChatModel, meta ChatModelMeta) *ChatGenerator {
	return &ChatGenerator{chatModel: chatModel, meta: meta}
}

func (g *ChatGenerator) Meta() ChatModelMeta {
	return g.meta
}

// Generate 单次非流式调用，不重试
func (g *ChatGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	msgs := []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(userPrompt),
	}

	resp, err := g.chatModel.Generate(ctx, msgs,
		model.WithMaxTokens(MaxTokens),
		model.WithTemperature(Temperature),
	)
	if err != nil {
		return "", fmt.Errorf("%s generate failed: %w", g.meta.Provider, err)
	}
	if resp == nil {
		return "", ErrEmptyCompletion
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

// UnavailableGenerator 模型未配置时使用，每次调用都失败，由上层走兜底文案
type UnavailableGenerator struct {
	Reason error
}

func (g UnavailableGenerator) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if g.Reason == nil {
		return "", ErrGeneratorUnavailable
	}
	return "", fmt.Errorf("%w: %v", ErrGeneratorUnavailable, g.Reason)
}
