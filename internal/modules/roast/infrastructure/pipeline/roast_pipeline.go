package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"RoastMe/internal/modules/roast/domain/entity"
	"RoastMe/internal/modules/roast/domain/prompt"
	"RoastMe/pkg/zlog"

	"go.uber.org/zap"
)

// ErrEmptyPrompt 拼出的指令为空，属于内部错误，不走兜底文案
var ErrEmptyPrompt = errors.New("composed prompt is empty")

// Generator 外部文本生成
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// RoastResult 一次生成的结果
type RoastResult struct {
	Text     string
	FellBack bool
	// Elapsed 只统计生成步骤（含兜底）的耗时
	Elapsed time.Duration
}

// RoastPipeline 拼 Prompt → 调用模型 → 失败兜底
type RoastPipeline struct {
	generator Generator
}

func NewRoastPipeline(generator Generator) *RoastPipeline {
	return &RoastPipeline{generator: generator}
}

// Execute 完整流程：Compose 之后交给 Resolve
func (p *RoastPipeline) Execute(ctx context.Context, u entity.UserData) (*RoastResult, error) {
	return p.Resolve(ctx, u, prompt.Compose(u))
}

// Resolve 对生成模型只调用一次，任何调用失败都替换为该强度的兜底文案
//
// 只有外部调用的失败会被兜底掩盖；指令为空这类内部问题直接返回错误。
func (p *RoastPipeline) Resolve(ctx context.Context, u entity.UserData, prompts prompt.Prompts) (*RoastResult, error) {
	if strings.TrimSpace(prompts.System) == "" || strings.TrimSpace(prompts.User) == "" {
		return nil, ErrEmptyPrompt
	}

	start := time.Now()
	text, err := p.generator.Generate(ctx, prompts.System, prompts.User)
	if err != nil {
		zlog.Error("roast generate failed, using fallback",
			zap.Error(err),
			zap.String("intensity", u.RoastIntensity.String()))

		return &RoastResult{
			Text:     prompt.FallbackText(u),
			FellBack: true,
			Elapsed:  time.Since(start),
		}, nil
	}

	return &RoastResult{
		Text:    text,
		Elapsed: time.Since(start),
	}, nil
}
