package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"RoastMe/internal/config"

	arkModel "github.com/cloudwego/eino-ext/components/model/ark"
	openaiModel "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// 固定采样参数
const (
	MaxTokens        = 500
	Temperature      = float32(0.9)
	PresencePenalty  = float32(0.6)
	FrequencyPenalty = float32(0.6)

	defaultTimeout = 2 * time.Minute
)

type ChatModelMeta struct {
	Provider string
	Model    string
}

func NewChatModelFromConfig(ctx context.Context, conf *config.Config) (model.BaseChatModel, ChatModelMeta, error) {
	if conf == nil {
		return nil, ChatModelMeta{}, fmt.Errorf("nil config")
	}

	cmConf := conf.AIConfig.ChatModel
	provider := strings.ToLower(strings.TrimSpace(cmConf.Provider))
	modelName := strings.TrimSpace(cmConf.Model)

	timeout := defaultTimeout
	if cmConf.TimeoutSeconds > 0 {
		timeout = time.Duration(cmConf.TimeoutSeconds) * time.Second
	}
	maxTokens := MaxTokens
	temperature := Temperature
	presencePenalty := PresencePenalty
	frequencyPenalty := FrequencyPenalty

	switch provider {
	case "", "disabled", "none":
		return nil, ChatModelMeta{}, fmt.Errorf("chat model provider not configured")

	case "openai":
		apiKey := envOr(cmConf.APIKey, "OPENAI_API_KEY")
		if modelName == "" {
			modelName = envOr("", "OPENAI_MODEL")
		}
		baseURL := envOr(cmConf.BaseURL, "OPENAI_BASE_URL")

		if apiKey == "" || modelName == "" {
			return nil, ChatModelMeta{}, fmt.Errorf("openai chat model missing apiKey/model")
		}

		cm, err := openaiModel.NewChatModel(ctx, &openaiModel.ChatModelConfig{
			APIKey:           apiKey,
			Model:            modelName,
			BaseURL:          baseURL,
			ByAzure:          cmConf.ByAzure,
			APIVersion:       strings.TrimSpace(cmConf.AzureAPIVersion),
			Timeout:          timeout,
			MaxTokens:        &maxTokens,
			Temperature:      &temperature,
			PresencePenalty:  &presencePenalty,
			FrequencyPenalty: &frequencyPenalty,
		})
		if err != nil {
			return nil, ChatModelMeta{}, err
		}
		return cm, ChatModelMeta{Provider: "openai", Model: modelName}, nil

	case "ark":
		apiKey := envOr(cmConf.APIKey, "ARK_API_KEY")
		accessKey := envOr(cmConf.AccessKey, "ARK_ACCESS_KEY")
		secretKey := envOr(cmConf.SecretKey, "ARK_SECRET_KEY")
		if modelName == "" {
			modelName = envOr("", "ARK_MODEL_ID")
		}
		baseURL := envOr(cmConf.BaseURL, "ARK_BASE_URL")
		region := envOr(cmConf.Region, "ARK_REGION")

		if apiKey == "" && (accessKey == "" || secretKey == "") {
			return nil, ChatModelMeta{}, fmt.Errorf("ark chat model missing apiKey or accessKey/secretKey")
		}
		if modelName == "" {
			return nil, ChatModelMeta{}, fmt.Errorf("ark chat model missing model")
		}

		// 单次调用，失败直接走兜底文案
		retryTimes := 0
		if cmConf.RetryTimes > 0 {
			retryTimes = cmConf.RetryTimes
		}

		cm, err := arkModel.NewChatModel(ctx, &arkModel.ChatModelConfig{
			APIKey:           apiKey,
			AccessKey:        accessKey,
			SecretKey:        secretKey,
			Model:            modelName,
			BaseURL:          baseURL,
			Region:           region,
			Timeout:          &timeout,
			RetryTimes:       &retryTimes,
			MaxTokens:        &maxTokens,
			Temperature:      &temperature,
			PresencePenalty:  &presencePenalty,
			FrequencyPenalty: &frequencyPenalty,
		})
		if err != nil {
			return nil, ChatModelMeta{}, err
		}
		return cm, ChatModelMeta{Provider: "ark", Model: modelName}, nil

	default:
		return nil, ChatModelMeta{}, fmt.Errorf("unknown chat model provider: %s", provider)
	}
}

func envOr(v, key string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(key))
}
