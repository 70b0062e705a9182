package llm_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripsmith/internal/config"
	"tripsmith/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerativeClient)

// ProvideGenerativeClient builds the client for the configured provider.
func ProvideGenerativeClient(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (utils.GenerativeClientInterface, error) {
	clientCfg := utils.LLMClientConfig{Provider: cfg.LLM.Provider}

	switch cfg.LLM.Provider {
	case "openai":
		clientCfg.APIKey = cfg.LLM.OpenAIAPIKey
		clientCfg.Model = cfg.LLM.OpenAIModel
		clientCfg.BaseURL = cfg.LLM.OpenAIBaseURL
	default:
		clientCfg.APIKey = cfg.LLM.GeminiAPIKey
		clientCfg.Model = cfg.LLM.GeminiModel
	}

	if clientCfg.APIKey == "" {
		logger.Warn("generative model API key is empty; plan requests will fail", zap.String("provider", clientCfg.Provider))
	}

	client, err := utils.NewGenerativeClient(context.Background(), clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", clientCfg.Provider, err)
	}
	logger.Info("generative client ready", zap.String("provider", client.Provider()), zap.String("model", clientCfg.Model))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}
