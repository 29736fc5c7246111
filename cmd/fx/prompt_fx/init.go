// cmd/fx/prompt_fx/init.go
package prompt_fx

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"innkeep/internal/api/controllers"
	"innkeep/internal/config"
	"innkeep/internal/repositories"
	"innkeep/internal/services"
	"innkeep/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator,
	ProvidePropertyService,
	controllers.NewPropertyController)

// ProvideTextGenerator picks the AI provider from AI_PROVIDER. A missing key yields a nil
// generator so the rest of the API still starts; drafting then answers 503.
func ProvideTextGenerator(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (utils.TextGenerator, error) {
	provider := strings.ToLower(cfg.AIProvider)

	switch provider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			log.Warn("OPENAI_API_KEY not set, house rules drafting disabled")
			return nil, nil
		}
		log.Info("initializing AI client", zap.String("provider", provider), zap.String("model", cfg.OpenAIModel))
		return utils.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			log.Warn("GEMINI_API_KEY not set, house rules drafting disabled")
			return nil, nil
		}
		log.Info("initializing AI client", zap.String("provider", provider), zap.String("model", cfg.GeminiModel))
		client, err := utils.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.StopHook(client.Close))
		return client, nil
	case "":
		log.Info("AI_PROVIDER not set, house rules drafting disabled")
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'openai' or 'gemini'", cfg.AIProvider)
	}
}

func ProvidePropertyService(
	propertyRepo repositories.PropertyRepository,
	generator utils.TextGenerator,
	log *zap.Logger,
) services.PropertyServiceInterface {
	return services.NewPropertyService(propertyRepo, generator, log)
}
