package summarizer

import (
	"fmt"

	"github.com/nalabook/mednote/internal/config"
	"github.com/nalabook/mednote/internal/logger"
)

// New creates a Summarizer for the configured provider.
func New(cfg *config.Config, log logger.Logger) (Summarizer, error) {
	switch cfg.Summary.Provider {
	case config.ProviderOpenAI:
		return newOpenAISummarizer(cfg.OpenAI, log), nil
	case config.ProviderGemini:
		return newGeminiSummarizer(cfg.Summary, log), nil
	default:
		return nil, fmt.Errorf("unknown summary provider: %s", cfg.Summary.Provider)
	}
}
