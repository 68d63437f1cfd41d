package bootstrap

import (
	"fmt"

	"github.com/ShubhamChaudhary05/documindAI/internal/config"
	"github.com/ShubhamChaudhary05/documindAI/internal/controller"
	"github.com/ShubhamChaudhary05/documindAI/internal/pkg/logger"
	"github.com/ShubhamChaudhary05/documindAI/internal/repository/memory"
	"github.com/ShubhamChaudhary05/documindAI/internal/service"
	"github.com/ShubhamChaudhary05/documindAI/pkg/extract"
	"github.com/ShubhamChaudhary05/documindAI/pkg/llm/factory"
)

type Container struct {
	Logger logger.ILogger

	DocumentController     controller.IDocumentController
	ConversationController controller.IConversationController
	ChallengeController    controller.IChallengeController
}

func NewContainer(cfg *config.Config) (*Container, error) {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	provider, err := factory.New(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiAPIKey,
		cfg.Ai.Timeout,
	)
	if err != nil {
		return nil, fmt.Errorf("init llm provider: %w", err)
	}

	extractor := extract.New()

	documentRepo := memory.NewDocumentRepository(cfg.Retention.TTL)
	conversationRepo := memory.NewConversationRepository(cfg.Retention.TTL)
	challengeRepo := memory.NewChallengeRepository(cfg.Retention.TTL)

	documentService := service.NewDocumentService(documentRepo, extractor, provider, sysLogger, cfg.Upload.Dir)
	conversationService := service.NewConversationService(conversationRepo, documentRepo, provider, sysLogger)
	challengeService := service.NewChallengeService(challengeRepo, documentRepo, provider, sysLogger)

	return &Container{
		Logger:                 sysLogger,
		DocumentController:     controller.NewDocumentController(documentService),
		ConversationController: controller.NewConversationController(conversationService),
		ChallengeController:    controller.NewChallengeController(challengeService),
	}, nil
}
