package service

import (
	"context"
	"time"

	"github.com/ShubhamChaudhary05/documindAI/internal/dto"
	"github.com/ShubhamChaudhary05/documindAI/internal/entity"
	"github.com/ShubhamChaudhary05/documindAI/internal/pkg/apperror"
	"github.com/ShubhamChaudhary05/documindAI/internal/pkg/logger"
	"github.com/ShubhamChaudhary05/documindAI/internal/repository/memory"
	"github.com/ShubhamChaudhary05/documindAI/pkg/llm"
	"github.com/ShubhamChaudhary05/documindAI/pkg/prompt"
)

type IConversationService interface {
	Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error)
	Get(ctx context.Context, id int) (*dto.GetConversationResponse, error)
}

type conversationService struct {
	repo         *memory.ConversationRepository
	documentRepo *memory.DocumentRepository
	provider     llm.Provider
	log          logger.ILogger
}

func NewConversationService(
	repo *memory.ConversationRepository,
	documentRepo *memory.DocumentRepository,
	provider llm.Provider,
	log logger.ILogger,
) IConversationService {
	return &conversationService{
		repo:         repo,
		documentRepo: documentRepo,
		provider:     provider,
		log:          log,
	}
}

// Ask answers a question against a document, reusing the given conversation
// when it resolves and creating one otherwise. The whole turn runs under the
// conversation's lock: the history snapshot, the generation call and the two
// appends are atomic per conversation, and a failed generation leaves the
// thread untouched.
func (s *conversationService) Ask(ctx context.Context, req *dto.AskRequest) (*dto.AskResponse, error) {
	doc, ok := s.documentRepo.Get(req.DocumentId)
	if !ok {
		return nil, apperror.ErrDocumentNotFound
	}

	var conv *entity.Conversation
	if req.ConversationId != 0 {
		conv, _ = s.repo.Get(req.ConversationId)
	}
	if conv == nil {
		conv = s.repo.Create(req.DocumentId)
	}

	var res *dto.AskResponse
	err := s.repo.WithLock(conv.Id, func() error {
		history := make([]llm.Message, 0, len(conv.Messages))
		for _, msg := range conv.Messages {
			history = append(history, llm.Message{Role: msg.Role, Content: msg.Content})
		}

		answer, err := s.provider.Generate(ctx, prompt.Answer(doc.Content, history, req.Question))
		if err != nil {
			return apperror.Generation(err)
		}
		if answer == "" {
			answer = prompt.FallbackAnswerText
		}

		conv.Messages = append(conv.Messages,
			entity.Message{Role: entity.MessageRoleUser, Content: req.Question, Timestamp: time.Now()},
			entity.Message{Role: entity.MessageRoleAssistant, Content: answer, Timestamp: time.Now()},
		)
		s.repo.Update(conv)

		res = &dto.AskResponse{Answer: answer, ConversationId: conv.Id}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("conversation", "question answered", map[string]interface{}{
		"conversationId": conv.Id,
		"documentId":     req.DocumentId,
	})
	return res, nil
}

// Get snapshots the conversation under its lock so an in-flight Ask on the
// same conversation can never be observed mid-append.
func (s *conversationService) Get(ctx context.Context, id int) (*dto.GetConversationResponse, error) {
	var res *dto.GetConversationResponse
	err := s.repo.WithLock(id, func() error {
		conv, ok := s.repo.Get(id)
		if !ok {
			return apperror.ErrConversationNotFound
		}

		messages := make([]dto.MessageDTO, 0, len(conv.Messages))
		for _, msg := range conv.Messages {
			messages = append(messages, dto.MessageDTO{
				Role:      msg.Role,
				Content:   msg.Content,
				Timestamp: msg.Timestamp,
			})
		}
		res = &dto.GetConversationResponse{
			Conversation: dto.ConversationDetail{
				Id:         conv.Id,
				DocumentId: conv.DocumentId,
				Mode:       conv.Mode,
				Messages:   messages,
				CreatedAt:  conv.CreatedAt,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
