package service

import (
	"context"

	"github.com/ShubhamChaudhary05/documindAI/internal/dto"
	"github.com/ShubhamChaudhary05/documindAI/internal/pkg/apperror"
	"github.com/ShubhamChaudhary05/documindAI/internal/pkg/logger"
	"github.com/ShubhamChaudhary05/documindAI/internal/repository/memory"
	"github.com/ShubhamChaudhary05/documindAI/pkg/llm"
	"github.com/ShubhamChaudhary05/documindAI/pkg/prompt"
)

// NoQuestionsPlaceholder is returned as the first question when generation
// produced an empty list.
const NoQuestionsPlaceholder = "No questions generated"

type IChallengeService interface {
	Start(ctx context.Context, req *dto.StartChallengeRequest) (*dto.StartChallengeResponse, error)
	Submit(ctx context.Context, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	Get(ctx context.Context, id int) (*dto.GetChallengeResponse, error)
}

type challengeService struct {
	repo         *memory.ChallengeRepository
	documentRepo *memory.DocumentRepository
	provider     llm.Provider
	log          logger.ILogger
}

func NewChallengeService(
	repo *memory.ChallengeRepository,
	documentRepo *memory.DocumentRepository,
	provider llm.Provider,
	log logger.ILogger,
) IChallengeService {
	return &challengeService{
		repo:         repo,
		documentRepo: documentRepo,
		provider:     provider,
		log:          log,
	}
}

// Start generates the quiz for a document and creates the session. Question
// generation never blocks session creation: a failed call or an unparsable
// reply falls back to the default question set.
func (s *challengeService) Start(ctx context.Context, req *dto.StartChallengeRequest) (*dto.StartChallengeResponse, error) {
	doc, ok := s.documentRepo.Get(req.DocumentId)
	if !ok {
		return nil, apperror.ErrDocumentNotFound
	}

	var questions []string
	raw, err := s.provider.Generate(ctx, prompt.Questions(doc.Content))
	if err != nil {
		s.log.Warn("challenge", "question generation failed, using defaults", map[string]interface{}{
			"documentId": req.DocumentId,
			"error":      err.Error(),
		})
		questions = prompt.DefaultQuestionList()
	} else {
		questions = prompt.ParseQuestions(raw)
	}

	ch := s.repo.Create(req.DocumentId, questions)
	s.log.Info("challenge", "challenge started", map[string]interface{}{
		"challengeId": ch.Id,
		"documentId":  req.DocumentId,
		"questions":   len(questions),
	})

	question := NoQuestionsPlaceholder
	if len(questions) > 0 {
		question = questions[0]
	}
	return &dto.StartChallengeResponse{
		ChallengeId:    ch.Id,
		Question:       question,
		QuestionNumber: 1,
		TotalQuestions: len(questions),
	}, nil
}

// Submit evaluates the answer to the current question and advances the
// session by exactly one. Everything runs under the challenge's lock, and
// state is mutated only after the evaluation call succeeded: a failed
// generation leaves the challenge exactly where it was. A challenge that
// already reached its terminal state rejects further submits.
func (s *challengeService) Submit(ctx context.Context, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	var res *dto.SubmitAnswerResponse
	err := s.repo.WithLock(req.ChallengeId, func() error {
		ch, ok := s.repo.Get(req.ChallengeId)
		if !ok {
			return apperror.ErrChallengeNotFound
		}
		doc, ok := s.documentRepo.Get(ch.DocumentId)
		if !ok {
			return apperror.ErrDocumentNotFound
		}
		if ch.Completed || ch.CurrentQuestion >= len(ch.Questions) {
			return apperror.ErrChallengeCompleted
		}

		k := ch.CurrentQuestion
		evaluation, err := s.provider.Generate(ctx, prompt.Evaluation(doc.Content, ch.Questions[k], req.Answer))
		if err != nil {
			return apperror.Generation(err)
		}
		if evaluation == "" {
			evaluation = prompt.FallbackEvaluationText
		}

		ch.UserAnswers = append(ch.UserAnswers, req.Answer)
		ch.Evaluations = append(ch.Evaluations, evaluation)
		ch.CurrentQuestion = k + 1
		ch.Completed = ch.CurrentQuestion == len(ch.Questions)
		s.repo.Update(ch)

		res = &dto.SubmitAnswerResponse{
			Evaluation:     evaluation,
			IsCompleted:    ch.Completed,
			QuestionNumber: k + 1,
			TotalQuestions: len(ch.Questions),
		}
		if !ch.Completed {
			res.NextQuestion = ch.Questions[ch.CurrentQuestion]
			res.NextQuestionNumber = ch.CurrentQuestion + 1
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("challenge", "answer evaluated", map[string]interface{}{
		"challengeId": req.ChallengeId,
		"completed":   res.IsCompleted,
	})
	return res, nil
}

// Get snapshots the challenge under its lock, copying the answer and
// evaluation slices so the response never shares state with a concurrent
// Submit on the same challenge.
func (s *challengeService) Get(ctx context.Context, id int) (*dto.GetChallengeResponse, error) {
	var res *dto.GetChallengeResponse
	err := s.repo.WithLock(id, func() error {
		ch, ok := s.repo.Get(id)
		if !ok {
			return apperror.ErrChallengeNotFound
		}
		res = &dto.GetChallengeResponse{
			Challenge: dto.ChallengeDetail{
				Id:              ch.Id,
				DocumentId:      ch.DocumentId,
				Questions:       append([]string(nil), ch.Questions...),
				UserAnswers:     append([]string(nil), ch.UserAnswers...),
				Evaluations:     append([]string(nil), ch.Evaluations...),
				CurrentQuestion: ch.CurrentQuestion,
				Completed:       ch.Completed,
				CreatedAt:       ch.CreatedAt,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
