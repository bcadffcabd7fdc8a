package aichat

import (
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/app/models"
	"carexpert-service/internal/app/services/shared/ratelimiter"
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/dto/responses"
	"carexpert-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	triageLimiterGroup = "ai-triage"
	triageWindowSec    = 3600
	triageMaxQuota     = 10
)

type aiChatUsecase struct {
	AiChatRepo     contracts.AiChatRepository
	AIClient       contracts.AIClient
	Limiter        *ratelimiter.ResourceLimiter
	SessionService contracts.SessionService
	Log            *zap.Logger
}

func NewAiChatUsecase(
	aiChatRepo contracts.AiChatRepository,
	aiClient contracts.AIClient,
	limiter *ratelimiter.ResourceLimiter,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) AiChatUsecase {
	return &aiChatUsecase{
		AiChatRepo:     aiChatRepo,
		AIClient:       aiClient,
		Limiter:        limiter,
		SessionService: sessionService,
		Log:            logger,
	}
}

func (uc *aiChatUsecase) CheckSymptoms(ctx context.Context, sessionData string, request *requests.SymptomCheck) (*responses.SymptomAnalysis, error) {
	uc.Log.Info("aiChatUsecase.CheckSymptoms called")

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	limit, err := uc.Limiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      session.UserID,
		LimiterGroupName:  triageLimiterGroup,
		WindowDurationSec: triageWindowSec,
		MaxQuota:          triageMaxQuota,
	})
	if err != nil {
		return nil, exceptions.ErrAIRequestFailed(err)
	}
	if !limit.Allowed {
		customErr := exceptions.ErrAIRateLimited(nil)
		customErr.RetryAfterSecs = limit.RetryAfterSecs
		return nil, customErr
	}

	analysis, err := uc.AIClient.AnalyzeSymptoms(ctx, request.Symptoms)
	if err != nil {
		return nil, err
	}

	chat := &models.AiChat{
		UserID:         session.UserID,
		Symptoms:       request.Symptoms,
		ProbableCauses: analysis.ProbableCauses,
		Severity:       analysis.Severity,
		Recommendation: analysis.Recommendation,
		Disclaimer:     analysis.Disclaimer,
		TimeModel: models.TimeModel{
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
	chatID, err := uc.AiChatRepo.CreateAiChat(ctx, chat)
	if err != nil {
		return nil, err
	}

	return &responses.SymptomAnalysis{
		ID:             chatID,
		ProbableCauses: analysis.ProbableCauses,
		Severity:       analysis.Severity,
		Recommendation: analysis.Recommendation,
		Disclaimer:     analysis.Disclaimer,
		CreatedAt:      chat.CreatedAt,
	}, nil
}

func (uc *aiChatUsecase) ListMyChats(ctx context.Context, sessionData string, page, pageSize int) ([]responses.AiChat, int, error) {
	uc.Log.Info("aiChatUsecase.ListMyChats called")

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, 0, err
	}

	chats, total, err := uc.AiChatRepo.FindByUser(ctx, session.UserID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.AiChat, 0, len(chats))
	for _, chat := range chats {
		result = append(result, buildAiChatResponse(&chat))
	}
	return result, total, nil
}

func (uc *aiChatUsecase) GetChat(ctx context.Context, sessionData, chatID string) (*responses.AiChat, error) {
	uc.Log.Info("aiChatUsecase.GetChat called")

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	chat, err := uc.AiChatRepo.FindByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	// A foreign chat is indistinguishable from a missing one so chat IDs
	// cannot be probed.
	if chat == nil || chat.UserID != session.UserID {
		return nil, exceptions.ErrAiChatNotFound(nil)
	}

	response := buildAiChatResponse(chat)
	return &response, nil
}

func buildAiChatResponse(chat *models.AiChat) responses.AiChat {
	return responses.AiChat{
		ID:             chat.ID,
		Symptoms:       chat.Symptoms,
		ProbableCauses: chat.ProbableCauses,
		Severity:       chat.Severity,
		Recommendation: chat.Recommendation,
		Disclaimer:     chat.Disclaimer,
		CreatedAt:      chat.CreatedAt,
	}
}
