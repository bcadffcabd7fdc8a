package aichat

import (
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/exceptions"
	"carexpert-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AiChatController struct {
	Log           *zap.Logger
	AiChatUsecase AiChatUsecase
}

func NewAiChatController(logger *zap.Logger, aiChatUsecase AiChatUsecase) *AiChatController {
	return &AiChatController{
		Log:           logger,
		AiChatUsecase: aiChatUsecase,
	}
}

func (ctrl *AiChatController) CheckSymptoms(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AiChatController.CheckSymptoms called")

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	request := new(requests.SymptomCheck)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.Symptoms = utils.SanitizeString(request.Symptoms)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := ctrl.AiChatUsecase.CheckSymptoms(ctx, sessionData, request)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SymptomAnalysisSuccess, result)
}

func (ctrl *AiChatController) ListMyChats(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AiChatController.ListMyChats called")

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	page, pageSize := utils.ParsePagination(r)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.AiChatUsecase.ListMyChats(ctx, sessionData, page, pageSize)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAiChatsSuccess, pagination, result)
}

func (ctrl *AiChatController) GetChat(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AiChatController.GetChat called")

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	chatID := chi.URLParam(r, "chatID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AiChatUsecase.GetChat(ctx, sessionData, chatID)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAiChatSuccess, result)
}
