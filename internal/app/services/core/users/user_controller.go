package users

import (
	"carexpert-service/internal/app/config"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/dto/requests"
	"carexpert-service/internal/pkg/exceptions"
	"carexpert-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type UserController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	UserUsecase    UserUsecase
}

func NewUserController(logger *zap.Logger, internalConfig *config.InternalConfig, userUsecase UserUsecase) *UserController {
	return &UserController{
		Log:            logger,
		InternalConfig: internalConfig,
		UserUsecase:    userUsecase,
	}
}

func (ctrl *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("UserController.GetProfile called")

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.UserUsecase.GetProfile(ctx, sessionData)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccess, result)
}

func (ctrl *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("UserController.UpdateProfile called")

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	request := new(requests.UpdateProfile)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	request.Name = utils.SanitizeString(request.Name)
	request.Specialty = utils.SanitizeString(request.Specialty)
	request.ClinicLocation = utils.SanitizeString(request.ClinicLocation)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.UserUsecase.UpdateProfile(ctx, sessionData, request)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccess, result)
}
