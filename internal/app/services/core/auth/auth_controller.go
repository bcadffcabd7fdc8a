package auth

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

type AuthController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	AuthUsecase    AuthUsecase
}

func NewAuthController(logger *zap.Logger, internalConfig *config.InternalConfig, authUsecase AuthUsecase) *AuthController {
	return &AuthController{
		Log:            logger,
		InternalConfig: internalConfig,
		AuthUsecase:    authUsecase,
	}
}

func (ctrl *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AuthController.Signup called")

	request := new(requests.Signup)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	request.Name = utils.SanitizeString(request.Name)
	request.Email = utils.SanitizeEmail(request.Email)
	request.Username = utils.SanitizeUsername(request.Username)
	request.Specialty = utils.SanitizeString(request.Specialty)
	request.ClinicLocation = utils.SanitizeString(request.ClinicLocation)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AuthUsecase.Signup(ctx, request)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SignupSuccessMessage, result)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AuthController.Login called")

	request := new(requests.Login)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	request.EmailOrUsername = utils.SanitizeEmail(request.EmailOrUsername)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, result)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AuthController.Logout called")

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionNotFound(nil))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.AuthUsecase.Logout(ctx, sessionData); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}
