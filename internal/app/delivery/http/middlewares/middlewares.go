package middlewares

import (
	"carexpert-service/internal/app/config"
	"carexpert-service/internal/app/contracts"
	"carexpert-service/internal/pkg/constvars"
	"carexpert-service/internal/pkg/exceptions"
	"carexpert-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}

// Authenticate verifies the bearer JWT, resolves the redis session, and puts
// the raw session payload on the request context. Websocket clients cannot
// set headers from the browser, so a token query parameter is accepted too.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			token = r.URL.Query().Get("token")
		}
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionData, err := m.SessionService.GetSessionData(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionNotFound(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// RequestLogger logs one structured line per request with a generated
// request id.
func (m *Middlewares) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := utils.GenerateRequestID()

		next.ServeHTTP(w, r)

		m.Log.Info("request handled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// Recoverer turns panics into a 500 response instead of tearing down the
// connection.
func (m *Middlewares) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.Log.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.WrapWithoutError(
					constvars.StatusInternalServerError,
					constvars.ErrClientSomethingWrongWithApplication,
					"panic recovered in handler",
				))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
