package middlewares

import (
	"context"
	"infomed-service/internal/app/models"
	"infomed-service/internal/pkg/constvars"
	"infomed-service/internal/pkg/exceptions"
	"infomed-service/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// Authentication resolves the bearer token into a redis-backed session and
// puts both the session data and the session id on the request context.
func (m *Middlewares) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorizationHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authorizationHeader == "" || !strings.HasPrefix(authorizationHeader, "Bearer ") {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(authorizationHeader, "Bearer ")
		sessionID, err := utils.ParseSessionJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		sessionData, err := m.RedisRepository.Get(r.Context(), constvars.RedisKeySessionPrefix+sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if sessionData == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(nil))
			return
		}

		var session models.Session
		if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
