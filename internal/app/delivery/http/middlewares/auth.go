package middlewares

import (
	"context"
	"errors"
	"net/http"
	"questionnaire-service/internal/pkg/constvars"
	"questionnaire-service/internal/pkg/exceptions"
	"questionnaire-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate requires a signed bearer token and stores the subject
// reference it names in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := utils.ParseBearerToken(r.Header.Get(constvars.HeaderAuthorization))
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(errors.New(constvars.ErrDevAuthTokenMissing)))
			return
		}

		subject, err := utils.ParseSubjectFromJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			m.Log.Info("Middlewares.Authenticate rejected token",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalid(err))
			return
		}
		if subject == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenSubjectMissing(errors.New(constvars.ErrDevAuthSubjectMissing)))
			return
		}

		reference := utils.SubjectReference(subject).Reference
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SUBJECT_KEY, reference)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
