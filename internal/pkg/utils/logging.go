package utils

import (
	"context"
	"questionnaire-service/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetSubject(ctx context.Context) string {
	if subject, ok := ctx.Value(constvars.CONTEXT_SUBJECT_KEY).(string); ok {
		return subject
	}
	return ""
}
