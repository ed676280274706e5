package utils

import (
	"fmt"
	"questionnaire-service/internal/pkg/constvars"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateAccessToken signs an HS256 token whose fhir_user claim carries the
// subject reference, valid for expiry.
func GenerateAccessToken(subject, secret string, expiry time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       subject,
		"fhir_user": subject,
		"exp":       time.Now().Add(expiry).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func GenerateSessionKey(subject, questionnaireID string) string {
	return fmt.Sprintf(constvars.RedisSessionKeyFormat, subject, questionnaireID)
}

func GenerateSubmitLockKey(subject, questionnaireID string) string {
	return fmt.Sprintf(constvars.RedisSubmitLockFormat, subject, questionnaireID)
}

func GenerateUrnUUID() string {
	return fmt.Sprintf(constvars.FhirUrnUUIDFormat, uuid.NewString())
}
